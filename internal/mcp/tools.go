package mcp

import "github.com/mark3labs/mcp-go/mcp"

// birthOptions are the arguments shared by every tool that casts a chart.
func birthOptions(opts ...mcp.ToolOption) []mcp.ToolOption {
	return append([]mcp.ToolOption{
		mcp.WithString("date", mcp.Required(), mcp.Description("Birth date, YYYY-MM-DD")),
		mcp.WithString("time", mcp.Description("Birth time, HH:MM (default 12:00)")),
		mcp.WithString("city", mcp.Description("Birth city from city_list; do not combine with coordinates")),
		mcp.WithNumber("latitude", mcp.Description("Birth latitude in degrees, strictly between -90 and 90")),
		mcp.WithNumber("longitude", mcp.Description("Birth longitude in degrees, -180 to 180, east positive")),
		mcp.WithString("timezone", mcp.Description("Timezone label for display; no conversion is applied")),
	}, opts...)
}

var chartToolDef = mcp.NewTool("chart_calculate", birthOptions(
	mcp.WithDescription("Cast a birth chart: planet and point placements with sign, degree, house and retrograde flag, "+
		"house cusps, aspects sorted by orb, moon sign and dignities."),
	mcp.WithBoolean("include_minor", mcp.Description("Include minor aspects (quincunx, semi-square, sesquiquadrate)")),
	mcp.WithArray("exclude_bodies", mcp.WithStringItems(), mcp.Description("Body ids left out of aspect detection, e.g. [\"lilith\"]")),
)...)

var aspectsToolDef = mcp.NewTool("chart_aspects", birthOptions(
	mcp.WithDescription("List the aspects between bodies of a birth chart, tightest orb first."),
	mcp.WithBoolean("include_minor", mcp.Description("Include minor aspects")),
	mcp.WithArray("exclude_bodies", mcp.WithStringItems(), mcp.Description("Body ids left out of aspect detection")),
)...)

var moonSignToolDef = mcp.NewTool("chart_moon_sign", birthOptions(
	mcp.WithDescription("Return the zodiac sign and degree of the Moon at birth."),
)...)

var strengthToolDef = mcp.NewTool("chart_strength", birthOptions(
	mcp.WithDescription("Classify one body's dignity (Exalted, Dignified, Detriment, Fall or Neutral) in its birth sign."),
	mcp.WithString("body", mcp.Required(), mcp.Description("Body id, e.g. \"venus\" or \"northnode\"")),
)...)

var batchToolDef = mcp.NewTool("chart_batch",
	mcp.WithDescription("Cast up to 50 charts at once. Returns items and per-item errors in input order."),
	mcp.WithArray("items", mcp.Required(), mcp.Description("Chart requests with the same fields as chart_calculate"),
		mcp.Items(map[string]any{"type": "object"})),
	mcp.WithBoolean("include_minor", mcp.Description("Default include_minor for items that do not set it")),
)

var cityListToolDef = mcp.NewTool("city_list",
	mcp.WithDescription("List the cities that can be used as a birth place, with their countries and timezones."),
	mcp.WithString("country", mcp.Description("Country code filter, e.g. \"US\"")),
)
