package web

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hpungsan/natal/internal/config"
	"github.com/hpungsan/natal/internal/errors"
	"github.com/hpungsan/natal/internal/geo"
	"github.com/hpungsan/natal/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	cfg      *config.Config
	logger   *zap.Logger
	renderer *Renderer
}

// HandleChart handles GET /chart: the birth form, and the chart once a date is given.
func (h *Handlers) HandleChart(w http.ResponseWriter, r *http.Request) {
	form := chartForm(r)
	data := ChartPageData{
		PageData: PageData{
			Title:   "Chart",
			Version: h.renderer.version,
			Nav:     "chart",
		},
		Form:   form,
		Cities: geo.Cities(""),
	}

	if form.Date == "" {
		if wantsJSON(r) {
			h.renderer.renderError(w, r, errors.NewInvalidRequest("date is required"))
			return
		}
		h.renderer.renderPage(w, r, "chart", data)
		return
	}

	input, err := chartInput(form, r)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	out, err := ops.Chart(h.cfg, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, out)
		return
	}

	data.Chart = out
	// If htmx targets #chart-result, render only the result fragment
	if r.Header.Get("HX-Target") == "chart-result" {
		h.renderer.renderBlock(w, http.StatusOK, "chart", "chart-result", data)
		return
	}
	h.renderer.renderPage(w, r, "chart", data)
}

// HandleReport handles GET /chart/report: the chart rendered as a markdown report.
func (h *Handlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	form := chartForm(r)
	if form.Date == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("date is required"))
		return
	}

	input, err := chartInput(form, r)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	out, err := ops.Chart(h.cfg, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	md := ops.Report(out)
	if r.URL.Query().Get("format") == "md" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(md))
		return
	}

	h.renderer.renderPage(w, r, "report", ReportPageData{
		PageData: PageData{
			Title:   "Report",
			Version: h.renderer.version,
			Nav:     "chart",
		},
		Form:         form,
		RenderedHTML: renderMarkdown(md),
	})
}

// HandleCities handles GET /cities: the known birth places, optionally by country.
func (h *Handlers) HandleCities(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")

	result, err := ops.Cities(ops.CitiesInput{Country: country})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	h.renderer.renderPage(w, r, "cities", CitiesPageData{
		PageData: PageData{
			Title:   "Cities",
			Version: h.renderer.version,
			Nav:     "cities",
		},
		Country:   country,
		Cities:    result.Cities,
		Countries: geo.Countries(),
	})
}

func chartForm(r *http.Request) ChartForm {
	q := r.URL.Query()
	return ChartForm{
		Date:      strings.TrimSpace(q.Get("date")),
		Time:      strings.TrimSpace(q.Get("time")),
		City:      strings.TrimSpace(q.Get("city")),
		Latitude:  strings.TrimSpace(q.Get("lat")),
		Longitude: strings.TrimSpace(q.Get("lon")),
		Timezone:  strings.TrimSpace(q.Get("timezone")),
		Minor:     parseBoolParam(r, "include_minor"),
		Exclude:   strings.TrimSpace(q.Get("exclude")),
	}
}

// chartInput converts the form into a Chart request. include_minor is only
// forwarded when present so the config default applies otherwise.
func chartInput(form ChartForm, r *http.Request) (ops.ChartInput, error) {
	input := ops.ChartInput{
		Birth: ops.Birth{
			Date:     form.Date,
			Time:     form.Time,
			City:     form.City,
			Timezone: form.Timezone,
		},
		ExcludeBodies: splitList(form.Exclude),
	}

	var err error
	if input.Latitude, err = parseFloatParam(form.Latitude, "lat"); err != nil {
		return ops.ChartInput{}, err
	}
	if input.Longitude, err = parseFloatParam(form.Longitude, "lon"); err != nil {
		return ops.ChartInput{}, err
	}

	if r.URL.Query().Has("include_minor") {
		minor := form.Minor
		input.IncludeMinor = &minor
	}
	return input, nil
}

// parseFloatParam returns nil for an empty value.
func parseFloatParam(s, name string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.NewInvalidRequest(name + " must be a number")
	}
	return &v, nil
}

// parseBoolParam parses a boolean query parameter.
func parseBoolParam(r *http.Request, name string) bool {
	s := r.URL.Query().Get(name)
	return s == "true" || s == "1" || s == "on"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
