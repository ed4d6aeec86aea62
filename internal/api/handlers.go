package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/feriados-api/internal/export"
	"github.com/zapponejosh/feriados-api/internal/holidays"
	"github.com/zapponejosh/feriados-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(log *slog.Logger) *Handlers {
	return &Handlers{
		logger: log,
		now:    time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetCurrentYearHolidays handles GET /api/v1/feriados
func (h *Handlers) GetCurrentYearHolidays(w http.ResponseWriter, r *http.Request) {
	h.writeHolidays(w, r, h.now().Year())
}

// GetYearHolidays handles GET /api/v1/feriados/{year}
//
// Query parameters:
//   - tipo: category, repeatable or comma separated (nacional, legal, estadual, municipal, recesso)
//   - uf: state code
//   - subsecao: municipality name
//   - format: json (default), csv or ics
func (h *Handlers) GetYearHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}
	h.writeHolidays(w, r, year)
}

// GetEaster handles GET /api/v1/feriados/{year}/pascoa
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, r)
	if !ok {
		return
	}

	easter, err := holidays.Easter(year)
	if err != nil {
		h.writeCalendarError(w, r, year, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"year": year,
		"date": holidays.FormatDate(easter),
	})
}

// GetSubsecoes handles GET /api/v1/subsecoes
func (h *Handlers) GetSubsecoes(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, holidays.Subsecoes())
}

func (h *Handlers) writeHolidays(w http.ResponseWriter, r *http.Request, year int) {
	query := r.URL.Query()

	format, err := export.ParseFormat(query.Get("format"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	filter, err := parseFilter(query["tipo"], query.Get("uf"), query.Get("subsecao"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	all, err := holidays.Holidays(year)
	if err != nil {
		h.writeCalendarError(w, r, year, err)
		return
	}
	result := filter.Apply(all)

	logger.FromContext(r.Context(), h.logger).Debug("holidays computed",
		slog.Int("year", year),
		slog.Int("total", len(all)),
		slog.Int("matched", len(result)),
		slog.String("format", string(format)),
	)

	if format == export.FormatJSON {
		WriteSuccess(w, result)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=feriados_%d.%s", year, format))
	opts := export.Options{
		CalendarName: fmt.Sprintf("Feriados TRF3 %d", year),
		Now:          h.now,
	}
	if err := export.Write(w, format, result, opts); err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to export holidays",
			slog.Int("year", year),
			slog.String("format", string(format)),
			slog.Any("error", err),
		)
	}
}

// parseYear reads the {year} URL parameter, writing a 400 on failure.
func (h *Handlers) parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %q. Use an integer such as 2024", yearStr))
		return 0, false
	}
	return year, true
}

func (h *Handlers) writeCalendarError(w http.ResponseWriter, r *http.Request, year int, err error) {
	var rangeErr *holidays.RangeError
	if errors.As(err, &rangeErr) {
		WriteError(w, http.StatusNotFound, rangeErr.Error(), rangeErr.Kind())
		return
	}

	logger.FromContext(r.Context(), h.logger).Error("failed to compute holidays",
		slog.Int("year", year),
		slog.Any("error", err),
	)
	WriteInternalError(w, "Failed to compute holidays")
}

// parseFilter builds a holidays.Filter from query values.
// tipo values may be repeated or comma separated.
func parseFilter(tipos []string, uf, subsecao string) (holidays.Filter, error) {
	filter := holidays.Filter{
		UF:       strings.TrimSpace(uf),
		Subsecao: strings.TrimSpace(subsecao),
	}

	for _, raw := range tipos {
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			t, err := holidays.ParseType(name)
			if err != nil {
				return holidays.Filter{}, err
			}
			filter.Types = append(filter.Types, t)
		}
	}

	return filter, nil
}
