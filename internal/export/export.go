// Package export renders holiday calendars as JSON, CSV or iCalendar.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/zapponejosh/feriados-api/internal/holidays"
)

// Format identifies an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatICS  Format = "ics"
)

// ParseFormat validates a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatICS:
		return f, nil
	default:
		return "", fmt.Errorf("formato desconhecido: %q (use json, csv ou ics)", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatICS:
		return "text/calendar; charset=utf-8"
	default:
		return "application/json"
	}
}

// Options configures Write.
type Options struct {
	// CalendarName is the X-WR-CALNAME of iCalendar output.
	CalendarName string
	// Now is the DTSTAMP of iCalendar events. Defaults to time.Now.
	Now func() time.Time
}

// Write encodes hs in the given format.
func Write(w io.Writer, f Format, hs []holidays.Holiday, opts Options) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, hs)
	case FormatICS:
		return WriteICS(w, hs, opts)
	default:
		return WriteJSON(w, hs)
	}
}

// WriteJSON writes hs as a JSON array.
func WriteJSON(w io.Writer, hs []holidays.Holiday) error {
	if hs == nil {
		hs = []holidays.Holiday{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(hs); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteCSV writes hs with a date,name,type,uf,subsecao header.
func WriteCSV(w io.Writer, hs []holidays.Holiday) error {
	if hs == nil {
		hs = []holidays.Holiday{}
	}
	if err := gocsv.Marshal(hs, w); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}
