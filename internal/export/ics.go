package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zapponejosh/feriados-api/internal/holidays"
)

const (
	icsProductID = "-//TRF3//Feriados API//PT-BR"
	icsUIDDomain = "feriados.trf3"
)

var icsEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\n", `\n`,
)

// WriteICS writes hs as an iCalendar file of all-day events.
// UIDs depend only on the record and its position, so re-exporting the
// same year updates events instead of duplicating them.
func WriteICS(w io.Writer, hs []holidays.Holiday, opts Options) error {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stamp := now().UTC().Format("20060102T150405Z")

	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format, args...)
		bw.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")
	if opts.CalendarName != "" {
		line("X-WR-CALNAME:%s", icsEscaper.Replace(opts.CalendarName))
	}

	for i, h := range hs {
		day, err := time.Parse(time.DateOnly, h.Date)
		if err != nil {
			return fmt.Errorf("holiday %d: invalid date %q: %w", i, h.Date, err)
		}

		line("BEGIN:VEVENT")
		line("UID:%s-%s-%d@%s", h.Date, h.Type, i, icsUIDDomain)
		line("DTSTAMP:%s", stamp)
		line("DTSTART;VALUE=DATE:%s", day.Format("20060102"))
		line("DTEND;VALUE=DATE:%s", day.AddDate(0, 0, 1).Format("20060102"))
		line("SUMMARY:%s", icsEscaper.Replace(h.Name))
		line("CATEGORIES:%s", h.Type)
		if loc := location(h); loc != "" {
			line("LOCATION:%s", icsEscaper.Replace(loc))
		}
		line("TRANSP:TRANSPARENT")
		line("END:VEVENT")
	}

	line("END:VCALENDAR")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

func location(h holidays.Holiday) string {
	switch {
	case h.Subsecao != "":
		return h.Subsecao + "/" + h.UF
	default:
		return h.UF
	}
}
