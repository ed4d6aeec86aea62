package holidays

import (
	"slices"
	"sort"
	"strings"
)

// NationalHolidays returns the fixed-date national holidays.
func NationalHolidays(year int) []Holiday {
	return expand(year, tables.Nacional, TypeNacional)
}

// JudicialRecess returns one record per day of the judicial recess
// (January 1-6 and December 20-31).
func JudicialRecess(year int) []Holiday {
	return expand(year, tables.Recesso, TypeRecesso)
}

// MunicipalHolidays returns the holidays of the municipalities hosting a
// court subsection. Every record carries UF and Subsecao.
func MunicipalHolidays(year int) []Holiday {
	return expand(year, tables.Municipal, TypeMunicipal)
}

// StateHolidays returns the state holidays. Every record carries UF.
func StateHolidays(year int) []Holiday {
	return expand(year, tables.Estadual, TypeEstadual)
}

// Holidays returns the complete calendar for a year, sorted by date.
//
// Records sharing a date keep the category order municipal, estadual,
// recesso, easter, nacional, legal. A *RangeError from the movable
// holidays is returned unchanged and no partial result is produced.
func Holidays(year int) ([]Holiday, error) {
	easter, err := EasterHolidays(year)
	if err != nil {
		return nil, err
	}
	legal, err := LegalHolyWeekHolidays(year)
	if err != nil {
		return nil, err
	}

	all := slices.Concat(
		MunicipalHolidays(year),
		StateHolidays(year),
		JudicialRecess(year),
		easter,
		NationalHolidays(year),
		legal,
	)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date < all[j].Date
	})

	return all, nil
}

// Filter selects holidays for a jurisdiction and set of categories.
// Zero values match everything.
type Filter struct {
	Types    []Type
	UF       string
	Subsecao string
}

// Match reports whether h belongs to the filtered calendar.
//
// Records without a region (national, legal, recess) apply everywhere.
// A subsecao filter without a UF restricts state records to the state of
// that subsecao.
func (f Filter) Match(h Holiday) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, h.Type) {
		return false
	}

	uf := f.uf()
	switch h.Type {
	case TypeEstadual:
		return uf == "" || strings.EqualFold(h.UF, uf)
	case TypeMunicipal:
		if uf != "" && !strings.EqualFold(h.UF, uf) {
			return false
		}
		return f.Subsecao == "" || strings.EqualFold(h.Subsecao, f.Subsecao)
	default:
		return true
	}
}

// uf returns the filtered state, falling back to the state of the
// filtered subsecao.
func (f Filter) uf() string {
	if f.UF != "" || f.Subsecao == "" {
		return f.UF
	}
	for _, row := range tables.Municipal {
		if strings.EqualFold(row.Subsecao, f.Subsecao) {
			return row.UF
		}
	}
	return ""
}

// Apply returns the holidays matching f, preserving order.
func (f Filter) Apply(hs []Holiday) []Holiday {
	out := make([]Holiday, 0, len(hs))
	for _, h := range hs {
		if f.Match(h) {
			out = append(out, h)
		}
	}
	return out
}

// Subsecao identifies a court subsection by state and municipality.
type Subsecao struct {
	UF       string `json:"uf" csv:"uf"`
	Subsecao string `json:"subsecao" csv:"subsecao"`
}

// Subsecoes lists the distinct subsections of the municipal table sorted
// by UF and name.
func Subsecoes() []Subsecao {
	seen := make(map[Subsecao]bool)
	var out []Subsecao
	for _, row := range tables.Municipal {
		s := Subsecao{UF: row.UF, Subsecao: row.Subsecao}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].UF != out[j].UF {
			return out[i].UF < out[j].UF
		}
		return out[i].Subsecao < out[j].Subsecao
	})

	return out
}
