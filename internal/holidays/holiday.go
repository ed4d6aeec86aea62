// Package holidays computes the holiday calendar observed by the TRF3 regional
// court (São Paulo and Mato Grosso do Sul) for a given year.
package holidays

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the category of a holiday record.
type Type string

const (
	TypeNacional  Type = "nacional"
	TypeLegal     Type = "legal"
	TypeEstadual  Type = "estadual"
	TypeMunicipal Type = "municipal"
	TypeRecesso   Type = "recesso"
)

// ValidTypes returns all holiday categories.
func ValidTypes() []Type {
	return []Type{
		TypeNacional,
		TypeLegal,
		TypeEstadual,
		TypeMunicipal,
		TypeRecesso,
	}
}

// ParseType converts a category name into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidTypes() {
		if t == valid {
			return t, nil
		}
	}
	return "", fmt.Errorf("tipo de feriado desconhecido: %q", s)
}

// Holiday is a single entry of a year's calendar.
// UF is only set for estadual and municipal entries, Subsecao only for municipal ones.
type Holiday struct {
	Date     string `json:"date" csv:"date"` // ISO 8601 format: YYYY-MM-DD
	Name     string `json:"name" csv:"name"`
	Type     Type   `json:"type" csv:"type"`
	UF       string `json:"uf,omitempty" csv:"uf"`
	Subsecao string `json:"subsecao,omitempty" csv:"subsecao"`
}

// Supported year range of the Paschal full moon table.
const (
	MinYear = 1900
	MaxYear = 2199
)

// ErrYearOutOfRange is matched by errors.Is for every *RangeError.
var ErrYearOutOfRange = errors.New("year out of supported range")

// RangeError is returned by the movable holiday calculations when the year
// falls outside [MinYear, MaxYear].
type RangeError struct {
	Year int
	Min  int
	Max  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ano %d fora do intervalo suportado entre %d e %d", e.Year, e.Min, e.Max)
}

// Kind is the machine readable discriminator exposed to API clients.
func (e *RangeError) Kind() string {
	return "feriados_range_error"
}

func (e *RangeError) Is(target error) bool {
	return target == ErrYearOutOfRange
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &RangeError{Year: year, Min: MinYear, Max: MaxYear}
	}
	return nil
}
