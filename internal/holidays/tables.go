package holidays

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v2"
)

//go:embed tables.yaml
var tablesYAML []byte

// fixedDate is a table row: a month-day and the region it applies to.
type fixedDate struct {
	MonthDay string `yaml:"date"` // MM-DD
	Name     string `yaml:"name"`
	UF       string `yaml:"uf"`
	Subsecao string `yaml:"subsecao"`
}

// fixedTables holds every fixed-date category.
type fixedTables struct {
	Nacional  []fixedDate `yaml:"nacional"`
	Legal     []fixedDate `yaml:"legal"`
	Recesso   []fixedDate `yaml:"recesso"`
	Estadual  []fixedDate `yaml:"estadual"`
	Municipal []fixedDate `yaml:"municipal"`
}

var tables = mustLoadTables(tablesYAML)

func mustLoadTables(data []byte) fixedTables {
	t, err := loadTables(data)
	if err != nil {
		panic(fmt.Sprintf("holidays: invalid embedded tables: %v", err))
	}
	return t
}

func loadTables(data []byte) (fixedTables, error) {
	var t fixedTables
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return fixedTables{}, fmt.Errorf("parse tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return fixedTables{}, err
	}
	return t, nil
}

// validate reports every malformed row at once.
func (t fixedTables) validate() error {
	var errs []error

	check := func(category Type, rows []fixedDate) {
		for i, row := range rows {
			if err := validateMonthDay(row.MonthDay); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", category, i, err))
			}
			if row.Name == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: name is required", category, i))
			}

			needUF := category == TypeEstadual || category == TypeMunicipal
			needSubsecao := category == TypeMunicipal
			if needUF != (row.UF != "") {
				errs = append(errs, fmt.Errorf("%s[%d]: uf must be set only for estadual and municipal rows", category, i))
			}
			if needSubsecao != (row.Subsecao != "") {
				errs = append(errs, fmt.Errorf("%s[%d]: subsecao must be set only for municipal rows", category, i))
			}
		}
	}

	check(TypeNacional, t.Nacional)
	check(TypeLegal, t.Legal)
	check(TypeRecesso, t.Recesso)
	check(TypeEstadual, t.Estadual)
	check(TypeMunicipal, t.Municipal)

	return errors.Join(errs...)
}

// validateMonthDay accepts MM-DD strings that exist in every year.
func validateMonthDay(md string) error {
	if _, err := time.Parse("01-02", md); err != nil {
		return fmt.Errorf("invalid date %q: %w", md, err)
	}
	if md == "02-29" {
		return errors.New("02-29 does not exist in every year")
	}
	return nil
}

// expand turns table rows into records for the given year.
func expand(year int, rows []fixedDate, typ Type) []Holiday {
	holidays := make([]Holiday, 0, len(rows))
	for _, row := range rows {
		h := Holiday{
			Date: fmt.Sprintf("%04d-%s", year, row.MonthDay),
			Name: row.Name,
			Type: typ,
		}
		switch typ {
		case TypeMunicipal:
			h.UF = row.UF
			h.Subsecao = row.Subsecao
		case TypeEstadual:
			h.UF = row.UF
		}
		holidays = append(holidays, h)
	}
	return holidays
}
