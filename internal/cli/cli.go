// Package cli implements the feriados command line tool.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/feriados-api/internal/export"
	"github.com/zapponejosh/feriados-api/internal/holidays"
)

const (
	rootUsage     = "feriados"
	rootShortDesc = "Calendário de feriados do TRF3"
	rootLongDesc  = "Calcula os feriados nacionais, estaduais, municipais, legais e o recesso\n" +
		"do Judiciário observados pelo TRF3 (SP e MS) entre 1900 e 2199."
)

// NewRootCmd builds the command tree. now supplies the default year.
func NewRootCmd(now func() time.Time) *cobra.Command {
	c := &cobra.Command{
		Use:           rootUsage,
		Short:         rootShortDesc,
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.AddCommand(newListCmd(now))
	c.AddCommand(newEasterCmd(now))
	c.AddCommand(newSubsecoesCmd())

	return c
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd(time.Now).Execute()
}

type listFlags struct {
	tipos    []string
	uf       string
	subsecao string
	format   string
}

func newListCmd(now func() time.Time) *cobra.Command {
	var flags listFlags

	c := &cobra.Command{
		Use:     "list [ano]",
		Short:   "Lista os feriados de um ano",
		Example: "feriados list 2024 --tipo nacional,legal --uf SP --format csv",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args, now)
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(flags.format)
			if err != nil {
				return err
			}

			filter := holidays.Filter{UF: flags.uf, Subsecao: flags.subsecao}
			for _, name := range flags.tipos {
				t, err := holidays.ParseType(name)
				if err != nil {
					return err
				}
				filter.Types = append(filter.Types, t)
			}

			all, err := holidays.Holidays(year)
			if err != nil {
				return err
			}

			opts := export.Options{
				CalendarName: fmt.Sprintf("Feriados TRF3 %d", year),
				Now:          now,
			}
			return export.Write(cmd.OutOrStdout(), format, filter.Apply(all), opts)
		},
	}

	c.Flags().StringSliceVarP(&flags.tipos, "tipo", "t", nil, "categorias: nacional, legal, estadual, municipal, recesso")
	c.Flags().StringVar(&flags.uf, "uf", "", "sigla do estado (SP, MS)")
	c.Flags().StringVarP(&flags.subsecao, "subsecao", "s", "", "município da subseção judiciária")
	c.Flags().StringVarP(&flags.format, "format", "f", "json", "formato de saída: json, csv ou ics")

	return c
}

func newEasterCmd(now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "pascoa [ano]",
		Short: "Mostra a data da Páscoa",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args, now)
			if err != nil {
				return err
			}
			easter, err := holidays.Easter(year)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), holidays.FormatDate(easter))
			return err
		},
	}
}

func newSubsecoesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subsecoes",
		Short: "Lista as subseções com feriados municipais",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSubsecoes(cmd.OutOrStdout(), holidays.Subsecoes())
		},
	}
}

func writeSubsecoes(w io.Writer, subsecoes []holidays.Subsecao) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UF\tSUBSEÇÃO")
	for _, s := range subsecoes {
		fmt.Fprintf(tw, "%s\t%s\n", s.UF, s.Subsecao)
	}
	return tw.Flush()
}

// yearArg parses the optional year argument, defaulting to the current year.
func yearArg(args []string, now func() time.Time) (int, error) {
	if len(args) == 0 {
		return now().Year(), nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("ano inválido %q: %w", args[0], err)
	}
	return year, nil
}
