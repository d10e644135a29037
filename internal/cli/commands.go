package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/scout/internal/adapters/export"
	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/types"
)

func rolesCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the configured roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := ro.newService(cmd.Context(), false)
			if err != nil {
				return err
			}
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ROLE\tLANGUAGES\tPOSITIONS")
			for _, r := range svc.Roles() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, strings.Join(r.Languages, ","), strings.Join(r.Positions, ","))
			}
			return tw.Flush()
		},
	}
}

func rankCmd(ro *rootOptions) *cobra.Command {
	var (
		qf     queryFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the top players of a role",
		Long: `Print the top players of a role by overall percentile.

Examples:
  radar rank --data players.xlsx --role Defender
  radar rank --data players.csv --role Winger --lang en --top 10 --max-age 23
  radar rank --url https://example.com/export.csv --role Striker --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := qf.query(ro.language)
			if err != nil {
				return err
			}
			svc, err := ro.newService(cmd.Context(), true)
			if err != nil {
				return err
			}
			res, err := svc.Rank(cmd.Context(), q)
			if err != nil {
				return err
			}
			switch format {
			case "table":
				return writeRankTable(cmd.OutOrStdout(), res)
			case "json":
				return writeJSON(cmd.OutOrStdout(), service.TopRows(res))
			default:
				return fmt.Errorf("unknown format %q (table or json)", format)
			}
		},
	}
	qf.bind(cmd, true)
	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")
	return cmd
}

func chartCmd(ro *rootOptions) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the radar chart payload of the top players as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := qf.query(ro.language)
			if err != nil {
				return err
			}
			svc, err := ro.newService(cmd.Context(), true)
			if err != nil {
				return err
			}
			radar, err := svc.Radar(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), radar)
		},
	}
	qf.bind(cmd, true)
	return cmd
}

func exportCmd(ro *rootOptions) *cobra.Command {
	var (
		qf     queryFlags
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every displayed player of a role with category percentiles",
		Long: `Export every displayed player of a role with category percentiles.

Examples:
  radar export --data players.xlsx --role Defender --format csv > defenders.csv
  radar export --data players.xlsx --role Defender --format xlsx --output defenders.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var write func(io.Writer, types.Table) error
			switch format {
			case "csv":
				write = export.WriteCSV
			case "xlsx":
				if output == "" {
					return errors.New("--output is required for xlsx")
				}
				write = export.WriteXLSX
			case "json":
				write = func(w io.Writer, t types.Table) error { return writeJSON(w, t) }
			default:
				return fmt.Errorf("unknown format %q (csv, xlsx or json)", format)
			}

			q, err := qf.query(ro.language)
			if err != nil {
				return err
			}
			svc, err := ro.newService(cmd.Context(), true)
			if err != nil {
				return err
			}
			table, err := svc.Table(cmd.Context(), q)
			if err != nil {
				return err
			}

			if output == "" {
				return write(cmd.OutOrStdout(), table)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("close output: %w", cerr)
				}
			}()
			return write(f, table)
		},
	}
	qf.bind(cmd, false)
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv, xlsx or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
