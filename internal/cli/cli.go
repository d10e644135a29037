// Package cli implements the radar command line tool: it loads a dataset
// once, ranks it locally and prints or exports the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/scout/internal/adapters/dataset"
	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/profile"
	"github.com/okian/scout/pkg/logger"
)

// ErrNoSource is returned when a command needs a dataset and neither --data
// nor --url is set.
var ErrNoSource = errors.New("no dataset source: set --data or --url")

const defaultFetchTimeout = 30 * time.Second

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dataPath     string
	dataURL      string
	sheet        string
	profilesPath string
	language     string
	logLevel     string
	logFormat    string
	timeout      time.Duration
}

// NewRootCommand builds the radar command tree.
func NewRootCommand() *cobra.Command {
	ro := &rootOptions{}

	root := &cobra.Command{
		Use:   "radar",
		Short: "Role-based percentile rankings for football players",
		Long: `Rank the players of a Wyscout style export (CSV or XLSX) by role.

Each role category is a weighted sum of metrics; the weighted scores are
turned into percentiles within the comparison population and the overall
value is the mean of the category percentiles.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(logger.WithFormat(ro.logFormat), logger.WithWriter(cmd.ErrOrStderr())); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return logger.SetLevelString(ro.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ro.dataPath, "data", "", "dataset file (.csv or .xlsx)")
	pf.StringVar(&ro.dataURL, "url", "", "dataset URL (http or https)")
	pf.StringVar(&ro.sheet, "sheet", "", "worksheet to read from XLSX datasets (default: first)")
	pf.StringVar(&ro.profilesPath, "profiles", "", "role profiles YAML (default: built-in)")
	pf.StringVar(&ro.language, "lang", "es", "category language")
	pf.StringVar(&ro.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&ro.logFormat, "log-format", "text", "log format (text or json)")
	pf.DurationVar(&ro.timeout, "timeout", defaultFetchTimeout, "dataset download timeout")

	root.AddCommand(rolesCmd(ro))
	root.AddCommand(rankCmd(ro))
	root.AddCommand(chartCmd(ro))
	root.AddCommand(exportCmd(ro))
	return root
}

// newService builds and starts a service for one command run. needData
// reports whether the command ranks players and so requires a dataset.
func (ro *rootOptions) newService(ctx context.Context, needData bool) (*service.Service, error) {
	if needData && ro.dataPath == "" && ro.dataURL == "" {
		return nil, ErrNoSource
	}
	catalog, err := profile.Load(ctx, ro.profilesPath)
	if err != nil {
		return nil, err
	}

	log := logger.Named("cli")
	opts := []service.Option{
		service.WithLogger(log),
		service.WithCatalog(catalog),
		service.WithDefaultLanguage(ro.language),
		service.WithFetcher(dataset.NewFetcher(
			dataset.WithTimeout(ro.timeout),
			dataset.WithFetchLogger(log),
		)),
	}
	if ro.sheet != "" {
		opts = append(opts, service.WithParseOptions(dataset.WithSheet(ro.sheet)))
	}
	if needData {
		if ro.dataPath != "" {
			opts = append(opts, service.WithDatasetPath(ro.dataPath))
		} else {
			opts = append(opts, service.WithDatasetURL(ro.dataURL))
		}
	}

	svc := service.New(opts...)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
