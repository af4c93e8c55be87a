package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/colplot-go/pkg/colplot"
	"github.com/ukaji3/colplot-go/pkg/colplot/models"
)

func newPlotCmd(g *globalFlags, log *logrus.Logger) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Load, filter to one month and render a low/average/high scatter plot",
		Long: `plot loads the configured columns, keeps the rows whose month column
equals the configured month, drops the leading offset rows and renders the
three y columns against the x column.

Settings come from flags, COLPLOT_* environment variables, a config file
(--config, or colplot.yaml/json/toml in . or ./configs/) and defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newPlotViper(cmd.Flags())
			if err != nil {
				return err
			}
			// Read config file
			used, err := readConfigFile(v, configPath)
			if err != nil {
				return err
			}
			if used != "" {
				log.WithField("file", used).Info("config file found")
			} else {
				log.Debug("no config file, using flags, environment and defaults")
			}

			cfg, err := loadPlotConfig(v)
			if err != nil {
				return err
			}

			chart, err := runPlot(cfg, log)
			if err != nil {
				return err
			}
			if g.json {
				return writeJSON(cmd.OutOrStdout(), chart, g.pretty)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file (yaml, json or toml)")
	registerPlotFlags(cmd.Flags(), defaultPlotConfig())
	return cmd
}

// runPlot executes the load, filter, offset and render steps of cfg.
func runPlot(cfg PlotConfig, log *logrus.Logger) (*models.Chart, error) {
	delim, err := parseDelimiter(cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	opts := colplot.DefaultOptions()
	opts.Delimiter = delim
	opts.Format = colplot.Format(cfg.Format)
	opts.Sheet = cfg.Sheet
	opts.Range = cfg.Range

	// Load table
	t, err := colplot.LoadColumns(cfg.Input, cfg.Columns, opts)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	log.WithFields(logrus.Fields{"file": cfg.Input, "rows": t.Len()}).Info("table loaded")

	// Keep the configured month
	if cfg.MonthColumn >= 0 {
		t, err = colplot.FilterRange(t, cfg.MonthColumn, cfg.Month, cfg.Month)
		if err != nil {
			return nil, fmt.Errorf("month filter failed: %w", err)
		}
		log.WithFields(logrus.Fields{"month": cfg.Month, "rows": t.Len()}).Debug("month filter applied")
	}
	// Drop leading rows
	if cfg.Offset > 0 {
		t = t.Slice(cfg.Offset, -1)
		log.WithFields(logrus.Fields{"offset": cfg.Offset, "rows": t.Len()}).Debug("leading rows dropped")
	}

	plotOpts := colplot.DefaultPlotOptions()
	plotOpts.Title = cfg.Title
	plotOpts.XLabel = cfg.XLabel
	plotOpts.YLabel = cfg.YLabel
	plotOpts.Width = cfg.Width
	plotOpts.Height = cfg.Height

	// Render plot
	chart, err := colplot.Plot(t, cfg.XColumn, cfg.YColumns, cfg.Output, plotOpts)
	if err != nil {
		return nil, fmt.Errorf("plot failed: %w", err)
	}
	log.WithFields(logrus.Fields{
		"file":   chart.Path,
		"points": t.Len(),
		"x":      chart.XAxisRange,
		"y":      chart.YAxisRange,
	}).Info("plot written")
	return chart, nil
}
