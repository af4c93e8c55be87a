package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to configuration keys read from the environment.
const envPrefix = "COLPLOT"

// PlotConfig holds the plot driver configuration.
type PlotConfig struct {
	Input     string `mapstructure:"input"`
	Delimiter string `mapstructure:"delimiter"`
	Format    string `mapstructure:"format"`
	Sheet     string `mapstructure:"sheet"`
	Range     string `mapstructure:"range"`
	// Columns are the source columns loaded, in table order.
	Columns []int `mapstructure:"columns"`
	// MonthColumn is the table column compared with Month. -1 disables the filter.
	MonthColumn int     `mapstructure:"month_column"`
	Month       float64 `mapstructure:"month"`
	// Offset drops this many leading rows after filtering.
	Offset   int    `mapstructure:"offset"`
	XColumn  int    `mapstructure:"x_column"`
	YColumns []int  `mapstructure:"y_columns"`
	Output   string `mapstructure:"output"`
	Title    string `mapstructure:"title"`
	XLabel   string `mapstructure:"x_label"`
	YLabel   string `mapstructure:"y_label"`
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
}

// defaultPlotConfig mirrors the August temperature plot.
func defaultPlotConfig() PlotConfig {
	return PlotConfig{
		Input:       "toronto_monthly_temps.csv",
		Delimiter:   ",",
		Format:      "auto",
		Columns:     []int{0, 1, 2, 3, 4},
		MonthColumn: 1,
		Month:       8,
		Offset:      22,
		XColumn:     0,
		YColumns:    []int{2, 3, 4},
		Output:      "plot.png",
		Title:       "August High, Average and Low Temperatures vs. Year",
		XLabel:      "Year",
		YLabel:      "High, Average and Low in C",
		Width:       800,
		Height:      600,
	}
}

// registerPlotFlags defines the plot flags with defaults from d.
func registerPlotFlags(fs *pflag.FlagSet, d PlotConfig) {
	fs.String("input", d.Input, "Input file")
	fs.IntSlice("columns", d.Columns, "Source columns to load")
	fs.Int("month-column", d.MonthColumn, "Table column holding the month (-1 disables the month filter)")
	fs.Float64("month", d.Month, "Month value to keep")
	fs.Int("offset", d.Offset, "Leading rows to drop after filtering")
	fs.Int("x-column", d.XColumn, "Table column for the x axis")
	fs.IntSlice("y-columns", d.YColumns, "Table columns for the low, average and high series")
	fs.StringP("output", "o", d.Output, "Output image (.png or .svg)")
	fs.String("title", d.Title, "Plot title")
	fs.String("x-label", d.XLabel, "X axis label")
	fs.String("y-label", d.YLabel, "Y axis label")
	fs.Int("width", d.Width, "Image width in pixels")
	fs.Int("height", d.Height, "Image height in pixels")
}

// newPlotViper builds a viper instance with defaults, environment binding
// and the given flags bound to their keys.
func newPlotViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	d := defaultPlotConfig()
	v := viper.New()

	v.SetDefault("input", d.Input)
	v.SetDefault("delimiter", d.Delimiter)
	v.SetDefault("format", d.Format)
	v.SetDefault("sheet", d.Sheet)
	v.SetDefault("range", d.Range)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("month_column", d.MonthColumn)
	v.SetDefault("month", d.Month)
	v.SetDefault("offset", d.Offset)
	v.SetDefault("x_column", d.XColumn)
	v.SetDefault("y_columns", d.YColumns)
	v.SetDefault("output", d.Output)
	v.SetDefault("title", d.Title)
	v.SetDefault("x_label", d.XLabel)
	v.SetDefault("y_label", d.YLabel)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}
	return v, nil
}

// readConfigFile loads path, or searches for colplot.{yaml,json,toml} in
// the working directory and ./configs/ when path is empty. A missing
// searched file is not an error.
func readConfigFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("colplot")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// loadPlotConfig decodes the plot configuration from v.
func loadPlotConfig(v *viper.Viper) (PlotConfig, error) {
	var cfg PlotConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return PlotConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Input == "" {
		return PlotConfig{}, errors.New("config: input is required")
	}
	if cfg.Output == "" {
		return PlotConfig{}, errors.New("config: output is required")
	}
	if cfg.Offset < 0 {
		return PlotConfig{}, fmt.Errorf("config: offset must not be negative, got %d", cfg.Offset)
	}
	if _, err := parseDelimiter(cfg.Delimiter); err != nil {
		return PlotConfig{}, err
	}
	switch cfg.Format {
	case "", "auto", "delimited", "xlsx":
	default:
		return PlotConfig{}, fmt.Errorf("config: invalid format: %s (must be auto, delimited, or xlsx)", cfg.Format)
	}
	return cfg, nil
}

// parseDelimiter converts a delimiter flag value to a rune. "tab" and the
// escape sequence \t select a tab.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	case "":
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
