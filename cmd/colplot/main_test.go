package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/colplot-go/pkg/colplot"
)

const tempsCSV = `Year,Month,Low,Mean,High
1995,7,16.0,22.1,28.0
1995,8,15.2,21.4,27.1
1996,8,14.8,20.9,26.4
1997,8,13.9,19.8,25.6
1998,8,16.1,22.3,28.9
`

func writeTemps(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temps.csv")
	if err := os.WriteFile(path, []byte(tempsCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, newLogger(&stderr, "info"))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHeaderCommand(t *testing.T) {
	out, _, err := execute(t, "header", "--json", writeTemps(t))
	if err != nil {
		t.Fatalf("header failed: %v", err)
	}

	var header []string
	if err := json.Unmarshal([]byte(out), &header); err != nil {
		t.Fatalf("Invalid JSON %q: %v", out, err)
	}
	if len(header) != 5 || header[4] != "High" {
		t.Errorf("Unexpected header: %v", header)
	}
}

func TestMeanCommand(t *testing.T) {
	out, _, err := execute(t, "mean", writeTemps(t), "--json", "-c", "0,1", "--of", "1")
	if err != nil {
		t.Fatalf("mean failed: %v", err)
	}

	var means []float64
	if err := json.Unmarshal([]byte(out), &means); err != nil {
		t.Fatalf("Invalid JSON %q: %v", out, err)
	}
	if len(means) != 1 || math.Abs(means[0]-7.8) > 1e-9 {
		t.Errorf("Expected [7.8], got %v", means)
	}
}

func TestFilterCommand(t *testing.T) {
	out, _, err := execute(t, "filter", writeTemps(t), "--json", "--column", "1", "--lower", "7", "--upper", "7")
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}

	var table struct {
		Rows [][]float64 `json:"rows"`
	}
	if err := json.Unmarshal([]byte(out), &table); err != nil {
		t.Fatalf("Invalid JSON %q: %v", out, err)
	}
	if len(table.Rows) != 1 || table.Rows[0][4] != 28.0 {
		t.Errorf("Unexpected rows: %v", table.Rows)
	}
}

func TestBoundsCommand(t *testing.T) {
	out, _, err := execute(t, "bounds", writeTemps(t), "-x", "0", "-y", "2,3,4")
	if err != nil {
		t.Fatalf("bounds failed: %v", err)
	}
	if strings.TrimSpace(out) != "(1994, 1999, 12, 31)" {
		t.Errorf("Unexpected bounds %q", out)
	}
}

func TestLoadCommandXLSX(t *testing.T) {
	xlsxPath := filepath.Join(t.TempDir(), "temps.xlsx")
	if _, _, err := execute(t, "load", writeTemps(t), "-c", "0,4", "--xlsx", xlsxPath); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	out, _, err := execute(t, "load", xlsxPath, "--json")
	if err != nil {
		t.Fatalf("load from xlsx failed: %v", err)
	}
	var table struct {
		Header []string    `json:"header"`
		Rows   [][]float64 `json:"rows"`
	}
	if err := json.Unmarshal([]byte(out), &table); err != nil {
		t.Fatalf("Invalid JSON %q: %v", out, err)
	}
	if len(table.Rows) != 5 || table.Header[1] != "High" || table.Rows[4][1] != 28.9 {
		t.Errorf("Unexpected table: %+v", table)
	}
}

func TestDescribeCommand(t *testing.T) {
	out, _, err := execute(t, "describe", writeTemps(t), "-c", "4")
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	if !strings.Contains(out, "High") || !strings.Contains(out, "28.9") {
		t.Errorf("Unexpected describe output %q", out)
	}
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "plot.png")

	out, logs, err := execute(t, "plot", "--json",
		"--input", writeTemps(t), "--offset", "1", "--output", output)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	var chart struct {
		Series []struct {
			Points int `json:"points"`
		} `json:"series"`
	}
	if err := json.Unmarshal([]byte(out), &chart); err != nil {
		t.Fatalf("Invalid JSON %q: %v", out, err)
	}
	// Four August rows remain after the month filter; the offset drops one.
	if len(chart.Series) != 3 || chart.Series[0].Points != 3 {
		t.Errorf("Unexpected chart: %+v", chart)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("Expected plot file: %v", err)
	}
	if !strings.Contains(logs, "plot written") {
		t.Errorf("Expected a log entry for the plot, got %q", logs)
	}
}

func TestPlotCommandEmptySelection(t *testing.T) {
	output := filepath.Join(t.TempDir(), "plot.png")

	_, _, err := execute(t, "plot", "--input", writeTemps(t), "--output", output)
	if !errors.Is(err, colplot.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput when the offset drops every row, got %v", err)
	}
}

func TestCommandErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	if _, _, err := execute(t, "header", missing); !errors.Is(err, colplot.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
	if _, _, err := execute(t, "load", writeTemps(t), "--format", "parquet"); err == nil {
		t.Error("Expected an error for an invalid format")
	}
	if _, _, err := execute(t, "mean", writeTemps(t), "-c", "0", "--of", "3"); !errors.Is(err, colplot.ErrBoundary) {
		t.Errorf("Expected ErrBoundary, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log := newLogger(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("Unexpected log output %q", buf.String())
	}

	if lvl := newLogger(&buf, "loud").GetLevel().String(); lvl != "info" {
		t.Errorf("Expected fallback level info, got %s", lvl)
	}
}
