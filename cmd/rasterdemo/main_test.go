package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLine(t *testing.T) {
	out := filepath.Join(t.TempDir(), "line.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-method", "bresenham", "-x2", "10", "-y2", "5", "-width", "300", "-height", "200", "-output", out}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("run() = %d, want %d; stderr:\n%s", code, exitOK, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 || lines[0] != "Bresenham (line)" || !strings.HasSuffix(lines[1], "11 points") {
		t.Errorf("stdout = %q", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 200 {
		t.Errorf("image size = %dx%d, want 300x200", cfg.Width, cfg.Height)
	}
	if !strings.Contains(stderr.String(), "msg=saved") {
		t.Errorf("stderr = %q, want save log", stderr.String())
	}
}

func TestRunCircleRussianNoOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-method", "circle", "-r", "1", "-lang", "ru", "-dedup", "-output", ""}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("run() = %d; stderr:\n%s", code, stderr.String())
	}
	// Radius 1 yields eight entries covering four distinct cells.
	if s := stdout.String(); !strings.HasPrefix(s, "Брезенхем (Окружность)\n") || !strings.Contains(s, "4 точки") {
		t.Errorf("stdout = %q", s)
	}
}

func TestRunRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		log  string
	}{
		{"unknown method", []string{"-method", "spline"}, "invalid method"},
		{"coordinate range", []string{"-x2", "1001", "-output", ""}, "x2=1001"},
		{"zero radius", []string{"-method", "circle", "-r", "0", "-output", ""}, "invalid parameters"},
		{"bad flag", []string{"-nope"}, "flag provided but not defined"},
		{"extra args", []string{"stray"}, "unexpected arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != exitUsage {
				t.Errorf("run(%v) = %d, want %d", tt.args, code, exitUsage)
			}
			if !strings.Contains(stderr.String(), tt.log) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.log)
			}
		})
	}
}

func TestRunClamp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-method", "dda", "-x2", "5000", "-y2", "0", "-clamp", "-output", ""}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("run() = %d; stderr:\n%s", code, stderr.String())
	}
	// (0,0)-(1000,0) after clamping.
	if !strings.Contains(stdout.String(), "001 points") {
		t.Errorf("stdout = %q, want 1001 points", stdout.String())
	}
}

func TestRunBench(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "bench.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-bench", "3", "-chart", chart}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("run() = %d; stderr:\n%s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("table has %d lines, want header and 4 rows:\n%s", len(lines), stdout.String())
	}
	for _, want := range []string{"Step-by-step", "DDA", "Bresenham (line)", "Bresenham (circle)"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("table is missing %q", want)
		}
	}
	if _, err := os.Stat(chart); err != nil {
		t.Errorf("chart not written: %v", err)
	}
}
