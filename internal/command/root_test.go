package command

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	absolute := filepath.Join(string(filepath.Separator), "tmp", "results.json")

	testCases := []struct {
		Workdir  string
		Path     string
		Expected string
	}{
		{Workdir: "", Path: ".env", Expected: ".env"},
		{Workdir: "project", Path: ".env", Expected: filepath.Join("project", ".env")},
		{Workdir: "project", Path: "out/results.json", Expected: filepath.Join("project", "out", "results.json")},
		{Workdir: "project", Path: absolute, Expected: absolute},
		{Workdir: "project", Path: "", Expected: ""},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, resolvePath(tc.Workdir, tc.Path); e != g {
			t.Errorf("resolvePath(%q, %q): expected %q, got %q", tc.Workdir, tc.Path, e, g)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelWarn,
	}

	for raw, expected := range testCases {
		if e, g := expected, parseLogLevel(raw); e != g {
			t.Errorf("parseLogLevel(%q): expected %v, got %v", raw, e, g)
		}
	}
}
