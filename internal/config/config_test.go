package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := Load(newFlags(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Settings{Widgets: "widgets", Addr: ":8080", LogLevel: "info"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	settings := "widgets: from-file\naddr: \":9000\"\nlog-level: warn\n"
	if err := os.WriteFile(filepath.Join(dir, "buttongen.yaml"), []byte(settings), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv("BUTTONGEN_ADDR", ":7000")
	t.Setenv("BUTTONGEN_TOGGLE_LABEL", "More")

	got, err := Load(newFlags(t, "--widgets", "from-flag", "--dev"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Settings{
		Widgets:     "from-flag",
		Addr:        ":7000",
		LogLevel:    "warn",
		Dev:         true,
		ToggleLabel: "More",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ExplicitConfigMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := Load(newFlags(t, "--config", "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar(LogLevel); got != "BUTTONGEN_LOG_LEVEL" {
		t.Fatalf("unexpected env var %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Settings{LogLevel: "warn"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) || !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("expected warn level logger")
	}

	if _, err := NewLogger(Settings{LogLevel: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
