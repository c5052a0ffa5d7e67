package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/roboticarm/internal/config"
)

// execute runs the CLI with args and stdin, isolated from the user's config.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"ROBOTICARM_LEGACY_RESIZE", "ROBOTICARM_PROMPT", "ROBOTICARM_THEME", "ROBOTICARM_COLOR", "ROBOTICARM_BLOCK"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}

	a := NewApp(nil)
	var out bytes.Buffer
	a.root.SetIn(strings.NewReader(stdin))
	a.root.SetOut(&out)
	a.root.SetErr(&out)
	a.root.SetArgs(args)
	err := a.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "roboticarm dev") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestRoot_PlaysFromStdin(t *testing.T) {
	out, err := execute(t, "size 2\nadd 1\nexit\n", "--no-color")
	if err != nil {
		t.Fatalf("play error: %v", err)
	}
	for _, want := range []string{"ROBOTIC ARM", "0: \n1: X\n", "Thank you for playing!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no escape codes with --no-color: %q", out)
	}
}

func TestRun_Script(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "moves.txt")
	body := "size 2\nadd 0\nadd 0\nmv 0 1\nundo 1\nreplay 1\n"
	if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	out, err := execute(t, "", "run", script, "--config", filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	for _, want := range []string{
		"> mv 0 1\n",
		"Undoing mv 0 1\n",
		"0: X\n1: X\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRun_MissingScript(t *testing.T) {
	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing script")
	}
	if !strings.Contains(err.Error(), "opening script") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := config.Default()
	cfg.UI.Block = "#"
	cfg.Session.Prompt = "arm> "
	cfg.Engine.LegacyResize = true
	if err := cfg.SaveTo(cfgPath); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	out, err := execute(t, "size 1\nadd 0\nsize 2 persist\n", "run", "-", "--config", cfgPath)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out, "arm> size 1\n") {
		t.Errorf("expected configured prompt\n%s", out)
	}
	if !strings.Contains(out, "0: #\n1: \n2: \n") {
		t.Errorf("expected legacy resize with # blocks\n%s", out)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[ui]\ncolor = \"purple\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := execute(t, "", "run", "-", "--config", cfgPath)
	if err == nil {
		t.Fatal("expected config error")
	}
}

func TestDebugLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")

	_, err := execute(t, "size 1\nadd 0\nadd 9\n", "run", "-", "--debug", "--debug-log", logPath)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading debug log: %v", err)
	}
	log := string(data)
	for _, want := range []string{`"msg":"session start"`, `"msg":"command dispatched"`, `"msg":"command rejected"`, `"msg":"debug end"`} {
		if !strings.Contains(log, want) {
			t.Errorf("debug log missing %s\n%s", want, log)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	tests := []struct {
		name    string
		color   string
		noColor bool
		want    bool
	}{
		{"always", config.ColorAlways, false, true},
		{"never", config.ColorNever, false, false},
		{"auto on buffer", config.ColorAuto, false, false},
		{"flag wins", config.ColorAlways, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.UI.Color = tt.color
			a := &App{config: cfg, noColor: tt.noColor}
			if got := a.colorEnabled(&buf); got != tt.want {
				t.Errorf("colorEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommands_Registered(t *testing.T) {
	a := NewApp(nil)
	for _, name := range []string{"version", "config", "run", "tui"} {
		cmd, _, err := a.root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
