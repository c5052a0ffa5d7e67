package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/javiermolinar/roboticarm/internal/arm"
	"github.com/javiermolinar/roboticarm/internal/config"
	"github.com/javiermolinar/roboticarm/internal/shell"
	"github.com/javiermolinar/roboticarm/internal/theme"
)

// loadConfig writes cfg to a temp file and loads it back the way the CLI does.
func loadConfig(t *testing.T, cfg *config.Config) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	loaded, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return loaded
}

// play runs a full session from configuration to exit and returns the
// engine and everything written.
func play(t *testing.T, cfg *config.Config, lines ...string) (*arm.Engine, string) {
	t.Helper()
	th, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t.Fatalf("failed to load theme: %v", err)
	}

	var out bytes.Buffer
	printer := shell.NewPrinter(&out, shell.PrinterOptions{Theme: th, Block: cfg.UI.Block})
	engine := arm.New(arm.Options{LegacyResize: cfg.Engine.LegacyResize}, printer)
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	s := shell.NewSession(engine, printer, in, &out, shell.Options{Prompt: cfg.Session.Prompt, Echo: true})
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	return engine, out.String()
}

func TestFullSession(t *testing.T) {
	cfg := loadConfig(t, config.Default())

	e, out := play(t, cfg,
		"size 3",
		"add 0",
		"add 0",
		"add 2",
		"mv 0 1",
		"rm 2",
		"undo 2",
		"replay 2",
		"size 2 persist",
		"exit",
	)

	if !slices.Equal(e.Slots(), []int{1, 1}) {
		t.Errorf("slots = %v, want [1 1]", e.Slots())
	}
	if !strings.Contains(out, "Replaying") {
		t.Fatalf("expected replay notice\n%s", out)
	}
	if !strings.HasSuffix(out, "> exit\nThank you for playing!\n") {
		t.Errorf("expected goodbye after exit, got tail %q", out[max(0, len(out)-60):])
	}
	if strings.Count(out, "Undoing") != 2 {
		t.Errorf("expected two undo steps\n%s", out)
	}
	// Replayed commands come back oldest first.
	replay := out[strings.Index(out, "Replaying"):]
	mv := strings.Index(replay, "\n> mv 0 1\n\n")
	rm := strings.Index(replay, "\n> rm 2\n\n")
	if mv < 0 || rm < 0 || mv > rm {
		t.Errorf("expected replay of mv then rm\n%s", out)
	}
}

func TestUndoReplayRoundTrip(t *testing.T) {
	cfg := loadConfig(t, config.Default())

	e, _ := play(t, cfg, "size 4", "add 3", "add 3", "mv 3 0", "rm 3", "add 1")
	before := e.Slots()
	history := len(e.History())

	var rec arm.Recorder
	replayer := arm.New(arm.Options{}, &rec)
	for _, h := range e.History() {
		if _, err := replayer.Execute(h.Command); err != nil {
			t.Fatalf("re-executing %s: %v", h.Command, err)
		}
	}
	if err := replayer.Undo(history); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if err := replayer.Replay(history); err != nil {
		t.Fatalf("Replay() error: %v", err)
	}
	if !slices.Equal(replayer.Slots(), before) {
		t.Errorf("slots after round trip = %v, want %v", replayer.Slots(), before)
	}
	if rec.Count(arm.EventRejected) != 0 {
		t.Errorf("unexpected rejections: %d", rec.Count(arm.EventRejected))
	}
}

func TestLegacyResizeFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.LegacyResize = true
	cfg = loadConfig(t, cfg)

	e, _ := play(t, cfg, "size 2", "add 1", "size 4 persist")

	if !slices.Equal(e.Slots(), []int{0, 1, 0, 0, 0}) {
		t.Errorf("slots = %v, want [0 1 0 0 0]", e.Slots())
	}
}

func TestCustomBlockAndPrompt(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Block = "▇"
	cfg.UI.Theme = "mono"
	cfg.Session.Prompt = "arm$ "
	cfg = loadConfig(t, cfg)

	_, out := play(t, cfg, "size 2", "add 1", "add 1")

	if !strings.Contains(out, "arm$ add 1\n") {
		t.Errorf("expected custom prompt\n%s", out)
	}
	if !strings.Contains(out, "0: \n1: ▇▇\n") {
		t.Errorf("expected custom block glyph\n%s", out)
	}
}
