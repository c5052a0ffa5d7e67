package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/javiermolinar/roboticarm/internal/arm"
	"github.com/javiermolinar/roboticarm/internal/shell"
	"github.com/javiermolinar/roboticarm/internal/theme"
)

// play runs one arm session from in to out. echo is set for scripted input.
func (a *App) play(ctx context.Context, in io.Reader, out io.Writer, echo bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, closeLog, err := openDebugLogger(a.debug, a.debugPath)
	if err != nil {
		return err
	}
	defer closeLog()

	colored := a.colorEnabled(out)
	if colored {
		EnableColor()
	} else {
		DisableColor()
	}

	th, err := theme.Load(a.config.UI.Theme)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}

	printer := shell.NewPrinter(out, shell.PrinterOptions{
		Theme: th,
		Color: colored,
		Block: a.config.UI.Block,
	})
	engine := arm.New(arm.Options{LegacyResize: a.config.Engine.LegacyResize}, printer)

	logger.Info("config",
		"theme", th.Name,
		"color", colored,
		"legacy_resize", a.config.Engine.LegacyResize,
	)

	session := shell.NewSession(engine, printer, in, out, shell.Options{
		Prompt: a.config.Session.Prompt,
		Echo:   echo,
		Logger: logger,
	})
	return session.Run(ctx)
}
