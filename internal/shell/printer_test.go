package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/javiermolinar/roboticarm/internal/arm"
)

func plainPrinter(buf *bytes.Buffer) *Printer {
	return NewPrinter(buf, PrinterOptions{Color: false})
}

func TestPrinter_StateChanged(t *testing.T) {
	var buf bytes.Buffer
	p := plainPrinter(&buf)

	p.StateChanged([]int{2, 0, 3})

	want := "0: XX\n1: \n2: XXX\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_CustomBlock(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, PrinterOptions{Block: "#"})

	p.StateChanged([]int{1})

	if got := buf.String(); got != "0: #\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrinter_Events(t *testing.T) {
	var buf bytes.Buffer
	p := plainPrinter(&buf)

	p.Undoing(arm.Move(0, 1))
	p.Replaying(arm.Add(2))
	p.Rejected(arm.Add(9), errors.New("invalid slot: slot 9 does not exist"))

	want := "Undoing mv 0 1\n\n" +
		"\n> add 2\n\n" +
		"invalid slot: slot 9 does not exist\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_Usage(t *testing.T) {
	var buf bytes.Buffer
	p := plainPrinter(&buf)

	p.Usage()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(commandDocs) {
		t.Fatalf("got %d usage lines, want %d", len(lines), len(commandDocs))
	}
	for i, doc := range commandDocs {
		if !strings.HasPrefix(lines[i], doc.Usage) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], doc.Usage)
		}
		if idx := strings.Index(lines[i], doc.Description); idx != usageColumnWidth {
			t.Errorf("line %d description at column %d, want %d", i, idx, usageColumnWidth)
		}
	}
}

func TestPrinter_ColorAddsEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, PrinterOptions{Color: true})

	p.StateChanged([]int{1})

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes with color on, got %q", buf.String())
	}
}
