package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/quietloop/artstream/internal/model"
)

func TestTerminal_Block(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})
	rec := model.NewRecord("Cat", "3x2", 3, 2, "pets", "/\\_/\\\n( o.o )")

	block := term.Block(rec)

	for _, want := range []string{"Cat", "/\\_/\\", "( o.o )", "3x2 · pets"} {
		if !strings.Contains(block, want) {
			t.Errorf("block missing %q:\n%s", want, block)
		}
	}
	if !strings.Contains(block, "╭") || !strings.Contains(block, "╰") {
		t.Errorf("block missing rounded border:\n%s", block)
	}
}

func TestTerminal_DisplayClearsFirst(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	rec := model.NewRecord("Cat", "1x1", 1, 1, "pets", "=^.^=")

	term.Display(rec)

	out := buf.String()
	if !strings.HasPrefix(out, clearScreen) {
		t.Error("Display must clear the screen before painting")
	}
	if !strings.Contains(out, "=^.^=") {
		t.Errorf("Display output missing art:\n%s", out)
	}
}

func TestTerminal_Clear(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).Clear()
	if buf.String() != clearScreen {
		t.Errorf("Clear() wrote %q, want %q", buf.String(), clearScreen)
	}
}

func TestTerminal_Banner(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).Banner(42, 2*time.Second)

	out := buf.String()
	if !strings.Contains(out, "artstream") {
		t.Errorf("banner missing program name:\n%s", out)
	}
	if !strings.Contains(out, "42 entries") {
		t.Errorf("banner missing entry count:\n%s", out)
	}
	if !strings.Contains(out, "2s") {
		t.Errorf("banner missing interval:\n%s", out)
	}
}

func TestTerminal_Goodbye(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).Goodbye()
	if !strings.Contains(buf.String(), "Goodbye") {
		t.Errorf("goodbye output = %q", buf.String())
	}
}
