package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestUI(t *testing.T) (*UI, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return NewWithWriter(&buf), &buf
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name  string
		print func(u *UI)
		want  string
	}{
		{"ok", func(u *UI) { u.OK("File /tmp/a already exists") }, "ok: File /tmp/a already exists\n"},
		{"changed", func(u *UI) { u.Changed("File /tmp/a was created") }, "changed: File /tmp/a was created\n"},
		{"skipped", func(u *UI) { u.Skipped("check mode") }, "skipping: check mode\n"},
		{"info", func(u *UI) { u.Infof("using %s", "x") }, "[INFO] using x\n"},
		{"warning", func(u *UI) { u.Warning("careful") }, "[WARNING] careful\n"},
		{"error", func(u *UI) { u.Error("boom 1") }, "[ERROR] boom 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, buf := newTestUI(t)
			tt.print(u)
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	u, buf := newTestUI(t)
	u.Header("my_own_module")

	got := buf.String()
	if !strings.Contains(got, "  my_own_module\n") {
		t.Errorf("Header() output missing title: %q", got)
	}
	if strings.Count(got, strings.Repeat("=", 70)) != 2 {
		t.Errorf("Header() should print two borders: %q", got)
	}
}

func TestPromptsNonInteractive(t *testing.T) {
	u, _ := newTestUI(t)
	u.SetNonInteractive(true)

	if !u.IsNonInteractive() {
		t.Fatal("IsNonInteractive() = false after SetNonInteractive(true)")
	}

	if _, err := u.PromptInputRequired("Path", ""); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("PromptInputRequired() error = %v, want ErrNonInteractive", err)
	}

	content, err := u.PromptMultiline("Content", "keep")
	if !errors.Is(err, ErrNonInteractive) || content != "keep" {
		t.Errorf("PromptMultiline() = %q, %v", content, err)
	}

	yes, err := u.PromptYesNo("Create?", true)
	if !errors.Is(err, ErrNonInteractive) || !yes {
		t.Errorf("PromptYesNo() = %v, %v", yes, err)
	}
}
