package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/quickly/cmd/quickly/internal/config"
	"github.com/go-drift/quickly/pkg/layout"
	quicklytest "github.com/go-drift/quickly/pkg/testing"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// settle advances clock frame by frame until the scene stops animating.
func settle(t *testing.T, m Model, clock *quicklytest.FakeClock) Model {
	t.Helper()
	for i := 0; m.Scene().Env.Runner.IsAnimating(); i++ {
		if i > 200 {
			t.Fatal("animation did not settle")
		}
		clock.Advance(quicklytest.FrameDuration)
		m = send(m, FrameMsg(clock.Now()))
	}
	return m
}

func TestModel_KeysDriveScene(t *testing.T) {
	clock := quicklytest.NewFakeClock()
	m := New(config.Default(), nil, clock)

	m = send(m, key("down"), key("down"), key("up"))
	if m.Selected() != 1 {
		t.Fatalf("Selected() = %d, want 1", m.Selected())
	}
	m = send(m, key("left"))
	m = settle(t, m, clock)
	if got := m.Scene().Rows[1].State(); got != layout.Trailing(1) {
		t.Errorf("row 1 state = %v, want trailing(1)", got)
	}
	if !strings.Contains(m.View(), "Release notes: trailing shown") {
		t.Errorf("View() missing event:\n%s", m.View())
	}

	m = send(m, key("m"))
	m = settle(t, m, clock)
	if got := m.Scene().Container.State(); got != layout.Leading(1) {
		t.Errorf("container state = %v, want leading(1)", got)
	}
	if !strings.Contains(m.Canvas().String(), "Mailboxes") {
		t.Errorf("menu not painted:\n%s", m.Canvas())
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q did not return a command")
	}
}

func TestModel_Reload(t *testing.T) {
	clock := quicklytest.NewFakeClock()
	next := &config.Scene{Title: "Other", Width: 20, Height: 4, RowHeight: 1, FrameInterval: time.Millisecond, Rows: []config.Row{{Title: "solo"}}}
	m := New(config.Default(), func() (*config.Scene, error) { return next, nil }, clock)
	m = send(m, key("down"), key("down"))

	_, cmd := m.Update(key("r"))
	if cmd == nil {
		t.Fatal("r did not return a reload command")
	}
	m = send(m, cmd())
	if m.Selected() != 0 || len(m.Scene().Rows) != 1 {
		t.Errorf("selected=%d rows=%d after reload", m.Selected(), len(m.Scene().Rows))
	}
	if got := m.Canvas().Lines()[0]; got != " solo               " {
		t.Errorf("first line = %q", got)
	}

	m = send(m, ReloadMsg{Err: os.ErrNotExist})
	if m.Err() == nil || !strings.Contains(m.View(), "error:") {
		t.Error("reload error not shown")
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("rows: [{title: a}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	msgs := make(chan tea.Msg, 16)
	stop, err := Watch(path, func(msg tea.Msg) { msgs <- msg })
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("rows: [{title: a}, {title: b}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-msgs:
			reload, ok := msg.(ReloadMsg)
			if !ok || reload.Err != nil || reload.Scene == nil {
				continue
			}
			if len(reload.Scene.Rows) == 2 {
				return
			}
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}
}
