package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/quickly/cmd/quickly/internal/config"
	"github.com/go-drift/quickly/cmd/quickly/internal/scene"
	"github.com/go-drift/quickly/pkg/animation"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/view"
)

const maxEvents = 3

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585b70"))
	highlightStyle = lipgloss.NewStyle().Reverse(true)
	eventStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// FrameMsg asks the model to step animations and flush layout.
type FrameMsg time.Time

// ReloadMsg carries a freshly loaded scene, or the error that prevented
// loading it.
type ReloadMsg struct {
	Scene *config.Scene
	Err   error
}

// events keeps the most recent scene events.
type events struct {
	lines []string
}

func (e *events) add(line string) {
	e.lines = append(e.lines, line)
	if len(e.lines) > maxEvents {
		e.lines = e.lines[len(e.lines)-maxEvents:]
	}
}

// Model is the bubbletea model of the interactive preview.
type Model struct {
	cfg      *config.Scene
	load     func() (*config.Scene, error)
	clock    animation.Clock
	backend  *native.MemoryBackend
	root     *view.Root
	scene    *scene.Scene
	events   *events
	selected int
	err      error
}

// New builds the scene described by cfg. load, if not nil, is called to
// reload the scene on request. A nil clock uses the system clock.
func New(cfg *config.Scene, load func() (*config.Scene, error), clock animation.Clock) Model {
	m := Model{load: load, clock: clock, events: &events{}}
	return m.rebuild(cfg)
}

func (m Model) rebuild(cfg *config.Scene) Model {
	if m.root != nil {
		m.root.Unmount()
	}
	m.cfg = cfg
	m.backend = native.NewMemoryBackend()
	env := view.NewEnvironment(m.backend, m.clock)
	m.scene = scene.Build(env, cfg)
	m.scene.OnEvent = m.events.add
	size := m.scene.Size()
	m.root = view.NewRoot(m.backend.Root(size), size)
	m.root.Mount(m.scene.Container)
	m.selected = min(m.selected, max(len(m.scene.Rows)-1, 0))
	m.err = nil
	return m
}

// Scene returns the scene currently shown.
func (m Model) Scene() *scene.Scene { return m.scene }

// Selected returns the index of the selected row.
func (m Model) Selected() int { return m.selected }

// Err returns the last reload or command error.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		m.scene.Env.Runner.Frame()
		m.root.Flush()
		return m, m.tick()

	case ReloadMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m = m.rebuild(msg.Scene)
		m.events.add("scene reloaded")
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		err = m.scene.ScrollTo(m.selected)
	case "down", "j":
		if m.selected < len(m.scene.Rows)-1 {
			m.selected++
		}
		err = m.scene.ScrollTo(m.selected)
	case "left", "h":
		err = m.scene.Swipe(m.selected, layout.SideTrailing)
	case "right", "l":
		err = m.scene.Swipe(m.selected, layout.SideLeading)
	case "enter", " ":
		err = m.scene.Press(m.selected)
	case "m", "tab":
		m.scene.ToggleMenu(true)
	case "t", "home":
		m.scene.List.ScrollToTop(true, nil)
	case "r":
		if m.load != nil {
			return m, m.reload
		}
	}
	if len(m.scene.Rows) == 0 {
		err = nil
	}
	m.err = err
	m.root.Flush()
	return m, nil
}

func (m Model) reload() tea.Msg {
	cfg, err := m.load()
	return ReloadMsg{Scene: cfg, Err: err}
}

// Canvas paints the current frame.
func (m Model) Canvas() *Canvas {
	var selected *native.MemoryHandle
	if m.selected < len(m.scene.Rows) {
		selected, _ = m.scene.Rows[m.selected].NativeHandle().(*native.MemoryHandle)
	}
	root, _ := m.root.NativeHandle().(*native.MemoryHandle)
	return Paint(root, m.cfg.Width, m.cfg.Height, selected)
}

func (m Model) View() string {
	var sections []string
	title := m.cfg.Title
	if title == "" {
		title = "quickly preview"
	}
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s  (%d rows)", title, len(m.scene.Rows))))
	sections = append(sections, frameStyle.Render(m.Canvas().Render(highlightStyle)))
	if m.err != nil {
		sections = append(sections, errorStyle.Render("error: "+m.err.Error()))
	}
	for _, line := range m.events.lines {
		sections = append(sections, eventStyle.Render(line))
	}
	sections = append(sections, helpStyle.Render(strings.Join([]string{
		"↑/↓ select", "←/→ swipe", "enter press", "m menu", "t top", "r reload", "q quit",
	}, " • ")))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the interactive preview of cfg. When path is set, r reloads
// it and watch reloads it on every change.
func Run(ctx context.Context, cfg *config.Scene, path string, watch bool) error {
	var load func() (*config.Scene, error)
	if path != "" {
		load = func() (*config.Scene, error) { return config.Load(path) }
	}
	p := tea.NewProgram(New(cfg, load, nil), tea.WithAltScreen(), tea.WithContext(ctx))
	if watch && path != "" {
		stop, err := Watch(path, p.Send)
		if err != nil {
			return err
		}
		defer stop()
	}
	_, err := p.Run()
	return err
}
