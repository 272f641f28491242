// Package config loads the YAML scene files read by the quickly CLI.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/quickly/pkg/errors"
	"github.com/go-drift/quickly/pkg/sidepanel"
)

// DefaultFile is the scene file looked up in a directory.
const DefaultFile = "quickly.yaml"

// Defaults for fields a scene leaves out. Lengths are terminal cells.
const (
	DefaultWidth         = 48
	DefaultHeight        = 16
	DefaultRowHeight     = 1
	DefaultVelocity      = 60.0
	DefaultFrameInterval = 16 * time.Millisecond
)

// Scene describes a hamburger container whose content scrolls a list of
// swipeable rows.
type Scene struct {
	Title         string        `yaml:"title,omitempty"`
	Width         int           `yaml:"width,omitempty"`
	Height        int           `yaml:"height,omitempty"`
	RowHeight     int           `yaml:"row_height,omitempty"`
	Spacing       int           `yaml:"spacing,omitempty"`
	Velocity      float64       `yaml:"velocity,omitempty"`
	FrameInterval time.Duration `yaml:"frame_interval,omitempty"`
	Menu          *Panel        `yaml:"menu,omitempty"`
	Rows          []Row         `yaml:"rows"`
}

// Row is one swipe cell.
type Row struct {
	Title    string `yaml:"title"`
	Value    string `yaml:"value,omitempty"`
	Leading  *Panel `yaml:"leading,omitempty"`
	Trailing *Panel `yaml:"trailing,omitempty"`
}

// Panel is a side view revealed beside a row or the whole scene.
type Panel struct {
	Title   string            `yaml:"title"`
	Options sidepanel.Options `yaml:"options"`
}

// UnmarshalYAML decodes a panel with Options.Interactive defaulting to
// true.
func (p *Panel) UnmarshalYAML(node *yaml.Node) error {
	type plain Panel
	decoded := plain{Options: sidepanel.Options{Interactive: true}}
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*p = Panel(decoded)
	return nil
}

// Parse decodes a scene, fills defaults and validates it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads the scene at path. Errors are *errors.ViewError of
// KindConfig.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	s, err := Parse(data)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return s, nil
}

// LoadOptional reads DefaultFile in dir if present and returns the default
// scene otherwise.
func LoadOptional(dir string) (*Scene, error) {
	s, err := Load(filepath.Join(dir, DefaultFile))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return s, nil
}

// Default returns the built-in demo scene.
func Default() *Scene {
	s := &Scene{
		Title: "Inbox",
		Menu:  &Panel{Title: "Mailboxes", Options: sidepanel.Options{Size: 16, Interactive: true}},
	}
	for _, title := range []string{"Welcome", "Release notes", "Standup", "Invoice #42", "Lunch?", "Build failed", "Offsite plan", "Weekly digest"} {
		s.Rows = append(s.Rows, Row{
			Title:    title,
			Leading:  &Panel{Title: "Pin", Options: sidepanel.Options{Size: 5, Interactive: true}},
			Trailing: &Panel{Title: "Delete", Options: sidepanel.Options{Size: 8, Interactive: true}},
		})
	}
	s.applyDefaults()
	return s
}

func (s *Scene) applyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.RowHeight == 0 {
		s.RowHeight = DefaultRowHeight
	}
	if s.Velocity == 0 {
		s.Velocity = DefaultVelocity
	}
	if s.FrameInterval == 0 {
		s.FrameInterval = DefaultFrameInterval
	}
	s.Menu.applyVelocity(s.Velocity)
	for i := range s.Rows {
		s.Rows[i].Leading.applyVelocity(s.Velocity)
		s.Rows[i].Trailing.applyVelocity(s.Velocity)
	}
}

func (p *Panel) applyVelocity(velocity float64) {
	if p != nil && p.Options.Velocity == 0 {
		p.Options.Velocity = velocity
	}
}

// Validate checks sizes and every panel's options.
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 || s.RowHeight < 0 || s.Spacing < 0 {
		return fmt.Errorf("scene dimensions must not be negative")
	}
	if s.FrameInterval < 0 {
		return fmt.Errorf("frame_interval must not be negative")
	}
	if err := s.Menu.validate("menu"); err != nil {
		return err
	}
	for i, row := range s.Rows {
		if err := row.Leading.validate(fmt.Sprintf("rows[%d].leading", i)); err != nil {
			return err
		}
		if err := row.Trailing.validate(fmt.Sprintf("rows[%d].trailing", i)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Panel) validate(path string) error {
	if p == nil {
		return nil
	}
	if err := p.Options.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func configError(op string, err error) error {
	return &errors.ViewError{Op: op, Kind: errors.KindConfig, Err: err}
}
