package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/quickly/cmd/quickly/internal/config"
	"github.com/go-drift/quickly/cmd/quickly/internal/preview"
	"github.com/go-drift/quickly/cmd/quickly/internal/scene"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print the frames of a scene",
		Long: `Lay out a scene and print the resulting view tree.

Without a scene file, quickly.yaml in the current directory is used if it
exists, and the built-in demo scene otherwise. State flags are applied
without animation before the tree is printed.

Flags:
  --width N           Override the scene width
  --height N          Override the scene height
  --reveal ROW:SIDE   Swipe row ROW open on SIDE (leading or trailing); repeatable
  --menu              Open the hamburger menu
  --scroll-to ROW     Scroll the list until ROW is visible
  --text              Print the painted terminal frame instead of the tree`,
		Usage: "quickly layout [flags] [scene.yaml]",
		Run:   runLayout,
	})
}

type reveal struct {
	row  int
	side layout.Side
}

type layoutOptions struct {
	path     string
	width    int
	height   int
	reveals  []reveal
	menu     bool
	scrollTo int
	text     bool
}

func parseLayoutArgs(args []string) (layoutOptions, error) {
	opts := layoutOptions{scrollTo: -1}
	value := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		return args[i+1], nil
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--width", "--height", "--scroll-to":
			v, err := value(i, arg)
			if err != nil {
				return opts, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return opts, fmt.Errorf("%s: %q is not a non-negative integer", arg, v)
			}
			switch arg {
			case "--width":
				opts.width = n
			case "--height":
				opts.height = n
			default:
				opts.scrollTo = n
			}
			i++
		case "--reveal":
			v, err := value(i, arg)
			if err != nil {
				return opts, err
			}
			r, err := parseReveal(v)
			if err != nil {
				return opts, err
			}
			opts.reveals = append(opts.reveals, r)
			i++
		case "--menu":
			opts.menu = true
		case "--text":
			opts.text = true
		default:
			if strings.HasPrefix(arg, "--") {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("only one scene file may be given")
			}
			opts.path = arg
		}
	}
	return opts, nil
}

func parseReveal(s string) (reveal, error) {
	row, side, ok := strings.Cut(s, ":")
	if !ok {
		return reveal{}, fmt.Errorf("--reveal %q: want ROW:SIDE", s)
	}
	n, err := strconv.Atoi(row)
	if err != nil {
		return reveal{}, fmt.Errorf("--reveal %q: bad row: %w", s, err)
	}
	switch strings.ToLower(side) {
	case "leading":
		return reveal{row: n, side: layout.SideLeading}, nil
	case "trailing":
		return reveal{row: n, side: layout.SideTrailing}, nil
	default:
		return reveal{}, fmt.Errorf("--reveal %q: side must be leading or trailing", s)
	}
}

// loadScene reads path, or quickly.yaml from the working directory when
// path is empty.
func loadScene(path string) (*config.Scene, error) {
	if path != "" {
		return config.Load(path)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadOptional(dir)
}

func runLayout(args []string) error {
	opts, err := parseLayoutArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadScene(opts.path)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}

	s, root := mountScene(cfg)
	for _, r := range opts.reveals {
		if err := s.Reveal(r.row, r.side, false); err != nil {
			return err
		}
	}
	if opts.menu {
		s.ToggleMenu(false)
	}
	if opts.scrollTo >= 0 {
		if err := s.ScrollTo(opts.scrollTo); err != nil {
			return err
		}
	}
	root.Flush()

	handle := root.NativeHandle().(*native.MemoryHandle)
	if opts.text {
		_, err := fmt.Fprintln(stdout, preview.Paint(handle, cfg.Width, cfg.Height, nil))
		return err
	}
	return handle.Dump(stdout)
}

// mountScene builds cfg on a headless backend and mounts it at the scene
// size.
func mountScene(cfg *config.Scene) (*scene.Scene, *view.Root) {
	backend := native.NewMemoryBackend()
	s := scene.Build(view.NewEnvironment(backend, nil), cfg)
	root := view.NewRoot(backend.Root(s.Size()), s.Size())
	root.Mount(s.Container)
	return s, root
}
