package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/go-drift/quickly/cmd/quickly/internal/preview"
	"github.com/go-drift/quickly/pkg/native"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Preview a scene interactively in the terminal",
		Long: `Show a scene in the terminal and drive it from the keyboard.

Arrow keys select rows and swipe them, enter presses the selected row,
m toggles the menu, t scrolls to the top and q quits. With --watch the
scene file is reloaded whenever it is saved.

When standard output is not a terminal the painted first frame is printed
instead.

Flags:
  --watch             Reload the scene file on change`,
		Usage: "quickly preview [--watch] [scene.yaml]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	var path string
	var watch bool
	for _, arg := range args {
		switch arg {
		case "--watch", "-w":
			watch = true
		default:
			if path != "" {
				return fmt.Errorf("only one scene file may be given")
			}
			path = arg
		}
	}
	if watch && path == "" {
		return fmt.Errorf("--watch requires a scene file")
	}

	cfg, err := loadScene(path)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		_, root := mountScene(cfg)
		handle := root.NativeHandle().(*native.MemoryHandle)
		_, err := fmt.Fprintln(stdout, preview.Paint(handle, cfg.Width, cfg.Height, nil))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return preview.Run(ctx, cfg, path, watch)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
