package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/quickly/pkg/layout"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestParseLayoutArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    layoutOptions
		wantErr bool
	}{
		{"empty", nil, layoutOptions{scrollTo: -1}, false},
		{"path and sizes", []string{"--width", "30", "scene.yaml", "--height", "5"},
			layoutOptions{path: "scene.yaml", width: 30, height: 5, scrollTo: -1}, false},
		{"reveals", []string{"--reveal", "1:trailing", "--reveal", "0:Leading", "--menu", "--text"},
			layoutOptions{scrollTo: -1, menu: true, text: true, reveals: []reveal{
				{row: 1, side: layout.SideTrailing},
				{row: 0, side: layout.SideLeading},
			}}, false},
		{"scroll", []string{"--scroll-to", "4"}, layoutOptions{scrollTo: 4}, false},
		{"missing value", []string{"--width"}, layoutOptions{}, true},
		{"negative", []string{"--height", "-1"}, layoutOptions{}, true},
		{"bad side", []string{"--reveal", "1:up"}, layoutOptions{}, true},
		{"bad reveal", []string{"--reveal", "trailing"}, layoutOptions{}, true},
		{"unknown flag", []string{"--fast"}, layoutOptions{}, true},
		{"two files", []string{"a.yaml", "b.yaml"}, layoutOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLayoutArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLayoutArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(layoutOptions{}, reveal{})); diff != "" {
				t.Errorf("parseLayoutArgs(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte(`width: 20
height: 3
rows:
  - title: Alpha
    trailing:
      title: Del
      options: {size: 4}
  - title: Beta
    value: "7"
  - title: Gamma
  - title: Delta
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunLayout_Text(t *testing.T) {
	out := captureStdout(t)
	path := writeScene(t)
	if err := Execute([]string{"layout", "--text", "--reveal", "0:trailing", path}); err != nil {
		t.Fatalf("layout error = %v", err)
	}
	want := "ha              Del \n Beta             7 \n Gamma              \n"
	if got := out.String(); got != want {
		t.Errorf("layout --text =\n%q\nwant\n%q", got, want)
	}
}

func TestRunLayout_TreeAndScroll(t *testing.T) {
	out := captureStdout(t)
	path := writeScene(t)
	if err := Execute([]string{"layout", "--scroll-to", "3", path}); err != nil {
		t.Fatalf("layout error = %v", err)
	}
	dump := out.String()
	if !strings.Contains(dump, `Label "Delta" (1,2 18x1)`) {
		t.Errorf("row 3 not scrolled into the last line:\n%s", dump)
	}
	if !strings.Contains(dump, `Label "Beta" (1,0 15x1)`) {
		t.Errorf("row 1 not on the first line:\n%s", dump)
	}

	if err := Execute([]string{"layout", "--reveal", "9:leading", path}); err == nil {
		t.Error("out of range reveal succeeded")
	}
}

func TestExecute(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "quickly version "+Version) {
		t.Errorf("version output = %q", out.String())
	}
	out.Reset()
	if err := Execute(nil); err != nil || !strings.Contains(out.String(), "layout") {
		t.Errorf("help missing commands: %q, %v", out.String(), err)
	}
	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Error("unknown command succeeded")
	}
}
