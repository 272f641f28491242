package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

type recordingHandler struct {
	errs   []*ViewError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *ViewError)  { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestViewErrorString(t *testing.T) {
	err := &ViewError{
		Op:   "config.Load",
		Kind: KindConfig,
		Err:  stderrors.New("bad velocity"),
	}
	want := "config.Load [config]: bad velocity"
	if got := err.Error(); got != want {
		t.Errorf("ViewError.Error() = %q, want %q", got, want)
	}
}

func TestViewErrorWithView(t *testing.T) {
	err := &ViewError{
		Op:   "view.CustomView.LayoutIfNeeded",
		Kind: KindLayout,
		View: "SwipeCell",
		Err:  stderrors.New("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "view=SwipeCell") {
		t.Errorf("error string %q should contain view name", got)
	}
}

func TestViewErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &ViewError{Op: "op", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to see the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLayout, "layout"},
		{KindAnimation, "animation"},
		{KindReuse, "reuse"},
		{KindGesture, "gesture"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "animation.Runner.Step"
	if got, want := err.Error(), "panic in animation.Runner.Step: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	h := &recordingHandler{}
	prev := SetHandler(h)
	defer SetHandler(prev)

	Report(&ViewError{Op: "op", Err: stderrors.New("x")})
	if len(h.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be filled in")
	}
	if !strings.Contains(h.errs[0].StackTrace, "TestReportSetsTimestamp") {
		t.Errorf("stack trace does not name the reporting test:\n%s", h.errs[0].StackTrace)
	}
	Report(nil)
	if len(h.errs) != 1 {
		t.Error("nil report should be ignored")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	h := &recordingHandler{}
	prev := SetHandler(h)
	defer SetHandler(prev)

	var got any
	func() {
		defer RecoverWithCallback("test.op", func(r any) { got = r })
		panic("kaboom")
	}()

	if got != "kaboom" {
		t.Errorf("callback received %v, want kaboom", got)
	}
	if len(h.panics) != 1 || h.panics[0].Op != "test.op" {
		t.Fatalf("expected one panic for test.op, got %+v", h.panics)
	}
	if h.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Out: &buf}
	h.HandleError(&ViewError{Op: "op", Kind: KindReuse, View: "Cell", Err: stderrors.New("x"), StackTrace: "trace"})
	out := buf.String()
	for _, want := range []string{"[quickly error] op [reuse]", "view=Cell", "Stack trace:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	buf.Reset()
	h.Verbose = false
	h.HandlePanic(&PanicError{Op: "op", Value: "v", StackTrace: "trace"})
	if strings.Contains(buf.String(), "Stack trace") {
		t.Error("non-verbose panic output should omit stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	prev := SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Error("expected LogHandler after SetHandler(nil)")
	}
	SetHandler(prev)
}
