package errors

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "rangeslider.SetMinimum",
		Kind: KindConfig,
		Err:  stderrors.New("minimum must be lower than maximum"),
	}
	got := err.Error()
	want := "rangeslider.SetMinimum [config]: minimum must be lower than maximum"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := New("test.op", KindConfig, sentinel)
	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should see the wrapped sentinel")
	}
	if err.Timestamp.IsZero() {
		t.Error("New should set Timestamp")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindParsing, "parsing"},
		{KindRender, "render"},
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

	err.Op = "rangeslider.notify"
	if got, want := err.Error(), "panic in rangeslider.notify: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Source: "slider.yaml", Field: "style.track", Got: "#zz"}
	want := "failed to parse style.track in slider.yaml: got #zz"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{
		onError: func(err *Error) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	Report(&Error{
		Op:   "test.op",
		Kind: KindParsing,
		Err:  &ParseError{Source: "test", Field: "x", Got: nil},
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError: func(*Error) { called = true },
		onPanic: func(*PanicError) { called = true },
	}
	defer SetHandler(SetHandler(handler))

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if !strings.Contains(captured.StackTrace, "TestRecover") {
		t.Errorf("stack should include the panicking test, got: %s", captured.StackTrace)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	first, _, _ := strings.Cut(stack, "\n")
	if !strings.HasSuffix(first, ".TestCaptureStack") {
		t.Errorf("innermost frame = %q, want the caller", first)
	}
	if !strings.Contains(stack, "testing.tRunner") {
		t.Errorf("stack trace should reach the test runner, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	custom := &testHandler{}
	prev := SetHandler(custom)
	defer SetHandler(prev)

	if got := SetHandler(nil); got != custom {
		t.Errorf("SetHandler returned %T, want the replaced handler", got)
	}
	h, ok := Handler().(*LogHandler)
	if !ok {
		t.Fatalf("SetHandler(nil) installed %T, want *LogHandler", Handler())
	}
	if h.Verbose {
		t.Error("default LogHandler should not be verbose")
	}
}

func TestLogHandler(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	h := &LogHandler{Logger: logger}

	h.HandleError(New("rangeslider.SetBounds", KindConfig, stderrors.New("width must be positive")))
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Level != logrus.ErrorLevel {
		t.Errorf("Level = %v, want error", entry.Level)
	}
	if entry.Data["op"] != "rangeslider.SetBounds" {
		t.Errorf("op field = %v", entry.Data["op"])
	}
	if entry.Data["kind"] != "config" {
		t.Errorf("kind field = %v", entry.Data["kind"])
	}
	if _, ok := entry.Data["stack"]; ok {
		t.Error("non-verbose handler should not log stacks")
	}

	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "rangeslider.notify", Value: "boom", StackTrace: "frame"})
	entry = hook.LastEntry()
	if entry.Message != "recovered panic: boom" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Data["stack"] != "frame" {
		t.Errorf("stack field = %v, want frame", entry.Data["stack"])
	}
	if len(hook.AllEntries()) != 2 {
		t.Errorf("entries = %d, want 2", len(hook.AllEntries()))
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
