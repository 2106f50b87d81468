package logging

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newBufferLogger(level LogLevel) (*TraceLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogger(&LoggerConfig{Level: level, Format: "json", Output: buf}), buf
}

func TestTraceLogger_KeyValueArgs(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	// The same call shape the engine uses: message plus key/value pairs.
	l.Info("Algorithm run completed", "algorithm", "bubble", "input_len", 4)

	out := buf.String()
	assert.Equal(t, "Algorithm run completed", gjson.Get(out, "msg").String())
	assert.Equal(t, "bubble", gjson.Get(out, "algorithm").String())
	assert.Equal(t, int64(4), gjson.Get(out, "input_len").Int())
	assert.NotContains(t, out, "%!", "args must become attributes, not format verbs")
}

func TestTraceLogger_SlogAttrArgs(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.Info("mixed args", slog.String("kind", "attr"), "plain", 1)

	out := buf.String()
	assert.Equal(t, "attr", gjson.Get(out, "kind").String())
	assert.Equal(t, int64(1), gjson.Get(out, "plain").Int())
}

func TestTraceLogger_DanglingArg(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.Info("odd args", "orphan")

	assert.Equal(t, "orphan", gjson.Get(buf.String(), "!BADKEY").String())
}

func TestTraceLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("visible")
	assert.Equal(t, "visible", gjson.Get(buf.String(), "msg").String())
}

func TestTraceLogger_WithHelpers(t *testing.T) {
	base, buf := newBufferLogger(LogLevelDebug)

	scoped := base.WithComponent("engine").WithRun("run-1", "bubble").WithContext("tenant", "t1")
	scoped.Info("scoped entry")

	out := buf.String()
	assert.Equal(t, "engine", gjson.Get(out, "component").String())
	assert.Equal(t, "run-1", gjson.Get(out, "run_id").String())
	assert.Equal(t, "bubble", gjson.Get(out, "algorithm").String())
	assert.Equal(t, "t1", gjson.Get(out, "tenant").String())

	// The With* helpers clone; the base logger stays unscoped.
	buf.Reset()
	base.Info("base entry")
	assert.False(t, gjson.Get(buf.String(), "component").Exists())
}

func TestTraceLogger_ErrorWithStack(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.ErrorWithStack(fmt.Errorf("boom"), "run blew up", "algorithm", "quick")

	out := buf.String()
	assert.Equal(t, "run blew up", gjson.Get(out, "msg").String())
	assert.Equal(t, "boom", gjson.Get(out, "error").String())
	assert.Equal(t, "quick", gjson.Get(out, "algorithm").String())
	assert.NotEmpty(t, gjson.Get(out, "stack_trace").String())
}

func TestTraceLogger_LogAlgorithmRun(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.LogAlgorithmRun("heap", 12, 3*time.Millisecond, true, nil)
	out := buf.String()
	assert.Equal(t, "Algorithm run completed", gjson.Get(out, "msg").String())
	assert.Equal(t, int64(12), gjson.Get(out, "step_count").Int())
	assert.True(t, gjson.Get(out, "converged").Bool())

	buf.Reset()
	l.LogAlgorithmRun("heap", 3, time.Millisecond, false, fmt.Errorf("bad index"))
	out = buf.String()
	assert.Equal(t, "Algorithm run failed", gjson.Get(out, "msg").String())
	assert.Equal(t, "bad index", gjson.Get(out, "error").String())
}

func TestTraceLogger_LogSandboxRun(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.LogSandboxRun("instrumented", 7, time.Millisecond, nil)
	out := buf.String()
	assert.Equal(t, "User program completed", gjson.Get(out, "msg").String())
	assert.Equal(t, "instrumented", gjson.Get(out, "mode").String())
	assert.True(t, gjson.Get(out, "success").Bool())

	buf.Reset()
	l.LogSandboxRun("uninstrumented", 1, time.Millisecond, fmt.Errorf("user code: panic"))
	out = buf.String()
	assert.Equal(t, "User program failed", gjson.Get(out, "msg").String())
	assert.False(t, gjson.Get(out, "success").Bool())
}

func TestTraceLogger_StartTimer(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	done := l.StartTimer("seal")
	done()

	out := buf.String()
	assert.Equal(t, "Operation completed", gjson.Get(out, "msg").String())
	assert.Equal(t, "seal", gjson.Get(out, "operation").String())
}

// recordingLogger captures calls so the dispatch helpers can be checked
// against a plain Logger implementation.
type recordingLogger struct {
	level string
	msg   string
	args  []any
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.level, r.msg, r.args = "debug", msg, args }
func (r *recordingLogger) Info(msg string, args ...any)  { r.level, r.msg, r.args = "info", msg, args }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.level, r.msg, r.args = "warn", msg, args }
func (r *recordingLogger) Error(msg string, args ...any) { r.level, r.msg, r.args = "error", msg, args }

func TestLogAlgorithmRun_Dispatch(t *testing.T) {
	// Plain Logger: falls back to the generic methods.
	rec := &recordingLogger{}
	LogAlgorithmRun(rec, "bubble", 9, time.Millisecond, true, nil)
	assert.Equal(t, "info", rec.level)
	assert.Equal(t, "Algorithm run completed", rec.msg)
	assert.Contains(t, rec.args, "bubble")

	LogAlgorithmRun(rec, "bubble", 2, time.Millisecond, false, fmt.Errorf("bad index"))
	assert.Equal(t, "error", rec.level)
	assert.Equal(t, "Algorithm run failed", rec.msg)

	// TraceLogger: routed to the typed helper.
	l, buf := newBufferLogger(LogLevelDebug)
	LogAlgorithmRun(l, "bubble", 9, time.Millisecond, true, nil)
	assert.Equal(t, "Algorithm run completed", gjson.Get(buf.String(), "msg").String())
	assert.True(t, gjson.Get(buf.String(), "converged").Bool())
}

func TestLogSandboxRun_Dispatch(t *testing.T) {
	rec := &recordingLogger{}
	LogSandboxRun(rec, "instrumented", 5, time.Millisecond, nil)
	assert.Equal(t, "info", rec.level)
	assert.Equal(t, "User program completed", rec.msg)

	LogSandboxRun(rec, "instrumented", 5, time.Millisecond, fmt.Errorf("user code: boom"))
	assert.Equal(t, "warn", rec.level)
	assert.Equal(t, "User program failed", rec.msg)

	l, buf := newBufferLogger(LogLevelDebug)
	LogSandboxRun(l, "uninstrumented", 2, time.Millisecond, nil)
	assert.Equal(t, "uninstrumented", gjson.Get(buf.String(), "mode").String())
}

func TestSlogAdapter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewSlogAdapter(slog.New(slog.NewJSONHandler(buf, nil)))

	l.Info("adapted", "key", "value")

	out := buf.String()
	assert.Equal(t, "adapted", gjson.Get(out, "msg").String())
	assert.Equal(t, "value", gjson.Get(out, "key").String())
}

func TestNewDefaultSlogLogger(t *testing.T) {
	require.NotNil(t, NewDefaultSlogLogger())
}

func TestDefaultLoggerConfig_WritesToStderr(t *testing.T) {
	assert.Equal(t, os.Stderr, DefaultLoggerConfig().Output)
}

func TestNewLogger_CustomAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: buf, CustomAttrs: map[string]interface{}{"service": "sorttrace"}})

	l.Info("entry")

	assert.Equal(t, "sorttrace", gjson.Get(buf.String(), "service").String())
}
