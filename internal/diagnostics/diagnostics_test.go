package diagnostics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogWriter_AccumulatesAndFlushes(t *testing.T) {
	l := NewLogWriter(false)
	if l.RunID == "" {
		t.Fatalf("expected NewLogWriter to seed a non-empty RunID")
	}
	l.Info("hydrated %d classes", 3)
	l.Err(errors.New("boom"))
	if !l.HasErrors() {
		t.Fatalf("expected HasErrors() to report true after Err")
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected exactly one recorded error, got %d", len(l.Errors()))
	}

	var buf bytes.Buffer
	l.Flush(&buf)
	out := buf.String()
	if !strings.Contains(out, "hydrated 3 classes") {
		t.Fatalf("expected the info line to appear in Flush output, got %q", out)
	}
	if !strings.Contains(out, "error: boom") {
		t.Fatalf("expected the error line to appear in Flush output, got %q", out)
	}
	if !strings.Contains(out, l.RunID) {
		t.Fatalf("expected the summary line to carry the run id, got %q", out)
	}
}

func TestLogWriter_DebugIsSilentUnlessVerbose(t *testing.T) {
	quiet := NewLogWriter(false)
	quiet.Debug("tree", struct{ X int }{X: 1})
	if len(quiet.infos) != 0 {
		t.Fatalf("expected Debug to produce no output when Verbose is false")
	}

	verbose := NewLogWriter(true)
	verbose.Debug("tree", struct{ X int }{X: 1})
	if len(verbose.infos) != 1 {
		t.Fatalf("expected Debug to record a line when Verbose is true")
	}
}
