// Package diagnostics is the pass's ambient logging surface: a small
// LogWriter modeled on the teacher's own *common.LogWriter /
// *logger.LogWriter usage pattern (cmd/nar/nar.go: `log := &common.LogWriter{}`,
// `log.Err(err)`, `log.Flush(os.Stdout)`), extended with structural dumps
// for verbose debugging and humanized counts for the one-line summaries
// the CLI prints after a run.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kr/pretty"
)

// LogWriter accumulates errors across a run the way the teacher's own
// log does: callers keep going after Err, and Flush reports everything
// collected at the end, once, instead of interleaving diagnostics with
// whatever else is writing to stdout.
type LogWriter struct {
	RunID   string
	Verbose bool
	errors  []error
	infos   []string
}

// NewLogWriter seeds a run-scoped correlation id, grounded on the
// teacher's cache-directory-per-run convention in cmd/nar/nar.go, reused
// here for log lines instead of filesystem paths.
func NewLogWriter(verbose bool) *LogWriter {
	return &LogWriter{RunID: uuid.NewString(), Verbose: verbose}
}

func (l *LogWriter) Err(err error) {
	if err == nil {
		return
	}
	l.errors = append(l.errors, err)
}

func (l *LogWriter) Info(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

// Debug prints a kr/pretty structural dump of v, but only when Verbose is
// set — it is meant for tracing an intermediate AST shape during
// development, not for routine output.
func (l *LogWriter) Debug(label string, v any) {
	if !l.Verbose {
		return
	}
	l.infos = append(l.infos, fmt.Sprintf("%s: %# v", label, pretty.Formatter(v)))
}

func (l *LogWriter) Errors() []error { return l.errors }

func (l *LogWriter) HasErrors() bool { return len(l.errors) > 0 }

// Flush writes every accumulated info line, then every error, then a
// humanized one-line summary of how many of each were seen.
func (l *LogWriter) Flush(w io.Writer) {
	for _, line := range l.infos {
		fmt.Fprintln(w, line)
	}
	for _, err := range l.errors {
		fmt.Fprintf(w, "error: %v\n", err)
	}
	fmt.Fprintf(w, "[%s] %s, %s\n",
		l.RunID,
		humanize.Comma(int64(len(l.infos)))+" notes",
		humanize.Comma(int64(len(l.errors)))+" errors")
}
