package model

import (
	"io"
	"log/slog"
)

// Sink receives battle log lines. The battle log is a deterministic
// artifact of the simulation: same seed, same lines.
type Sink interface {
	Line(s string)
}

// MemorySink captures log lines in order. Used by determinism tests and
// by callers that print the log after the run.
type MemorySink struct {
	Lines []string
}

func (m *MemorySink) Line(s string) {
	m.Lines = append(m.Lines, s)
}

// WriterSink streams log lines to an io.Writer, one per line.
type WriterSink struct {
	W io.Writer
}

func (w WriterSink) Line(s string) {
	io.WriteString(w.W, s+"\n")
}

// SlogSink forwards battle log lines to a structured logger at debug
// level, for running the simulator inside a larger service.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Line(line string) {
	s.Logger.Debug("battle", "line", line)
}

// MultiSink fans one line out to several sinks.
type MultiSink []Sink

func (m MultiSink) Line(s string) {
	for _, sink := range m {
		sink.Line(s)
	}
}
