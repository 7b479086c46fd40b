// Package sink provides implementations of core.Sink.
package sink

import (
	"github.com/sirupsen/logrus"

	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

// Logrus writes every failure to a logrus logger at error level.
type Logrus struct {
	log logrus.FieldLogger
}

func NewLogrus(log logrus.FieldLogger) *Logrus {
	return &Logrus{log: log}
}

// ReportFailure logs f. The location goes to the checkFile and checkLine
// fields; file and func belong to logrus when caller reporting is on.
func (s *Logrus) ReportFailure(f core.Failure) {
	s.log.WithFields(logrus.Fields{
		"checkFile":  f.File,
		"checkLine":  f.Line,
		"expression": f.Expression,
	}).Errorf("Check failed: %s", f.String())
}

// Multi forwards every failure to each of its sinks, in order.
type Multi []core.Sink

// NewMulti builds a Multi, dropping nil sinks.
func NewMulti(sinks ...core.Sink) Multi {
	m := make(Multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}

	return m
}

func (m Multi) ReportFailure(f core.Failure) {
	for _, s := range m {
		s.ReportFailure(f)
	}
}

// Recorder keeps every failure it receives.
type Recorder struct {
	Failures []core.Failure
}

func (r *Recorder) ReportFailure(f core.Failure) {
	r.Failures = append(r.Failures, f)
}
