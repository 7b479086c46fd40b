package testmgr

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vsrinivas/ninja-test/internal/sink"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

// Hooks are the three lifecycle phases of a test case. A nil hook is a no-op.
type Hooks struct {
	SetUp    func(*TestCase)
	Run      func(*TestCase)
	TearDown func(*TestCase)
}

type TestCase struct {
	name   string
	index  uint32
	hooks  Hooks
	suite  *logrus.Logger
	sink   core.Sink
	log    *logrus.Logger
	buffer bytes.Buffer

	mu                sync.Mutex
	failed            bool
	assertionFailures int
	state             State
	status            TestCaseStatus
	err               error
	startTime         time.Time
	endTime           time.Time
}

var instances atomic.Uint32

// Implementer of logrus.Hook interface to tee log messages from the test case
// logger to the suite logger
type testCaseLogTee struct {
	suiteLogger *logrus.Logger
	testCaseId  string
}

func (tee testCaseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testCaseLogTee) Fire(entry *logrus.Entry) error {
	// Make a shallow copy so that we can modify the logger pointer
	newEntry := tee.suiteLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

// New constructs a test case and publishes it as the current test. When env
// is nil the standard logrus logger is used and failures only go to the test
// case log.
func New(name string, env core.Environment, hooks Hooks) *TestCase {
	suiteLogger := logrus.StandardLogger()
	var envSink core.Sink
	if env != nil {
		suiteLogger = env.Logger()
		envSink = env.Sink()
	}

	tc := &TestCase{
		name:   name,
		index:  instances.Add(1) - 1,
		hooks:  hooks,
		suite:  suiteLogger,
		log:    logrus.New(),
		state:  StateConstructed,
		status: TestCaseStatusRunning,
	}

	tc.log.SetLevel(logrus.TraceLevel)
	tc.log.SetOutput(&tc.buffer)
	tc.log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: false,
	})
	tc.log.AddHook(testCaseLogTee{
		suiteLogger: suiteLogger,
		testCaseId:  tc.id(),
	})
	tc.log.SetReportCaller(true)

	tc.sink = sink.NewMulti(sink.NewLogrus(tc.log.WithField("testCase", name)), envSink)

	setCurrent(tc)
	return tc
}

func (tc *TestCase) id() string {
	return fmt.Sprintf("%04d:%s", tc.index, tc.name)
}

func (tc *TestCase) Name() string {
	return tc.name
}

func (tc *TestCase) Logger() *logrus.Logger {
	return tc.log
}

// Check is the single point where check outcomes are recorded. A false
// condition marks the test case as failed and reports the failure to the
// sink. The condition is returned unchanged.
func (tc *TestCase) Check(condition bool, file string, line int, description string) bool {
	if condition {
		return true
	}

	tc.mu.Lock()
	tc.failed = true
	tc.mu.Unlock()

	tc.sink.ReportFailure(core.Failure{
		Test:       tc.name,
		File:       file,
		Line:       line,
		Expression: description,
	})

	return false
}

func (tc *TestCase) Failed() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.failed
}

func (tc *TestCase) AssertionFailures() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.assertionFailures
}

// AssertionFailureCount implements core.Handle.
func (tc *TestCase) AssertionFailureCount() int {
	return tc.AssertionFailures()
}

func (tc *TestCase) AddAssertionFailure() {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.assertionFailures++
}

// StopExecution ends the lifecycle phase that is currently running. It calls
// runtime.Goexit(), so deferred calls in the phase still run, and it MUST be
// called from the goroutine that runs the phase.
func (tc *TestCase) StopExecution() {
	tc.suite.Tracef(
		"Stopping execution of [%s] in phase '%s'",
		tc.id(),
		tc.State().String(),
	)
	runtime.Goexit()
}

// NoFatalFailure runs fn and stops the calling phase if fn recorded a fatal
// assertion failure or was stopped. In that case one failure is reported at
// file:line and exactly one assertion failure is added for the wrapper itself.
// A panic in fn is propagated to the caller.
func (tc *TestCase) NoFatalFailure(file string, line int, description string, fn func()) {
	before := tc.AssertionFailures()

	completed, err := runSupervised(fn)
	if err != nil {
		panic(err)
	}

	if completed && tc.AssertionFailures() == before {
		return
	}

	tc.Check(false, file, line, description)
	tc.AddAssertionFailure()
	tc.StopExecution()
}

func (tc *TestCase) State() State {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.state
}

func (tc *TestCase) setState(state State) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.state = state
}

func (tc *TestCase) Status() TestCaseStatus {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.status
}

// Err returns the error captured while running the test case, if any.
func (tc *TestCase) Err() error {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.err
}

func (tc *TestCase) LogLines() []string {
	rawLines := bytes.Split(bytes.TrimRight(tc.buffer.Bytes(), "\n"), []byte("\n"))
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		if len(line) == 0 {
			continue
		}
		lines = append(lines, string(line))
	}

	return lines
}

func (tc *TestCase) RunTime() time.Duration {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.startTime.IsZero() {
		return 0
	}

	if tc.status == TestCaseStatusRunning {
		return time.Since(tc.startTime)
	}

	return tc.endTime.Sub(tc.startTime)
}

func (tc *TestCase) close() {
	tc.mu.Lock()
	switch {
	case tc.err != nil:
		tc.status = TestCaseStatusError
	case tc.failed:
		tc.status = TestCaseStatusFailed
	default:
		tc.status = TestCaseStatusPassed
	}
	tc.state = StateTornDown
	tc.endTime = time.Now()
	status := tc.status
	assertionFailures := tc.assertionFailures
	err := tc.err
	tc.mu.Unlock()

	// Log the status to the test case logger
	tc.log.SetReportCaller(false)
	localEntry := logrus.NewEntry(tc.log)

	if assertionFailures > 0 {
		localEntry = localEntry.WithField("assertionFailures", assertionFailures)
	}

	if err != nil {
		localEntry = localEntry.WithError(err)
	}

	localEntry.Log(status.LogLevel(), status.String())

	// Close this logger
	tc.log.SetOutput(io.Discard)

	// Log the status to the suite logger
	tc.suite.
		WithField("testCase", tc.name).
		WithField("status", status.String()).
		Logf(status.LogLevel(), "%s: %s", tc.name, status.String())
}
