package testmgr

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type TestCaseStatus int

const (
	TestCaseStatusRunning TestCaseStatus = iota
	TestCaseStatusPassed
	TestCaseStatusFailed
	TestCaseStatusError
	TestCaseStatusNotRun
)

func (tcs TestCaseStatus) String() string {
	switch tcs {
	case TestCaseStatusRunning:
		return "RUNNING"
	case TestCaseStatusPassed:
		return "PASS"
	case TestCaseStatusFailed:
		return "FAIL"
	case TestCaseStatusError:
		return "ERROR"
	case TestCaseStatusNotRun:
		return "NOT RUN"
	default:
		return "UNKNOWN"
	}
}

func (tcs TestCaseStatus) ColorString() string {
	switch tcs {
	case TestCaseStatusPassed:
		return color.GreenString(tcs.String())
	case TestCaseStatusFailed:
		return color.RedString(tcs.String())
	case TestCaseStatusError:
		return color.New(color.FgRed, color.Bold).Sprint(tcs.String())
	case TestCaseStatusNotRun:
		return color.YellowString(tcs.String())
	default:
		return tcs.String()
	}
}

func (tcs TestCaseStatus) LogLevel() logrus.Level {
	switch tcs {
	case TestCaseStatusPassed:
		return logrus.InfoLevel
	case TestCaseStatusFailed:
		return logrus.ErrorLevel
	case TestCaseStatusNotRun:
		return logrus.WarnLevel
	case TestCaseStatusError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (tcs TestCaseStatus) NotRun() bool {
	return tcs == TestCaseStatusNotRun
}

// IsBad returns true if the test case status is either Failed or Error.
func (tcs TestCaseStatus) IsBad() bool {
	return tcs == TestCaseStatusFailed || tcs == TestCaseStatusError
}
