package suite

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsrinivas/ninja-test/internal/collector"
	"github.com/vsrinivas/ninja-test/internal/devops"
	"github.com/vsrinivas/ninja-test/internal/testmgr"
	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

type registrant struct{}

func (registrant) Name() string {
	return "Widgets"
}

func (registrant) RegisterTestCases(r core.TestRegistrar) error {
	collector.Test(r, "Widgets", "First", func(*testmgr.TestCase) {})
	collector.Test(r, "Widgets", "Second", func(*testmgr.TestCase) {})
	return nil
}

func TestAddRegistrant(t *testing.T) {
	s := newSuite("test", logrus.PanicLevel, false)
	s.AddRegistrant(registrant{})
	collector.Test(s.Registry(), "Direct", "Third", func(*testmgr.TestCase) {})

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Widgets.First", entries[0].Name)
	assert.Equal(t, "Widgets.Second", entries[1].Name)
	assert.Equal(t, "Direct.Third", entries[2].Name)

	// Test cases report into the suite logger.
	h := entries[0].Factory()
	tc, ok := h.(*testmgr.TestCase)
	require.True(t, ok)
	tc.RunLifecycle()
	assert.Equal(t, testmgr.TestCaseStatusPassed, tc.Status())
}

func TestSink(t *testing.T) {
	s := newSuite("plain", logrus.PanicLevel, false)
	assert.Nil(t, s.Sink())

	s = newSuite("pipeline", logrus.PanicLevel, true)
	assert.Equal(t, devops.FailureSink{}, s.Sink())
	assert.True(t, s.AzureDevops())
	assert.Equal(t, "pipeline", s.Name())
}
