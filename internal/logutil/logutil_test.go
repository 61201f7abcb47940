package logutil

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(true)
	assert.Equal(t, log.DebugLevel, Logger().GetLevel())

	SetVerbose(false)
	assert.Equal(t, log.InfoLevel, Logger().GetLevel())
}
