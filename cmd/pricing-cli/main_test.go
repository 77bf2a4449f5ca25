package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	logger := newLogger(zap.NewDevelopment)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewLogger_FallsBackToNop(t *testing.T) {
	logger := newLogger(func(...zap.Option) (*zap.Logger, error) {
		return nil, errors.New("no sink")
	})
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
	assert.NotPanics(t, func() { _ = logger.Sync() })
}
