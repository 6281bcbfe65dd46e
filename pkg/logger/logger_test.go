package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Errorf(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &ZapLogger{sugar: zap.New(core).Sugar()}

	l.Errorf(errors.New("boom"), "failed to load %s", "config")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "failed to load config", entries[0].Message)
	require.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &ZapLogger{sugar: zap.New(core).Sugar()}

	l.Debugf("hidden")
	l.Infof("info %d", 1)
	l.Warnf("warn %d", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "info 1", entries[0].Message)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestNewZapLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger("loud", false)
	require.NoError(t, err)
	require.NotNil(t, l)
}
