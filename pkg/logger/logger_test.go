package logger_test

import (
	"context"
	"testing"

	"notes-server/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	t.Run("development with level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("production default level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("invalid level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "loud")
		require.Error(t, err)
		assert.Nil(t, l)
	})
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, logger.Production, logger.ParseEnvironment("production"))
	assert.Equal(t, logger.Production, logger.ParseEnvironment("PROD"))
	assert.Equal(t, logger.Development, logger.ParseEnvironment("development"))
	assert.Equal(t, logger.Development, logger.ParseEnvironment(""))
}

func TestFromContext(t *testing.T) {
	t.Run("success when logger exists in context", func(t *testing.T) {
		testLogger := logger.New(zap.NewNop())
		ctx := logger.NewContext(context.Background(), testLogger)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, got)
	})

	t.Run("error when no logger in context", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestLogFallsBackToGlobal(t *testing.T) {
	global := logger.New(zap.NewNop())
	logger.SetGlobalLogger(global)
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	assert.Same(t, global, logger.Log(context.Background()))

	scoped := logger.New(zap.NewNop())
	ctx := logger.NewContext(context.Background(), scoped)
	assert.Same(t, scoped, logger.Log(ctx))
}

func TestLogWithoutGlobalReturnsFallback(t *testing.T) {
	logger.SetGlobalLogger(nil)
	assert.NotNil(t, logger.Log(context.Background()))
}

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := logger.New(zap.New(core))

	ctx := logger.NewRequestIDContext(context.Background(), "abc")
	l.Info(ctx, "hello")
	l.Info(context.Background(), "no id")

	all := logs.All()
	require.Len(t, all, 2)
	assert.Equal(t, "abc", all[0].ContextMap()[logger.RequestID])
	_, has := all[1].ContextMap()[logger.RequestID]
	assert.False(t, has)
}

func TestNewRequestIDContextGenerates(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), "")
	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Len(t, id, 36)
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := logger.New(zap.New(core))

	ctx := logger.NewRequestIDContext(context.Background(), "xyz")
	l.WithRequestID(ctx).Info(context.Background(), "scoped")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "xyz", logs.All()[0].ContextMap()[logger.RequestID])
}
