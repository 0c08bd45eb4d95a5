package logging_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/valveplan/internal/logging"
)

func TestFromCore_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.FromCore(core).With(logging.String("run_id", "r1"))

	log.Debug("search complete",
		logging.Int("best", 1651),
		logging.Int64("states", 42),
		logging.Duration("elapsed", time.Millisecond),
		logging.Strings("plan", []string{"DD", "BB"}),
		logging.Err(errors.New("boom")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	require.Equal(t, "r1", ctx["run_id"])
	require.EqualValues(t, 1651, ctx["best"])
	require.EqualValues(t, 42, ctx["states"])
	require.Equal(t, "boom", ctx["error"])
}

func TestNew_LevelFilter(t *testing.T) {
	log, err := logging.New(logging.Config{Level: "WARN", Format: "json", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	log.Info("dropped")
	log.Warn("kept")

	_, err = logging.New(logging.Config{OutputPaths: []string{"/nonexistent-dir/x/y.log"}})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	log := logging.NewNop()
	log.Error("ignored", logging.Int("n", 1))
	require.NoError(t, log.With(logging.String("k", "v")).Sync())
}
