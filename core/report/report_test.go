package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorder(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := NewRecorder("admin", zap.New(core))

	rec.Info("users", "Found 2 users", zap.Int("count", 2))
	rec.Warn("build", "Admin build not found")
	rec.Error("admins", "No admin users found")

	rep := rec.Finish()
	require.Len(t, rep.Results, 3)
	assert.Equal(t, "admin", rep.Name)
	assert.Equal(t, 1, rep.Count(SeverityInfo))
	assert.Equal(t, 1, rep.Count(SeverityWarn))
	assert.Equal(t, []string{"admins"}, rep.Labels(SeverityError))
	assert.True(t, rep.Has("build", SeverityWarn))
	assert.False(t, rep.Has("build", SeverityError))
	assert.True(t, rep.Passed())
	assert.False(t, rep.FinishedAt.Before(rep.StartedAt))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Found 2 users", entries[0].Message)
	assert.Equal(t, "users", entries[0].ContextMap()["check"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["count"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestRecorder_Fail(t *testing.T) {
	rec := NewRecorder("predeploy", zap.NewNop())
	rec.Fail(nil)
	assert.True(t, rec.Finish().Passed())

	rec.Fail(errors.New("store gate: no store configured"))
	rep := rec.Finish()
	assert.False(t, rep.Passed())
	assert.Equal(t, "store gate: no store configured", rep.Error)
}
