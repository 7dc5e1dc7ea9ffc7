package schema

import (
	"context"
	"testing"

	"backend-doctor/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestService_Check(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, db.Exec(`CREATE TABLE "store" (id TEXT PRIMARY KEY, name TEXT)`).Error)

	core, logs := observer.New(zapcore.InfoLevel)
	report, err := NewService(db, zap.New(core)).Check(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Matched)
	assert.Equal(t, StatusMissing, report.Tables["user"].Status)
	assert.Equal(t, StatusError, report.Tables["store"].Status)
	assert.ElementsMatch(t, []string{"created_at", "updated_at", "deleted_at"}, report.Tables["store"].MissingColumns)

	assert.Equal(t, 1, logs.FilterMessage("Table does not exist").Len())
	assert.Equal(t, 1, logs.FilterMessage("Table does not match model").Len())
}

func TestService_CheckWithoutDatabase(t *testing.T) {
	_, err := NewService(nil, zap.NewNop()).Check(context.Background())
	assert.ErrorIs(t, err, ErrNilDatabase)
}
