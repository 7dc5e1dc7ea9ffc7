package schema

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"backend-doctor/core/database"
	"backend-doctor/core/medusa"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleSchemaCheck(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, db.AutoMigrate(&medusa.User{}, &medusa.Store{}))

	app := fiber.New()
	feature := NewFeature(NewService(db, zap.NewNop()))
	assert.Equal(t, "schema", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/diagnostics/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Matched)
	assert.Contains(t, report.Tables, "user")
	assert.Contains(t, report.Tables, "store")
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	feature := NewFeature(NewService(nil, zap.NewNop()))
	assert.False(t, feature.IsEnabled())
}
