package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &fakeFeature{name: "status", enabled: true}
	off := &fakeFeature{name: "schema", enabled: false}

	mgr := NewManager()
	mgr.Register(on)
	mgr.Register(off)

	loaded, err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"status"}, loaded)
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
}

func TestManager_LoadAll_Error(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&fakeFeature{name: "admin", enabled: true})
	mgr.Register(&fakeFeature{name: "broken", enabled: true, err: errors.New("boom")})

	loaded, err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: boom")
	assert.Equal(t, []string{"admin"}, loaded)
}
