package loader_test

import (
	"errors"
	"testing"

	"github.com/UCLALibrary/ftva-mams-data/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("LoadsEnabledFeatures", func(t *testing.T) {
		m := loader.NewManager()
		enabled := &fakeFeature{name: "matches", enabled: true}
		disabled := &fakeFeature{name: "problems", enabled: false}
		m.Register(enabled)
		m.Register(disabled)

		err := m.LoadAll(fiber.New())
		require.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("PropagatesLoadError", func(t *testing.T) {
		m := loader.NewManager()
		m.Register(&fakeFeature{name: "matches", enabled: true, loadErr: errors.New("boom")})

		err := m.LoadAll(fiber.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "matches")
	})
}
