package loader

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  *[]string
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	if s.err != nil {
		return s.err
	}
	*s.loaded = append(*s.loaded, s.name)
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	var loaded []string
	m := NewManager()
	m.Register(&stubFeature{name: "first", enabled: true, loaded: &loaded})
	m.Register(&stubFeature{name: "disabled", enabled: false, loaded: &loaded})
	m.Register(&stubFeature{name: "second", enabled: true, loaded: &loaded})

	require.NoError(t, m.LoadAll(fiber.New()))
	assert.Equal(t, []string{"first", "second"}, loaded)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	var loaded []string
	m := NewManager()
	m.Register(&stubFeature{name: "broken", enabled: true, err: assert.AnError, loaded: &loaded})
	m.Register(&stubFeature{name: "after", enabled: true, loaded: &loaded})

	err := m.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, loaded)
}
