package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift/component"
)

func TestResources_AddGet(t *testing.T) {
	rs := NewResourceStore()
	_, ok := GetResource[*SimResource](rs)
	assert.False(t, ok)

	AddResource(rs, &SimResource{TickRate: 73})
	sim, ok := GetResource[*SimResource](rs)
	require.True(t, ok)
	assert.Equal(t, 73, sim.TickRate)
}

func TestResources_MustGetPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustGetResource[*TimeResource](NewResourceStore())
	})
}

func TestNewTestWorld_CoreResources(t *testing.T) {
	w, res := NewTestWorld(640, 480)

	// Systems share the resource pointers
	base := NewSystemBase(w)
	assert.Same(t, res.Input, base.Resource.Input)
	assert.Same(t, res.Camera, base.Resource.Camera)

	cam, ok := base.Component.Camera.Get(res.Camera.Entity)
	require.True(t, ok)
	assert.Equal(t, float32(640), cam.Width)
	assert.Equal(t, component.UnitScale, cam.CurScale)
	assert.NotNil(t, res.Input.Held)
}
