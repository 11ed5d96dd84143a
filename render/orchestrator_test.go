package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedPass struct {
	name    string
	log     *[]string
	err     error
	visible bool
}

func (p *namedPass) Render(float64) error {
	*p.log = append(*p.log, p.name)
	return p.err
}

func (p *namedPass) IsVisible() bool { return p.visible }

func TestOrchestrator_PriorityThenRegistrationOrder(t *testing.T) {
	var log []string
	o := NewOrchestrator()
	o.Register(&namedPass{name: "hud", log: &log, visible: true}, 400)
	o.Register(&namedPass{name: "mesh", log: &log, visible: true}, 100)
	o.Register(&namedPass{name: "sprite", log: &log, visible: true}, 200)
	o.Register(&namedPass{name: "mesh2", log: &log, visible: true}, 100)

	require.NoError(t, o.RenderFrame(0.5))
	assert.Equal(t, []string{"mesh", "mesh2", "sprite", "hud"}, log)
	assert.Equal(t, 4, o.Len())
}

func TestOrchestrator_SkipsHidden(t *testing.T) {
	var log []string
	o := NewOrchestrator()
	o.Register(&namedPass{name: "shown", log: &log, visible: true}, 1)
	o.Register(&namedPass{name: "hidden", log: &log}, 2)

	require.NoError(t, o.RenderFrame(0))
	assert.Equal(t, []string{"shown"}, log)
}

func TestOrchestrator_StopsAtFirstError(t *testing.T) {
	var log []string
	errBoom := errors.New("boom")
	o := NewOrchestrator()
	o.Register(&namedPass{name: "a", log: &log, visible: true, err: errBoom}, 1)
	o.Register(&namedPass{name: "b", log: &log, visible: true}, 2)

	require.ErrorIs(t, o.RenderFrame(0), errBoom)
	assert.Equal(t, []string{"a"}, log)
}

type plainPass struct{}

func (plainPass) Render(float64) error { return nil }

type overlayPass struct {
	namedPass
}

func (p *overlayPass) Toggle() { p.visible = !p.visible }

func TestOrchestrator_ToggleOverlays(t *testing.T) {
	var log []string
	hud := &overlayPass{namedPass{name: "hud", log: &log}}
	o := NewOrchestrator()
	o.Register(plainPass{}, 1)
	o.Register(hud, 2)

	assert.Equal(t, 1, o.ToggleOverlays())
	require.NoError(t, o.RenderFrame(0))
	assert.Equal(t, []string{"hud"}, log)

	o.ToggleOverlays()
	require.NoError(t, o.RenderFrame(0))
	assert.Equal(t, []string{"hud"}, log)
}
