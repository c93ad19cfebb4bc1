package renderer

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnopengl/internal/graphics/gltest"
)

type stubRenderable struct {
	name    string
	initErr error
	events  *[]string
	ctxs    []RenderContext
	w, h    int
}

func (s *stubRenderable) Init() error {
	*s.events = append(*s.events, "init "+s.name)
	return s.initErr
}

func (s *stubRenderable) Render(ctx RenderContext) {
	*s.events = append(*s.events, "render "+s.name)
	s.ctxs = append(s.ctxs, ctx)
}

func (s *stubRenderable) Dispose() {
	*s.events = append(*s.events, "dispose "+s.name)
}

func (s *stubRenderable) SetViewport(width, height int) {
	s.w, s.h = width, height
}

func TestRendererLifecycleOrder(t *testing.T) {
	var events []string
	a := &stubRenderable{name: "a", events: &events}
	b := &stubRenderable{name: "b", events: &events}

	r, err := NewRenderer(gltest.New(), a, b)
	require.NoError(t, err)

	r.Render(RenderContext{Offset: 0.25, Transform: mgl32.Ident4()})
	r.Dispose()

	assert.Equal(t, []string{
		"init a", "init b",
		"render a", "render b",
		"dispose b", "dispose a",
	}, events)
	require.Len(t, a.ctxs, 1)
	assert.Equal(t, float32(0.25), a.ctxs[0].Offset)
}

func TestNewRendererDisposesInitializedOnFailure(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	a := &stubRenderable{name: "a", events: &events}
	b := &stubRenderable{name: "b", events: &events, initErr: boom}
	c := &stubRenderable{name: "c", events: &events}

	r, err := NewRenderer(gltest.New(), a, b, c)

	assert.Nil(t, r)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init a", "init b", "dispose a"}, events)
}

func TestRenderClearsBeforeDrawing(t *testing.T) {
	var events []string
	dev := gltest.New()
	r, err := NewRenderer(dev, &stubRenderable{name: "a", events: &events})
	require.NoError(t, err)

	r.Render(RenderContext{})

	assert.Equal(t, []string{"ClearColor", "ClearColorBuffer"}, dev.Ops())
	assert.Equal(t, []any{mgl32.Vec4{0.2, 0.3, 0.3, 1.0}}, dev.Calls[0].Args)
}

func TestSetViewport(t *testing.T) {
	var events []string
	dev := gltest.New()
	a := &stubRenderable{name: "a", events: &events}
	r, err := NewRenderer(dev, a)
	require.NoError(t, err)

	r.SetViewport(800, 600)

	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, dev.Calls[0].Args)
	assert.Equal(t, 800, a.w)
	assert.Equal(t, 600, a.h)
}
