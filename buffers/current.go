package buffers

import (
	"github.com/amikey/igl/assert"
	"github.com/amikey/igl/glctx"
	"github.com/amikey/igl/textures"
)

var _ Framebuffer = &CurrentFramebuffer{}

// CurrentFramebuffer adopts whatever framebuffer and viewport are bound in
// the driver context at construction time, typically the platform default
// framebuffer. It never owns driver objects and its attachment topology
// cannot change; the color attachment it reports is a size-only placeholder.
type CurrentFramebuffer struct {
	framebufferBase

	viewport        Viewport
	colorAttachment textures.Texture
}

func NewCurrentFramebuffer(ctx glctx.Context) *CurrentFramebuffer {

	fb := &CurrentFramebuffer{framebufferBase: framebufferBase{ctx: ctx}}
	fb.id = uint32(ctx.GetInteger(glctx.FRAMEBUFFER_BINDING))

	var viewport [4]int32
	ctx.GetIntegerv(glctx.VIEWPORT, viewport[:])

	fb.viewport = Viewport{
		X:      float32(viewport[0]),
		Y:      float32(viewport[1]),
		Width:  float32(viewport[2]),
		Height: float32(viewport[3]),
	}

	fb.colorAttachment = &textures.Placeholder{Width: viewport[2], Height: viewport[3]}

	return fb
}

func (fb *CurrentFramebuffer) ColorAttachmentIndices() []uint32 {
	return []uint32{0}
}

func (fb *CurrentFramebuffer) ColorAttachment(index uint32) textures.Texture {
	assert.T(index == 0, "the current framebuffer only has color attachment 0. Index=%d", index)
	return fb.colorAttachment
}

func (fb *CurrentFramebuffer) ResolveColorAttachment(index uint32) textures.Texture {
	assert.T(index == 0, "the current framebuffer only has color attachment 0. Index=%d", index)
	return fb.colorAttachment
}

func (fb *CurrentFramebuffer) DepthAttachment() textures.Texture {
	return nil
}

func (fb *CurrentFramebuffer) StencilAttachment() textures.Texture {
	return nil
}

// UpdateDrawable is meaningless here: the platform owns the surface and
// there is nothing to swap.
func (fb *CurrentFramebuffer) UpdateDrawable(texture textures.Texture) textures.Texture {
	assert.T(false, "the current framebuffer has no drawable to update")
	return nil
}

// Viewport returns the rectangle captured at construction; Bind/Unbind never
// modify it.
func (fb *CurrentFramebuffer) Viewport() Viewport {
	return fb.viewport
}

// Bind rebinds the adopted framebuffer and clears every buffer whose load
// action does not ask to keep previous contents.
func (fb *CurrentFramebuffer) Bind(pass *RenderPass) {

	fb.bindBuffer()

	if fb.ctx.HasFeature(glctx.Feature_SRGBWriteControl) {
		colorAttachment := fb.ResolveColorAttachment(0)
		if colorAttachment != nil && colorAttachment.Format().IsSRGB() {
			fb.ctx.Enable(glctx.FRAMEBUFFER_SRGB)
		} else {
			fb.ctx.Disable(glctx.FRAMEBUFFER_SRGB)
		}
	}

	var clearMask uint32

	if pass.ColorAttachments[0].Load != LoadAction_Load {
		clearMask |= glctx.COLOR_BUFFER_BIT
		clearColor := pass.ColorAttachments[0].ClearColor
		fb.ctx.ColorMask(true, true, true, true)
		fb.ctx.ClearColor(clearColor.X(), clearColor.Y(), clearColor.Z(), clearColor.W())
	}

	if pass.DepthAttachment.Load != LoadAction_Load {
		clearMask |= glctx.DEPTH_BUFFER_BIT
		fb.ctx.DepthMask(true)
		fb.ctx.ClearDepth(pass.DepthAttachment.ClearDepth)
	}

	if pass.StencilAttachment.Load != LoadAction_Load {
		clearMask |= glctx.STENCIL_BUFFER_BIT
		fb.ctx.StencilMask(0xFF)
		fb.ctx.ClearStencil(pass.StencilAttachment.ClearStencil)
	}

	if clearMask != 0 {
		fb.ctx.Clear(clearMask)
	}
}

// Unbind is a no-op: contents of an externally owned surface are never
// discarded by this layer.
func (fb *CurrentFramebuffer) Unbind() {
}

// Delete is a no-op: the framebuffer belongs to the platform.
func (fb *CurrentFramebuffer) Delete() {
}
