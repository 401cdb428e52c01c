// Package gl41 implements glctx.Context on top of the desktop
// GL 4.1 core bindings the rest of the engine links against.
package gl41

import (
	"github.com/amikey/igl/assert"
	"github.com/amikey/igl/glctx"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ glctx.Context = &Context{}

type Context struct{}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) HasFeature(feature glctx.Feature) bool {

	switch feature {
	case glctx.Feature_ReadWriteFramebuffer:
		return true
	case glctx.Feature_SRGBWriteControl:
		return true
	case glctx.Feature_IntegerTextures:
		return true

	// glInvalidateFramebuffer is GL 4.3+, so it is not reachable
	// through the 4.1 core bindings.
	case glctx.Feature_InvalidateFramebuffer:
		return false

	default:
		return false
	}
}

func (c *Context) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (c *Context) BindFramebuffer(target glctx.Enum, id uint32) {
	gl.BindFramebuffer(uint32(target), id)
}

func (c *Context) DeleteFramebuffer(id uint32) {
	gl.DeleteFramebuffers(1, &id)
}

func (c *Context) CheckFramebufferStatus(target glctx.Enum) glctx.Enum {
	return glctx.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (c *Context) DrawBuffers(bufs []glctx.Enum) {

	glBufs := make([]uint32, len(bufs))
	for i := 0; i < len(bufs); i++ {
		glBufs[i] = uint32(bufs[i])
	}

	gl.DrawBuffers(int32(len(glBufs)), &glBufs[0])
}

func (c *Context) InvalidateFramebuffer(target glctx.Enum, attachments []glctx.Enum) {
	// Unreachable with Feature_InvalidateFramebuffer=false.
}

func (c *Context) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (c *Context) BindRenderbuffer(target glctx.Enum, id uint32) {
	gl.BindRenderbuffer(uint32(target), id)
}

func (c *Context) DeleteRenderbuffer(id uint32) {
	gl.DeleteRenderbuffers(1, &id)
}

func (c *Context) RenderbufferStorage(target, internalFormat glctx.Enum, width, height int32) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), width, height)
}

func (c *Context) RenderbufferStorageMultisample(target glctx.Enum, samples int32, internalFormat glctx.Enum, width, height int32) {
	gl.RenderbufferStorageMultisample(uint32(target), samples, uint32(internalFormat), width, height)
}

func (c *Context) FramebufferRenderbuffer(target, attachment, renderbufferTarget glctx.Enum, id uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbufferTarget), id)
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget glctx.Enum, id uint32, mipLevel int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), id, mipLevel)
}

func (c *Context) FramebufferTextureLayer(target, attachment glctx.Enum, id uint32, mipLevel, layer int32) {
	gl.FramebufferTextureLayer(uint32(target), uint32(attachment), id, mipLevel, layer)
}

func (c *Context) FramebufferTextureMultiview(target, attachment glctx.Enum, id uint32, mipLevel, baseView, numViews int32) {
	assert.T(false, "multiview attach requires GL_OVR_multiview, which the 4.1 core profile does not expose")
}

func (c *Context) FramebufferTextureMultisampleMultiview(target, attachment glctx.Enum, id uint32, mipLevel, samples, baseView, numViews int32) {
	assert.T(false, "multisampled multiview attach requires GL_OVR_multiview2, which the 4.1 core profile does not expose")
}

func (c *Context) BindTexture(target glctx.Enum, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (c *Context) Enable(capability glctx.Enum) {
	gl.Enable(uint32(capability))
}

func (c *Context) Disable(capability glctx.Enum) {
	gl.Disable(uint32(capability))
}

func (c *Context) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (c *Context) DepthMask(enabled bool) {
	gl.DepthMask(enabled)
}

func (c *Context) StencilMask(mask uint32) {
	gl.StencilMask(mask)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) ClearDepth(depth float32) {
	gl.ClearDepthf(depth)
}

func (c *Context) ClearStencil(stencil int32) {
	gl.ClearStencil(stencil)
}

func (c *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) PixelStorei(pname glctx.Enum, value int32) {
	gl.PixelStorei(uint32(pname), value)
}

func (c *Context) ReadPixels(x, y, width, height int32, format, pixelType glctx.Enum, pixels []byte) {
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(pixelType), gl.Ptr(pixels))
}

func (c *Context) CopyTexSubImage2D(target glctx.Enum, mipLevel, xOffset, yOffset, x, y, width, height int32) {
	gl.CopyTexSubImage2D(uint32(target), mipLevel, xOffset, yOffset, x, y, width, height)
}

func (c *Context) Flush() {
	gl.Flush()
}

func (c *Context) GetInteger(pname glctx.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (c *Context) GetIntegerv(pname glctx.Enum, out []int32) {
	gl.GetIntegerv(uint32(pname), &out[0])
}
