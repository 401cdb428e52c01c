package buffers

import (
	"fmt"
	"strings"

	"github.com/amikey/igl/glctx"
	"github.com/amikey/igl/textures"
)

// fakeContext is a scripted glctx.Context that tracks binding state and
// records every driver call so tests can assert on exact call sequences.
type fakeContext struct {
	features map[glctx.Feature]bool

	nextFramebufferID  uint32
	nextRenderbufferID uint32

	boundRead         uint32
	boundDraw         uint32
	boundRenderbuffer uint32

	viewport [4]int32
	status   glctx.Enum

	calls []string
}

var _ glctx.Context = &fakeContext{}

func newFakeContext() *fakeContext {
	return &fakeContext{
		features: map[glctx.Feature]bool{
			glctx.Feature_ReadWriteFramebuffer:  true,
			glctx.Feature_SRGBWriteControl:      true,
			glctx.Feature_InvalidateFramebuffer: true,
			glctx.Feature_IntegerTextures:       true,
		},
		nextFramebufferID:  0,
		nextRenderbufferID: 100,
		status:             glctx.FRAMEBUFFER_COMPLETE,
	}
}

func (f *fakeContext) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// callCount counts recorded calls whose name matches prefix.
func (f *fakeContext) callCount(prefix string) int {

	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeContext) lastCall(prefix string) string {

	for i := len(f.calls) - 1; i >= 0; i-- {
		if strings.HasPrefix(f.calls[i], prefix) {
			return f.calls[i]
		}
	}
	return ""
}

func (f *fakeContext) HasFeature(feature glctx.Feature) bool {
	return f.features[feature]
}

func (f *fakeContext) GenFramebuffer() uint32 {
	f.nextFramebufferID++
	f.record("GenFramebuffer=%d", f.nextFramebufferID)
	return f.nextFramebufferID
}

func (f *fakeContext) BindFramebuffer(target glctx.Enum, id uint32) {

	f.record("BindFramebuffer(%d, %d)", target, id)

	switch target {
	case glctx.READ_FRAMEBUFFER:
		f.boundRead = id
	case glctx.DRAW_FRAMEBUFFER:
		f.boundDraw = id
	default:
		f.boundRead = id
		f.boundDraw = id
	}
}

func (f *fakeContext) DeleteFramebuffer(id uint32) {
	f.record("DeleteFramebuffer(%d)", id)
}

func (f *fakeContext) CheckFramebufferStatus(target glctx.Enum) glctx.Enum {
	return f.status
}

func (f *fakeContext) DrawBuffers(bufs []glctx.Enum) {
	f.record("DrawBuffers(%v)", bufs)
}

func (f *fakeContext) InvalidateFramebuffer(target glctx.Enum, attachments []glctx.Enum) {
	f.record("InvalidateFramebuffer(%d, %v)", target, attachments)
}

func (f *fakeContext) GenRenderbuffer() uint32 {
	f.nextRenderbufferID++
	f.record("GenRenderbuffer=%d", f.nextRenderbufferID)
	return f.nextRenderbufferID
}

func (f *fakeContext) BindRenderbuffer(target glctx.Enum, id uint32) {
	f.record("BindRenderbuffer(%d, %d)", target, id)
	f.boundRenderbuffer = id
}

func (f *fakeContext) DeleteRenderbuffer(id uint32) {
	f.record("DeleteRenderbuffer(%d)", id)
}

func (f *fakeContext) RenderbufferStorage(target, internalFormat glctx.Enum, width, height int32) {
	f.record("RenderbufferStorage(%d, %d, %d, %d)", target, internalFormat, width, height)
}

func (f *fakeContext) RenderbufferStorageMultisample(target glctx.Enum, samples int32, internalFormat glctx.Enum, width, height int32) {
	f.record("RenderbufferStorageMultisample(%d, %d, %d, %d, %d)", target, samples, internalFormat, width, height)
}

func (f *fakeContext) FramebufferRenderbuffer(target, attachment, renderbufferTarget glctx.Enum, id uint32) {
	f.record("FramebufferRenderbuffer(%d, %d, %d, %d)", target, attachment, renderbufferTarget, id)
}

func (f *fakeContext) FramebufferTexture2D(target, attachment, texTarget glctx.Enum, id uint32, mipLevel int32) {
	f.record("FramebufferTexture2D(%d, %d, %d, %d, %d)", target, attachment, texTarget, id, mipLevel)
}

func (f *fakeContext) FramebufferTextureLayer(target, attachment glctx.Enum, id uint32, mipLevel, layer int32) {
	f.record("FramebufferTextureLayer(%d, %d, %d, %d, %d)", target, attachment, id, mipLevel, layer)
}

func (f *fakeContext) FramebufferTextureMultiview(target, attachment glctx.Enum, id uint32, mipLevel, baseView, numViews int32) {
	f.record("FramebufferTextureMultiview(%d, %d, %d, %d, %d, %d)", target, attachment, id, mipLevel, baseView, numViews)
}

func (f *fakeContext) FramebufferTextureMultisampleMultiview(target, attachment glctx.Enum, id uint32, mipLevel, samples, baseView, numViews int32) {
	f.record("FramebufferTextureMultisampleMultiview(%d, %d, %d, %d, %d, %d, %d)", target, attachment, id, mipLevel, samples, baseView, numViews)
}

func (f *fakeContext) BindTexture(target glctx.Enum, id uint32) {
	f.record("BindTexture(%d, %d)", target, id)
}

func (f *fakeContext) Enable(capability glctx.Enum) {
	f.record("Enable(%d)", capability)
}

func (f *fakeContext) Disable(capability glctx.Enum) {
	f.record("Disable(%d)", capability)
}

func (f *fakeContext) ColorMask(r, g, b, a bool) {
	f.record("ColorMask(%t, %t, %t, %t)", r, g, b, a)
}

func (f *fakeContext) DepthMask(enabled bool) {
	f.record("DepthMask(%t)", enabled)
}

func (f *fakeContext) StencilMask(mask uint32) {
	f.record("StencilMask(%d)", mask)
}

func (f *fakeContext) ClearColor(r, g, b, a float32) {
	f.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (f *fakeContext) ClearDepth(depth float32) {
	f.record("ClearDepth(%g)", depth)
}

func (f *fakeContext) ClearStencil(stencil int32) {
	f.record("ClearStencil(%d)", stencil)
}

func (f *fakeContext) Clear(mask uint32) {
	f.record("Clear(%d)", mask)
}

func (f *fakeContext) Viewport(x, y, width, height int32) {
	f.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	f.viewport = [4]int32{x, y, width, height}
}

func (f *fakeContext) PixelStorei(pname glctx.Enum, value int32) {
	f.record("PixelStorei(%d, %d)", pname, value)
}

func (f *fakeContext) ReadPixels(x, y, width, height int32, format, pixelType glctx.Enum, pixels []byte) {
	f.record("ReadPixels(%d, %d, %d, %d, %d, %d)", x, y, width, height, format, pixelType)
}

func (f *fakeContext) CopyTexSubImage2D(target glctx.Enum, mipLevel, xOffset, yOffset, x, y, width, height int32) {
	f.record("CopyTexSubImage2D(%d, %d, %d, %d, %d, %d, %d, %d)", target, mipLevel, xOffset, yOffset, x, y, width, height)
}

func (f *fakeContext) Flush() {
	f.record("Flush")
}

func (f *fakeContext) GetInteger(pname glctx.Enum) int32 {

	switch pname {
	case glctx.RENDERBUFFER_BINDING:
		return int32(f.boundRenderbuffer)
	case glctx.READ_FRAMEBUFFER_BINDING:
		return int32(f.boundRead)
	// FRAMEBUFFER_BINDING and DRAW_FRAMEBUFFER_BINDING share a value.
	case glctx.FRAMEBUFFER_BINDING:
		return int32(f.boundDraw)
	default:
		return 0
	}
}

func (f *fakeContext) GetIntegerv(pname glctx.Enum, out []int32) {

	if pname == glctx.VIEWPORT {
		copy(out, f.viewport[:])
	}
}

// fakeTexture is a scripted textures.Texture that records attach calls.
type fakeTexture struct {
	id       uint32
	width    int32
	height   int32
	format   textures.TextureFormat
	texType  textures.TextureType
	samples  int32
	layers   int32
	implicit bool

	attachCalls []string
}

var _ textures.Texture = &fakeTexture{}

func newFakeTexture(id uint32, width, height int32) *fakeTexture {
	return &fakeTexture{
		id:      id,
		width:   width,
		height:  height,
		format:  textures.TextureFormat_RGBA8,
		texType: textures.TextureType_2D,
		samples: 1,
		layers:  1,
	}
}

func (t *fakeTexture) ID() uint32 {
	return t.id
}

func (t *fakeTexture) Size() (width, height int32) {
	return t.width, t.height
}

func (t *fakeTexture) Format() textures.TextureFormat {
	return t.format
}

func (t *fakeTexture) Samples() int32 {
	return t.samples
}

func (t *fakeTexture) Type() textures.TextureType {
	return t.texType
}

func (t *fakeTexture) NumLayers() int32 {
	return t.layers
}

func (t *fakeTexture) IsImplicitStorage() bool {
	return t.implicit
}

func (t *fakeTexture) Bind() {
	t.attachCalls = append(t.attachCalls, "Bind")
}

func (t *fakeTexture) Unbind() {
	t.attachCalls = append(t.attachCalls, "Unbind")
}

func (t *fakeTexture) AttachAsColor(index, face, mipLevel uint32) {
	t.attachCalls = append(t.attachCalls, fmt.Sprintf("AttachAsColor(%d, %d, %d)", index, face, mipLevel))
}

func (t *fakeTexture) DetachAsColor(index uint32) {
	t.attachCalls = append(t.attachCalls, fmt.Sprintf("DetachAsColor(%d)", index))
}

func (t *fakeTexture) AttachAsDepth() {
	t.attachCalls = append(t.attachCalls, "AttachAsDepth")
}

func (t *fakeTexture) AttachAsStencil() {
	t.attachCalls = append(t.attachCalls, "AttachAsStencil")
}
