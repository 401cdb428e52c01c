// Package glctx declares the narrow driver contract the render-target layer
// is written against. Real GL lives behind the Context interface so that
// everything above it stays independent of the loaded bindings, and so the
// whole layer can be driven by a recording fake in tests.
package glctx

// Enum is a GL enum value (targets, attachment points, formats, ...).
type Enum uint32

type Feature int32

const (
	Feature_Unknown Feature = iota

	// Feature_ReadWriteFramebuffer means the driver has separate
	// GL_READ_FRAMEBUFFER/GL_DRAW_FRAMEBUFFER binding points.
	Feature_ReadWriteFramebuffer

	// Feature_SRGBWriteControl means sRGB framebuffer encoding must be
	// toggled explicitly with GL_FRAMEBUFFER_SRGB.
	Feature_SRGBWriteControl

	// Feature_InvalidateFramebuffer means glInvalidateFramebuffer is available.
	Feature_InvalidateFramebuffer

	// Feature_IntegerTextures means integer color formats can be read back
	// with GL_RGBA_INTEGER.
	Feature_IntegerTextures
)

func (f Feature) IsValid() bool {

	switch f {
	case Feature_ReadWriteFramebuffer:
		fallthrough
	case Feature_SRGBWriteControl:
		fallthrough
	case Feature_InvalidateFramebuffer:
		fallthrough
	case Feature_IntegerTextures:
		return true

	default:
		return false
	}
}

// Context is the driver surface consumed by the render-target layer.
// Implementations are not safe for concurrent use; the caller owns the
// GL context and must serialize access to it.
type Context interface {
	HasFeature(feature Feature) bool

	GenFramebuffer() uint32
	BindFramebuffer(target Enum, id uint32)
	DeleteFramebuffer(id uint32)
	CheckFramebufferStatus(target Enum) Enum
	DrawBuffers(bufs []Enum)
	InvalidateFramebuffer(target Enum, attachments []Enum)

	GenRenderbuffer() uint32
	BindRenderbuffer(target Enum, id uint32)
	DeleteRenderbuffer(id uint32)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)
	RenderbufferStorageMultisample(target Enum, samples int32, internalFormat Enum, width, height int32)

	FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, id uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, id uint32, mipLevel int32)
	FramebufferTextureLayer(target, attachment Enum, id uint32, mipLevel, layer int32)
	FramebufferTextureMultiview(target, attachment Enum, id uint32, mipLevel, baseView, numViews int32)
	FramebufferTextureMultisampleMultiview(target, attachment Enum, id uint32, mipLevel, samples, baseView, numViews int32)

	BindTexture(target Enum, id uint32)

	Enable(capability Enum)
	Disable(capability Enum)
	ColorMask(r, g, b, a bool)
	DepthMask(enabled bool)
	StencilMask(mask uint32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	ClearStencil(stencil int32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)

	PixelStorei(pname Enum, value int32)
	ReadPixels(x, y, width, height int32, format, pixelType Enum, pixels []byte)
	CopyTexSubImage2D(target Enum, mipLevel, xOffset, yOffset, x, y, width, height int32)
	Flush()

	GetInteger(pname Enum) int32
	GetIntegerv(pname Enum, out []int32)
}
