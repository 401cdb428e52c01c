package textures

import (
	"github.com/amikey/igl/glctx"
	"github.com/amikey/igl/logging"
)

type TextureType int32

const (
	TextureType_Unknown TextureType = iota
	TextureType_2D
	TextureType_2DArray
	TextureType_Cube
	TextureType_3D
)

func (t TextureType) IsValid() bool {

	switch t {
	case TextureType_2D:
		fallthrough
	case TextureType_2DArray:
		fallthrough
	case TextureType_Cube:
		fallthrough
	case TextureType_3D:
		return true

	default:
		return false
	}
}

// GlTarget returns the texture binding target for this texture type.
func (t TextureType) GlTarget() glctx.Enum {

	switch t {
	case TextureType_2D:
		return glctx.TEXTURE_2D
	case TextureType_2DArray:
		return glctx.TEXTURE_2D_ARRAY
	case TextureType_Cube:
		return glctx.TEXTURE_CUBE_MAP
	default:
		logging.ErrLog.Panicf("no GL target for texture type. Type=%d\n", t)
		return 0
	}
}

type TextureFormat int32

const (
	TextureFormat_Unknown TextureFormat = iota
	TextureFormat_RGBA8
	TextureFormat_SRGBA8
	TextureFormat_RGBA_UInt32
	TextureFormat_Depth16
	TextureFormat_Depth24
	TextureFormat_Depth24Stencil8
	TextureFormat_Stencil8
)

func (f TextureFormat) IsColorFormat() bool {
	return f == TextureFormat_RGBA8 ||
		f == TextureFormat_SRGBA8 ||
		f == TextureFormat_RGBA_UInt32
}

func (f TextureFormat) IsDepthFormat() bool {
	return f == TextureFormat_Depth16 ||
		f == TextureFormat_Depth24 ||
		f == TextureFormat_Depth24Stencil8
}

func (f TextureFormat) IsStencilFormat() bool {
	return f == TextureFormat_Stencil8 ||
		f == TextureFormat_Depth24Stencil8
}

// IsSRGB reports whether pixel values are stored sRGB encoded, which decides
// whether GL_FRAMEBUFFER_SRGB is enabled when the attachment is rendered to.
func (f TextureFormat) IsSRGB() bool {
	return f == TextureFormat_SRGBA8
}

func (f TextureFormat) BytesPerPixel() int32 {

	switch f {
	case TextureFormat_RGBA8:
		fallthrough
	case TextureFormat_SRGBA8:
		return 4

	case TextureFormat_RGBA_UInt32:
		return 16

	case TextureFormat_Depth16:
		return 2
	case TextureFormat_Depth24:
		return 3
	case TextureFormat_Depth24Stencil8:
		return 4
	case TextureFormat_Stencil8:
		return 1

	default:
		logging.ErrLog.Panicf("unknown texture format. Format=%d\n", f)
		return 0
	}
}

// BytesPerRow is the tightly packed row size for a region width pixels wide.
func (f TextureFormat) BytesPerRow(width int32) int32 {
	return f.BytesPerPixel() * width
}

// GlInternalFormat maps the format to a renderbuffer/texture storage format.
// ok is false when the driver has no storage format for it.
func (f TextureFormat) GlInternalFormat() (format glctx.Enum, ok bool) {

	switch f {
	case TextureFormat_RGBA8:
		return glctx.RGBA8, true
	case TextureFormat_SRGBA8:
		return glctx.SRGB8_ALPHA8, true
	case TextureFormat_RGBA_UInt32:
		return glctx.RGBA32UI, true
	case TextureFormat_Depth16:
		return glctx.DEPTH_COMPONENT16, true
	case TextureFormat_Depth24:
		return glctx.DEPTH_COMPONENT24, true
	case TextureFormat_Depth24Stencil8:
		return glctx.DEPTH24_STENCIL8, true
	case TextureFormat_Stencil8:
		return glctx.STENCIL_INDEX8, true
	default:
		return 0, false
	}
}

// PackAlignment picks the largest GL_PACK_ALIGNMENT that divides bytesPerRow.
func PackAlignment(bytesPerRow int32) int32 {

	for _, a := range [4]int32{8, 4, 2, 1} {
		if bytesPerRow%a == 0 {
			return a
		}
	}

	return 1
}

// Range selects a region of a texture for readback and copy operations.
type Range struct {
	X, Y          int32
	Width, Height int32
	Layer         int32
	MipLevel      int32
}
