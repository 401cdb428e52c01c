package glctx

import "fmt"

// The subset of GL enums the render-target layer touches. Values match the
// GL headers so backends can forward them unchanged.
const (
	FRAMEBUFFER      Enum = 0x8D40
	READ_FRAMEBUFFER Enum = 0x8CA8
	DRAW_FRAMEBUFFER Enum = 0x8CA9
	RENDERBUFFER     Enum = 0x8D41

	FRAMEBUFFER_BINDING      Enum = 0x8CA6
	READ_FRAMEBUFFER_BINDING Enum = 0x8CAA
	DRAW_FRAMEBUFFER_BINDING Enum = 0x8CA6
	RENDERBUFFER_BINDING     Enum = 0x8CA7
	VIEWPORT                 Enum = 0x0BA2

	FRAMEBUFFER_COMPLETE                      Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         Enum = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT Enum = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS         Enum = 0x8CD9
	FRAMEBUFFER_UNSUPPORTED                   Enum = 0x8CDD

	COLOR_ATTACHMENT0  Enum = 0x8CE0
	DEPTH_ATTACHMENT   Enum = 0x8D00
	STENCIL_ATTACHMENT Enum = 0x8D20

	STENCIL_TEST     Enum = 0x0B90
	FRAMEBUFFER_SRGB Enum = 0x8DB9

	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_2D_ARRAY            Enum = 0x8C1A
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515

	PACK_ALIGNMENT Enum = 0x0D05

	RGBA         Enum = 0x1908
	RGBA_INTEGER Enum = 0x8D99

	UNSIGNED_BYTE Enum = 0x1401
	UNSIGNED_INT  Enum = 0x1405

	RGBA8             Enum = 0x8058
	SRGB8_ALPHA8      Enum = 0x8C43
	RGBA32UI          Enum = 0x8D70
	DEPTH_COMPONENT16 Enum = 0x81A5
	DEPTH_COMPONENT24 Enum = 0x81A6
	DEPTH24_STENCIL8  Enum = 0x88F0
	STENCIL_INDEX8    Enum = 0x8D48
)

const (
	COLOR_BUFFER_BIT   uint32 = 0x4000
	DEPTH_BUFFER_BIT   uint32 = 0x0100
	STENCIL_BUFFER_BIT uint32 = 0x0400
)

// StatusString names a glCheckFramebufferStatus result for error messages.
func StatusString(status Enum) string {

	switch status {
	case FRAMEBUFFER_COMPLETE:
		return "GL_FRAMEBUFFER_COMPLETE"
	case FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case FRAMEBUFFER_INCOMPLETE_DIMENSIONS:
		return "GL_FRAMEBUFFER_INCOMPLETE_DIMENSIONS"
	case FRAMEBUFFER_UNSUPPORTED:
		return "GL_FRAMEBUFFER_UNSUPPORTED"
	default:
		return fmt.Sprintf("GL_FRAMEBUFFER unknown error: %d", status)
	}
}
