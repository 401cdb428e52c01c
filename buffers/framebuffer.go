package buffers

import (
	"errors"
	"fmt"

	"github.com/bloeys/gglm/gglm"

	"github.com/amikey/igl/glctx"
	"github.com/amikey/igl/textures"
)

var (
	ErrAlreadyInitialized    = errors.New("buffers: framebuffer already initialized")
	ErrInvalidArgument       = errors.New("buffers: invalid argument")
	ErrUnsupported           = errors.New("buffers: unsupported")
	ErrFramebufferIncomplete = errors.New("buffers: framebuffer incomplete")
)

// MaxColorAttachments is the most color attachments a framebuffer can carry.
const MaxColorAttachments = 8

type FramebufferMode int32

const (
	// FramebufferMode_Mono is ordinary single-view rendering and the zero value.
	FramebufferMode_Mono FramebufferMode = iota

	// FramebufferMode_Stereo renders two views (left/right eye) from
	// array-backed attachments in a single submission.
	FramebufferMode_Stereo

	// FramebufferMode_Multiview (arbitrary view counts) is recognized but
	// not implemented; Initialize rejects it with ErrUnsupported.
	FramebufferMode_Multiview
)

func (m FramebufferMode) IsValid() bool {

	switch m {
	case FramebufferMode_Mono:
		fallthrough
	case FramebufferMode_Stereo:
		fallthrough
	case FramebufferMode_Multiview:
		return true

	default:
		return false
	}
}

// AttachmentDesc pairs an attachment with its optional multisample-resolve
// counterpart. Texture may be nil to leave the slot unpopulated.
type AttachmentDesc struct {
	Texture        textures.Texture
	ResolveTexture textures.Texture
}

// FramebufferDesc declares a framebuffer's attachment topology. Color slots
// are keyed by attachment index; numeric order decides draw-buffer order.
type FramebufferDesc struct {
	ColorAttachments  map[uint32]AttachmentDesc
	DepthAttachment   AttachmentDesc
	StencilAttachment AttachmentDesc
	Mode              FramebufferMode
}

type LoadAction int32

const (
	LoadAction_DontCare LoadAction = iota
	LoadAction_Load
	LoadAction_Clear
)

type StoreAction int32

const (
	StoreAction_DontCare StoreAction = iota
	StoreAction_Store
	StoreAction_MsaaResolve
)

// ColorPassDesc holds the per-pass parameters for one color attachment.
// Face and MipLevel select the cubemap face / array layer and mip to render
// to this pass; they are ignored for plain 2D attachments.
type ColorPassDesc struct {
	Load       LoadAction
	Store      StoreAction
	ClearColor gglm.Vec4
	Face       uint32
	MipLevel   uint32
}

type DepthPassDesc struct {
	Load       LoadAction
	Store      StoreAction
	ClearDepth float32
}

type StencilPassDesc struct {
	Load         LoadAction
	Store        StoreAction
	ClearStencil int32
}

// RenderPass carries the load/store/clear parameters for one bind/unbind cycle.
type RenderPass struct {
	ColorAttachments  [MaxColorAttachments]ColorPassDesc
	DepthAttachment   DepthPassDesc
	StencilAttachment StencilPassDesc
}

type Viewport struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Framebuffer is a render target a render pass draws into: bind it with the
// pass parameters, draw, then unbind to discard whatever the pass did not
// ask to store.
type Framebuffer interface {
	Bind(pass *RenderPass)
	Unbind()

	Viewport() Viewport
	ColorAttachment(index uint32) textures.Texture
	ResolveColorAttachment(index uint32) textures.Texture
	DepthAttachment() textures.Texture
	StencilAttachment() textures.Texture
	ColorAttachmentIndices() []uint32

	// UpdateDrawable swaps color attachment 0, the mechanism by which a
	// double-buffered presentable surface rotates frame over frame.
	UpdateDrawable(texture textures.Texture) textures.Texture

	Delete()
}

// checkFramebufferStatus validates completeness of the framebuffer currently
// bound to GL_FRAMEBUFFER, naming the GL status in the error.
func checkFramebufferStatus(ctx glctx.Context) error {

	status := ctx.CheckFramebufferStatus(glctx.FRAMEBUFFER)
	if status == glctx.FRAMEBUFFER_COMPLETE {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrFramebufferIncomplete, glctx.StatusString(status))
}

// framebufferBase carries the driver handle and binding helpers shared by the
// custom and current framebuffer implementations.
type framebufferBase struct {
	ctx glctx.Context
	id  uint32
}

func (fb *framebufferBase) bindBuffer() {
	fb.ctx.BindFramebuffer(glctx.FRAMEBUFFER, fb.id)
}

func (fb *framebufferBase) bindBufferForRead() {

	if fb.ctx.HasFeature(glctx.Feature_ReadWriteFramebuffer) {
		fb.ctx.BindFramebuffer(glctx.READ_FRAMEBUFFER, fb.id)
	} else {
		fb.bindBuffer()
	}
}
