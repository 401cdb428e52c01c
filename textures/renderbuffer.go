package textures

import (
	"errors"
	"fmt"

	"github.com/amikey/igl/assert"
	"github.com/amikey/igl/glctx"
)

var (
	ErrUnsupported     = errors.New("textures: unsupported")
	ErrInvalidArgument = errors.New("textures: invalid argument")
)

var _ Texture = &Renderbuffer{}

// Renderbuffer is a render-target-only attachment backed by a GL renderbuffer
// object. It supports multisampled storage but cannot be sampled as a texture
// or bound as a compute image.
type Renderbuffer struct {
	Id          uint32
	Width       int32
	Height      int32
	RbFormat    TextureFormat
	SampleCount int32

	glInternalFormat glctx.Enum
	ctx              glctx.Context
}

type RenderbufferDesc struct {
	Width   int32
	Height  int32
	Format  TextureFormat
	Type    TextureType
	Samples int32
}

// NewRenderbuffer allocates the renderbuffer object and, unless storage is
// supplied externally, its single- or multisampled storage.
func NewRenderbuffer(ctx glctx.Context, desc RenderbufferDesc, hasStorageAlready bool) (*Renderbuffer, error) {

	if desc.Type != TextureType_2D {
		return nil, fmt.Errorf("%w: renderbuffers must be 2D. Type=%d", ErrUnsupported, desc.Type)
	}

	glFormat, ok := desc.Format.GlInternalFormat()
	if !ok {
		return nil, fmt.Errorf("%w: no renderbuffer storage format for texture format %d", ErrInvalidArgument, desc.Format)
	}

	rb := &Renderbuffer{
		Id:               ctx.GenRenderbuffer(),
		Width:            desc.Width,
		Height:           desc.Height,
		RbFormat:         desc.Format,
		SampleCount:      desc.Samples,
		glInternalFormat: glFormat,
		ctx:              ctx,
	}

	if rb.SampleCount < 1 {
		rb.SampleCount = 1
	}

	if !hasStorageAlready {

		ctx.BindRenderbuffer(glctx.RENDERBUFFER, rb.Id)

		if rb.SampleCount > 1 {
			ctx.RenderbufferStorageMultisample(glctx.RENDERBUFFER, rb.SampleCount, glFormat, rb.Width, rb.Height)
		} else {
			ctx.RenderbufferStorage(glctx.RENDERBUFFER, glFormat, rb.Width, rb.Height)
		}

		ctx.BindRenderbuffer(glctx.RENDERBUFFER, 0)
	}

	return rb, nil
}

func (rb *Renderbuffer) ID() uint32 {
	return rb.Id
}

func (rb *Renderbuffer) Size() (width, height int32) {
	return rb.Width, rb.Height
}

func (rb *Renderbuffer) Format() TextureFormat {
	return rb.RbFormat
}

func (rb *Renderbuffer) Samples() int32 {
	return rb.SampleCount
}

func (rb *Renderbuffer) Type() TextureType {
	return TextureType_2D
}

func (rb *Renderbuffer) NumLayers() int32 {
	return 1
}

func (rb *Renderbuffer) IsImplicitStorage() bool {
	return false
}

func (rb *Renderbuffer) Bind() {
	rb.ctx.BindRenderbuffer(glctx.RENDERBUFFER, rb.Id)
}

func (rb *Renderbuffer) Unbind() {
	rb.ctx.BindRenderbuffer(glctx.RENDERBUFFER, 0)
}

// BindImage is unsupported: renderbuffers are not shader-accessible images.
func (rb *Renderbuffer) BindImage(unit uint32) {
	assert.T(false, "renderbuffers cannot be bound as compute images")
}

// Face and mip level only exist for interface symmetry with image-backed
// attachments; a renderbuffer has neither.
func (rb *Renderbuffer) AttachAsColor(index, face, mipLevel uint32) {
	assert.T(rb.Id != 0, "attach of renderbuffer without an allocated object")
	rb.ctx.FramebufferRenderbuffer(glctx.FRAMEBUFFER, glctx.COLOR_ATTACHMENT0+glctx.Enum(index), glctx.RENDERBUFFER, rb.Id)
}

// DetachAsColor is unsupported: rebinding color attachment 0 to renderbuffer
// id 0 has undefined behavior on iOS.
func (rb *Renderbuffer) DetachAsColor(index uint32) {
	assert.T(false, "renderbuffer color attachments cannot be detached")
}

func (rb *Renderbuffer) AttachAsDepth() {
	assert.T(rb.Id != 0, "attach of renderbuffer without an allocated object")
	rb.ctx.FramebufferRenderbuffer(glctx.FRAMEBUFFER, glctx.DEPTH_ATTACHMENT, glctx.RENDERBUFFER, rb.Id)
}

func (rb *Renderbuffer) AttachAsStencil() {
	assert.T(rb.Id != 0, "attach of renderbuffer without an allocated object")
	rb.ctx.FramebufferRenderbuffer(glctx.FRAMEBUFFER, glctx.STENCIL_ATTACHMENT, glctx.RENDERBUFFER, rb.Id)
}

func (rb *Renderbuffer) Delete() {

	if rb.Id == 0 {
		return
	}

	rb.ctx.DeleteRenderbuffer(rb.Id)
	rb.Id = 0
}
