package textures

import (
	"github.com/amikey/igl/assert"
	"github.com/amikey/igl/glctx"
)

// Texture is any image resource a framebuffer can hold as an attachment.
// Attach/detach calls operate on the framebuffer currently bound in the
// driver context; the caller owns the binding.
type Texture interface {
	ID() uint32
	Size() (width, height int32)
	Format() TextureFormat
	Samples() int32
	Type() TextureType
	NumLayers() int32

	// IsImplicitStorage reports that storage is owned by the platform
	// (e.g. a view-supplied drawable) rather than allocated through GL.
	IsImplicitStorage() bool

	Bind()
	Unbind()

	AttachAsColor(index, face, mipLevel uint32)
	DetachAsColor(index uint32)
	AttachAsDepth()
	AttachAsStencil()
}

var _ Texture = &Texture2D{}

// Texture2D wraps an existing GL texture object (2D, 2D array or cubemap)
// so it can be attached to framebuffers. It does not allocate or own the
// texture storage.
type Texture2D struct {
	Id          uint32
	Width       int32
	Height      int32
	TexFormat   TextureFormat
	TexType     TextureType
	SampleCount int32
	Layers      int32

	// ImplicitStorage marks platform-owned surfaces (see Texture.IsImplicitStorage).
	ImplicitStorage bool

	ctx glctx.Context
}

func NewTexture2D(ctx glctx.Context, id uint32, width, height int32, format TextureFormat, texType TextureType) *Texture2D {

	assert.T(texType.IsValid(), "invalid texture type. Type=%d", texType)

	return &Texture2D{
		Id:          id,
		Width:       width,
		Height:      height,
		TexFormat:   format,
		TexType:     texType,
		SampleCount: 1,
		Layers:      1,
		ctx:         ctx,
	}
}

func (t *Texture2D) ID() uint32 {
	return t.Id
}

func (t *Texture2D) Size() (width, height int32) {
	return t.Width, t.Height
}

func (t *Texture2D) Format() TextureFormat {
	return t.TexFormat
}

func (t *Texture2D) Samples() int32 {

	if t.SampleCount < 1 {
		return 1
	}
	return t.SampleCount
}

func (t *Texture2D) Type() TextureType {
	return t.TexType
}

func (t *Texture2D) NumLayers() int32 {

	if t.Layers < 1 {
		return 1
	}
	return t.Layers
}

func (t *Texture2D) IsImplicitStorage() bool {
	return t.ImplicitStorage
}

func (t *Texture2D) Bind() {
	t.ctx.BindTexture(t.TexType.GlTarget(), t.Id)
}

func (t *Texture2D) Unbind() {
	t.ctx.BindTexture(t.TexType.GlTarget(), 0)
}

// attachTarget resolves the per-face texture target used in attach calls.
// Cubemaps select one of the six face targets; face is ignored otherwise.
func (t *Texture2D) attachTarget(face uint32) glctx.Enum {

	if t.TexType == TextureType_Cube {
		assert.T(face < 6, "cubemap face out of range. Face=%d", face)
		return glctx.TEXTURE_CUBE_MAP_POSITIVE_X + glctx.Enum(face)
	}

	return glctx.TEXTURE_2D
}

func (t *Texture2D) AttachAsColor(index, face, mipLevel uint32) {

	if t.TexType == TextureType_2DArray {
		t.ctx.FramebufferTextureLayer(glctx.FRAMEBUFFER, glctx.COLOR_ATTACHMENT0+glctx.Enum(index), t.Id, int32(mipLevel), int32(face))
		return
	}

	t.ctx.FramebufferTexture2D(glctx.FRAMEBUFFER, glctx.COLOR_ATTACHMENT0+glctx.Enum(index), t.attachTarget(face), t.Id, int32(mipLevel))
}

func (t *Texture2D) DetachAsColor(index uint32) {
	t.ctx.FramebufferTexture2D(glctx.FRAMEBUFFER, glctx.COLOR_ATTACHMENT0+glctx.Enum(index), glctx.TEXTURE_2D, 0, 0)
}

func (t *Texture2D) AttachAsDepth() {
	t.ctx.FramebufferTexture2D(glctx.FRAMEBUFFER, glctx.DEPTH_ATTACHMENT, t.attachTarget(0), t.Id, 0)
}

func (t *Texture2D) AttachAsStencil() {
	t.ctx.FramebufferTexture2D(glctx.FRAMEBUFFER, glctx.STENCIL_ATTACHMENT, t.attachTarget(0), t.Id, 0)
}

var _ Texture = &Placeholder{}

// Placeholder stands in for the color attachment of a framebuffer this layer
// did not create (the platform default framebuffer). It only answers size and
// format queries; it is not a real resource and cannot be attached or sampled.
type Placeholder struct {
	Width  int32
	Height int32
}

func (p *Placeholder) ID() uint32 {
	return 0
}

func (p *Placeholder) Size() (width, height int32) {
	return p.Width, p.Height
}

func (p *Placeholder) Format() TextureFormat {
	return TextureFormat_RGBA8
}

func (p *Placeholder) Samples() int32 {
	return 1
}

func (p *Placeholder) Type() TextureType {
	return TextureType_2D
}

func (p *Placeholder) NumLayers() int32 {
	return 1
}

func (p *Placeholder) IsImplicitStorage() bool {
	return false
}

func (p *Placeholder) Bind() {
	assert.T(false, "placeholder textures cannot be bound")
}

func (p *Placeholder) Unbind() {
	assert.T(false, "placeholder textures cannot be unbound")
}

func (p *Placeholder) AttachAsColor(index, face, mipLevel uint32) {
	assert.T(false, "placeholder textures cannot be attached")
}

func (p *Placeholder) DetachAsColor(index uint32) {
	assert.T(false, "placeholder textures cannot be detached")
}

func (p *Placeholder) AttachAsDepth() {
	assert.T(false, "placeholder textures cannot be attached")
}

func (p *Placeholder) AttachAsStencil() {
	assert.T(false, "placeholder textures cannot be attached")
}
