package buffers

import (
	"fmt"
	"sort"

	"github.com/amikey/igl/assert"
	"github.com/amikey/igl/glctx"
	"github.com/amikey/igl/logging"
	"github.com/amikey/igl/textures"
)

var _ Framebuffer = &CustomFramebuffer{}

// CustomFramebuffer owns a driver framebuffer object built from an explicit
// attachment set. If any color attachment declares a resolve texture, a
// companion single-sample framebuffer over the resolve textures is built and
// owned as well; when to resolve into it is the caller's call.
type CustomFramebuffer struct {
	framebufferBase

	initialized  bool
	renderTarget FramebufferDesc

	// ResolveFramebuffer is the companion target multisampled contents are
	// resolved into. Bind/Unbind never drive it automatically.
	ResolveFramebuffer *CustomFramebuffer

	// renderPass is cached by Bind so Unbind knows what to discard.
	renderPass RenderPass
}

func NewCustomFramebuffer(ctx glctx.Context) *CustomFramebuffer {
	return &CustomFramebuffer{framebufferBase: framebufferBase{ctx: ctx}}
}

func (fb *CustomFramebuffer) IsInitialized() bool {
	return fb.initialized
}

// hasImplicitColorAttachment reports that attachment 0 is a platform-supplied
// color buffer, in which case no framebuffer object is created and this
// framebuffer is a thin shell over the platform surface.
func (fb *CustomFramebuffer) hasImplicitColorAttachment() bool {

	if fb.id != 0 {
		return false
	}

	att0, ok := fb.renderTarget.ColorAttachments[0]
	return ok && att0.Texture != nil && att0.Texture.IsImplicitStorage()
}

// Initialize stores the attachment topology and builds the driver objects.
// It must be called exactly once; a second call fails with
// ErrAlreadyInitialized. On failure no driver object leaks: Delete still
// releases whatever was allocated.
func (fb *CustomFramebuffer) Initialize(desc FramebufferDesc) error {

	if fb.initialized {
		return ErrAlreadyInitialized
	}
	fb.initialized = true

	if !desc.Mode.IsValid() {
		return fmt.Errorf("%w: unknown framebuffer mode %d", ErrInvalidArgument, desc.Mode)
	}

	if desc.Mode == FramebufferMode_Multiview {
		return fmt.Errorf("%w: FramebufferMode_Multiview is not implemented", ErrUnsupported)
	}

	if desc.ColorAttachments == nil {
		desc.ColorAttachments = make(map[uint32]AttachmentDesc)
	}
	fb.renderTarget = desc

	guard := newBindingGuard(fb.ctx)
	defer guard.Release()

	if fb.hasImplicitColorAttachment() {
		// Use the implicit framebuffer supplied by the containing view.
		return nil
	}

	return fb.prepareResource()
}

func (fb *CustomFramebuffer) prepareResource() error {

	fb.id = fb.ctx.GenFramebuffer()
	fb.bindBuffer()

	drawBuffers := make([]glctx.Enum, 0, len(fb.renderTarget.ColorAttachments))

	for _, index := range fb.ColorAttachmentIndices() {

		att := fb.renderTarget.ColorAttachments[index]
		if att.Texture == nil {
			continue
		}

		fb.attachAsColor(att.Texture, index, 0, 0)
		drawBuffers = append(drawBuffers, glctx.COLOR_ATTACHMENT0+glctx.Enum(index))
	}

	// A single attachment uses the default draw buffer.
	if len(drawBuffers) > 1 {
		fb.ctx.DrawBuffers(drawBuffers)
	}

	if fb.renderTarget.DepthAttachment.Texture != nil {
		fb.attachAsDepth(fb.renderTarget.DepthAttachment.Texture)
	}

	if fb.renderTarget.StencilAttachment.Texture != nil {
		fb.attachAsStencil(fb.renderTarget.StencilAttachment.Texture)
	}

	if err := checkFramebufferStatus(fb.ctx); err != nil {
		return err
	}

	return fb.prepareResolveResource()
}

// prepareResolveResource builds the companion resolve framebuffer when any
// attachment declares a resolve texture.
func (fb *CustomFramebuffer) prepareResolveResource() error {

	resolveDesc := FramebufferDesc{ColorAttachments: make(map[uint32]AttachmentDesc)}
	needed := false

	for index, att := range fb.renderTarget.ColorAttachments {
		if att.ResolveTexture == nil {
			continue
		}
		needed = true
		resolveDesc.ColorAttachments[index] = AttachmentDesc{Texture: att.ResolveTexture}
	}

	if needed && len(resolveDesc.ColorAttachments) != len(fb.renderTarget.ColorAttachments) {
		return fmt.Errorf("%w: if a resolve texture is specified on a color attachment it must be specified on all of them", ErrInvalidArgument)
	}

	if fb.renderTarget.DepthAttachment.ResolveTexture != nil {
		needed = true
		resolveDesc.DepthAttachment.Texture = fb.renderTarget.DepthAttachment.ResolveTexture
	}

	if fb.renderTarget.StencilAttachment.ResolveTexture != nil {
		needed = true
		resolveDesc.StencilAttachment.Texture = fb.renderTarget.StencilAttachment.ResolveTexture
	}

	if !needed {
		return nil
	}

	resolveFb := NewCustomFramebuffer(fb.ctx)
	if err := resolveFb.Initialize(resolveDesc); err != nil {
		return err
	}

	fb.ResolveFramebuffer = resolveFb
	return nil
}

func (fb *CustomFramebuffer) attachAsColor(texture textures.Texture, index, face, mipLevel uint32) {

	switch fb.renderTarget.Mode {

	case FramebufferMode_Mono:
		texture.AttachAsColor(index, face, mipLevel)

	case FramebufferMode_Stereo:
		if samples := texture.Samples(); samples > 1 {
			assert.T(index == 0, "multisampled stereo framebuffers can only use color attachment 0. Index=%d", index)
			fb.ctx.FramebufferTextureMultisampleMultiview(glctx.DRAW_FRAMEBUFFER, glctx.COLOR_ATTACHMENT0, texture.ID(), 0, samples, 0, 2)
		} else {
			fb.ctx.FramebufferTextureMultiview(glctx.DRAW_FRAMEBUFFER, glctx.COLOR_ATTACHMENT0+glctx.Enum(index), texture.ID(), 0, 0, 2)
		}

	default:
		assert.T(false, "attach with unknown framebuffer mode. Mode=%d", fb.renderTarget.Mode)
	}
}

func (fb *CustomFramebuffer) attachAsDepth(texture textures.Texture) {

	switch fb.renderTarget.Mode {

	case FramebufferMode_Mono:
		texture.AttachAsDepth()

	case FramebufferMode_Stereo:
		if samples := texture.Samples(); samples > 1 {
			fb.ctx.FramebufferTextureMultisampleMultiview(glctx.DRAW_FRAMEBUFFER, glctx.DEPTH_ATTACHMENT, texture.ID(), 0, samples, 0, 2)
		} else {
			fb.ctx.FramebufferTextureMultiview(glctx.DRAW_FRAMEBUFFER, glctx.DEPTH_ATTACHMENT, texture.ID(), 0, 0, 2)
		}

	default:
		assert.T(false, "attach with unknown framebuffer mode. Mode=%d", fb.renderTarget.Mode)
	}
}

func (fb *CustomFramebuffer) attachAsStencil(texture textures.Texture) {

	switch fb.renderTarget.Mode {

	case FramebufferMode_Mono:
		texture.AttachAsStencil()

	case FramebufferMode_Stereo:
		if samples := texture.Samples(); samples > 1 {
			fb.ctx.FramebufferTextureMultisampleMultiview(glctx.DRAW_FRAMEBUFFER, glctx.STENCIL_ATTACHMENT, texture.ID(), 0, samples, 0, 2)
		} else {
			fb.ctx.FramebufferTextureMultiview(glctx.DRAW_FRAMEBUFFER, glctx.STENCIL_ATTACHMENT, texture.ID(), 0, 0, 2)
		}

	default:
		assert.T(false, "attach with unknown framebuffer mode. Mode=%d", fb.renderTarget.Mode)
	}
}

func (fb *CustomFramebuffer) ColorAttachmentIndices() []uint32 {

	indices := make([]uint32, 0, len(fb.renderTarget.ColorAttachments))
	for index := range fb.renderTarget.ColorAttachments {
		indices = append(indices, index)
	}

	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

func (fb *CustomFramebuffer) ColorAttachment(index uint32) textures.Texture {
	return fb.renderTarget.ColorAttachments[index].Texture
}

func (fb *CustomFramebuffer) ResolveColorAttachment(index uint32) textures.Texture {
	return fb.renderTarget.ColorAttachments[index].ResolveTexture
}

func (fb *CustomFramebuffer) DepthAttachment() textures.Texture {
	return fb.renderTarget.DepthAttachment.Texture
}

func (fb *CustomFramebuffer) ResolveDepthAttachment() textures.Texture {
	return fb.renderTarget.DepthAttachment.ResolveTexture
}

func (fb *CustomFramebuffer) StencilAttachment() textures.Texture {
	return fb.renderTarget.StencilAttachment.Texture
}

func (fb *CustomFramebuffer) Viewport() Viewport {

	texture := fb.ColorAttachment(0)
	if texture == nil {
		logging.ErrLog.Println("no color attachment at index 0 to derive a viewport from")
		return Viewport{}
	}

	width, height := texture.Size()
	return Viewport{X: 0, Y: 0, Width: float32(width), Height: float32(height)}
}

func (fb *CustomFramebuffer) UpdateDrawable(texture textures.Texture) textures.Texture {

	current := fb.ColorAttachment(0)

	if texture == nil && current != nil {
		fb.bindBuffer()
		current.DetachAsColor(0)
		delete(fb.renderTarget.ColorAttachments, 0)
	}

	if texture != nil && fb.ColorAttachment(0) != texture {

		guard := newBindingGuard(fb.ctx)

		fb.bindBuffer()
		fb.attachAsColor(texture, 0, 0, 0)

		att := fb.renderTarget.ColorAttachments[0]
		att.Texture = texture
		fb.renderTarget.ColorAttachments[0] = att

		guard.Release()
	}

	return texture
}

// Bind starts a render pass on this framebuffer: it caches the pass for
// Unbind, re-attaches cubemap faces per the pass selection, applies sRGB
// write state, and issues one combined clear for every attachment whose load
// action asks for it.
func (fb *CustomFramebuffer) Bind(pass *RenderPass) {

	fb.renderPass = *pass

	fb.bindBuffer()

	if att0 := fb.ColorAttachment(0); att0 != nil && fb.ctx.HasFeature(glctx.Feature_SRGBWriteControl) {
		if att0.Format().IsSRGB() {
			fb.ctx.Enable(glctx.FRAMEBUFFER_SRGB)
		} else {
			fb.ctx.Disable(glctx.FRAMEBUFFER_SRGB)
		}
	}

	for _, index := range fb.ColorAttachmentIndices() {

		texture := fb.renderTarget.ColorAttachments[index].Texture
		if texture == nil || texture.Type() != textures.TextureType_Cube {
			continue
		}

		assert.T(index < MaxColorAttachments, "color attachment index out of range. Index=%d", index)
		fb.attachAsColor(texture, index, pass.ColorAttachments[index].Face, pass.ColorAttachments[index].MipLevel)
	}

	var clearMask uint32

	if att0 := fb.ColorAttachment(0); att0 != nil && fb.renderPass.ColorAttachments[0].Load == LoadAction_Clear {
		clearMask |= glctx.COLOR_BUFFER_BIT
		clearColor := fb.renderPass.ColorAttachments[0].ClearColor
		fb.ctx.ColorMask(true, true, true, true)
		fb.ctx.ClearColor(clearColor.X(), clearColor.Y(), clearColor.Z(), clearColor.W())
	}

	if fb.renderTarget.DepthAttachment.Texture != nil && fb.renderPass.DepthAttachment.Load == LoadAction_Clear {
		clearMask |= glctx.DEPTH_BUFFER_BIT
		fb.ctx.DepthMask(true)
		fb.ctx.ClearDepth(fb.renderPass.DepthAttachment.ClearDepth)
	}

	if fb.renderTarget.StencilAttachment.Texture != nil {
		fb.ctx.Enable(glctx.STENCIL_TEST)
		if fb.renderPass.StencilAttachment.Load == LoadAction_Clear {
			clearMask |= glctx.STENCIL_BUFFER_BIT
			fb.ctx.StencilMask(0xFF)
			fb.ctx.ClearStencil(fb.renderPass.StencilAttachment.ClearStencil)
		}
	}

	if clearMask != 0 {
		fb.ctx.Clear(clearMask)
	}
}

// Unbind ends the pass: contents of every attachment whose store action is
// not Store are invalidated in one driver call, when the driver supports
// invalidation at all.
func (fb *CustomFramebuffer) Unbind() {

	attachments := make([]glctx.Enum, 0, 3)

	if att0 := fb.ColorAttachment(0); att0 != nil && fb.renderPass.ColorAttachments[0].Store != StoreAction_Store {
		attachments = append(attachments, glctx.COLOR_ATTACHMENT0)
	}

	if fb.renderTarget.DepthAttachment.Texture != nil && fb.renderPass.DepthAttachment.Store != StoreAction_Store {
		attachments = append(attachments, glctx.DEPTH_ATTACHMENT)
	}

	if fb.renderTarget.StencilAttachment.Texture != nil {
		fb.ctx.Disable(glctx.STENCIL_TEST)
		if fb.renderPass.StencilAttachment.Store != StoreAction_Store {
			attachments = append(attachments, glctx.STENCIL_ATTACHMENT)
		}
	}

	if len(attachments) > 0 && fb.ctx.HasFeature(glctx.Feature_InvalidateFramebuffer) {
		fb.ctx.InvalidateFramebuffer(glctx.FRAMEBUFFER, attachments)
	}
}

// Delete releases the framebuffer object before any attachment reference is
// dropped, so the driver never sees a live framebuffer pointing at dead
// renderbuffers. The resolve companion is deleted transitively.
func (fb *CustomFramebuffer) Delete() {

	if fb.id != 0 {
		fb.ctx.DeleteFramebuffer(fb.id)
		fb.id = 0
	}

	fb.renderTarget = FramebufferDesc{}

	if fb.ResolveFramebuffer != nil {
		fb.ResolveFramebuffer.Delete()
		fb.ResolveFramebuffer = nil
	}
}
