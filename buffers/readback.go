package buffers

import (
	"github.com/amikey/igl/assert"
	"github.com/amikey/igl/glctx"
	"github.com/amikey/igl/logging"
	"github.com/amikey/igl/textures"
)

// CopyBytesColorAttachment reads a region of color attachment 0 back into
// pixelBytes, stalling the caller until the GPU has produced the pixels.
// Only attachment 0 is supported because that is all glReadPixels can read.
//
// Everything reads back as 8-bit RGBA regardless of the attachment's native
// format, except 32-bit unsigned-integer color which uses the integer read
// path. This narrowing is deliberate.
func (fb *CustomFramebuffer) CopyBytesColorAttachment(index uint32, pixelBytes []byte, region textures.Range, bytesPerRow int32) {

	// glReadPixels only reads attachment 0.
	assert.T(index == 0, "invalid color attachment index for readback. Index=%d", index)

	texture := fb.ColorAttachment(index)
	assert.T(texture != nil, "no color attachment to read back at index %d", index)

	guard := newBindingGuard(fb.ctx)
	defer guard.Release()

	// A layered source can't be read directly; attach the requested layer
	// to a throwaway framebuffer and read from that.
	var extraFramebuffer uint32
	if texture.NumLayers() > 1 {

		extraFramebuffer = fb.ctx.GenFramebuffer()
		fb.ctx.BindFramebuffer(glctx.READ_FRAMEBUFFER, extraFramebuffer)
		fb.attachAsColorLayer(texture, region.Layer)

		if err := checkFramebufferStatus(fb.ctx); err != nil {
			logging.WarnLog.Printf("layered readback framebuffer is not complete. Err: %s\n", err.Error())
		}
	} else {
		fb.bindBufferForRead()
	}

	if bytesPerRow == 0 {
		bytesPerRow = texture.Format().BytesPerRow(region.Width)
	}
	fb.ctx.PixelStorei(glctx.PACK_ALIGNMENT, textures.PackAlignment(bytesPerRow))

	fb.ctx.Flush()

	if texture.Format() == textures.TextureFormat_RGBA_UInt32 {
		assert.T(fb.ctx.HasFeature(glctx.Feature_IntegerTextures), "integer texture readback is not supported by this driver")
		fb.ctx.ReadPixels(region.X, region.Y, region.Width, region.Height, glctx.RGBA_INTEGER, glctx.UNSIGNED_INT, pixelBytes)
	} else {
		fb.ctx.ReadPixels(region.X, region.Y, region.Width, region.Height, glctx.RGBA, glctx.UNSIGNED_BYTE, pixelBytes)
	}

	if texture.NumLayers() > 1 {
		fb.attachAsColorLayer(nil, 0)
		fb.ctx.DeleteFramebuffer(extraFramebuffer)
	}
}

// CopyBytesDepthAttachment is an intentionally unimplemented extension point.
func (fb *CustomFramebuffer) CopyBytesDepthAttachment(pixelBytes []byte, region textures.Range, bytesPerRow int32) {
	assert.T(false, "depth attachment readback is not implemented")
}

// CopyBytesStencilAttachment is an intentionally unimplemented extension point.
func (fb *CustomFramebuffer) CopyBytesStencilAttachment(pixelBytes []byte, region textures.Range, bytesPerRow int32) {
	assert.T(false, "stencil attachment readback is not implemented")
}

// CopyTextureColorAttachment copies a region of color attachment 0 into
// destTexture. Only attachment 0 is supported because that is all
// glCopyTexSubImage2D can source.
func (fb *CustomFramebuffer) CopyTextureColorAttachment(index uint32, destTexture textures.Texture, region textures.Range) {

	assert.T(index == 0 && fb.ColorAttachment(index) != nil, "invalid color attachment index for copy. Index=%d", index)
	assert.T(destTexture != nil, "copy needs a destination texture")

	guard := newBindingGuard(fb.ctx)
	defer guard.Release()

	fb.bindBufferForRead()

	destTexture.Bind()
	fb.ctx.CopyTexSubImage2D(glctx.TEXTURE_2D, 0, 0, 0, region.X, region.Y, region.Width, region.Height)
}

func (fb *CustomFramebuffer) attachAsColorLayer(texture textures.Texture, layer int32) {

	if texture == nil {
		fb.ctx.FramebufferTextureLayer(glctx.READ_FRAMEBUFFER, glctx.COLOR_ATTACHMENT0, 0, 0, 0)
		return
	}

	fb.ctx.FramebufferTextureLayer(glctx.READ_FRAMEBUFFER, glctx.COLOR_ATTACHMENT0, texture.ID(), 0, layer)
}
