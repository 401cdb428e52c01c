package buffers

import (
	"fmt"
	"testing"

	"github.com/amikey/igl/glctx"
	"github.com/amikey/igl/textures"
)

func newReadbackFramebuffer(t *testing.T, ctx *fakeContext, tex *fakeTexture) *CustomFramebuffer {

	t.Helper()

	fb := NewCustomFramebuffer(ctx)
	err := fb.Initialize(FramebufferDesc{
		ColorAttachments: map[uint32]AttachmentDesc{0: {Texture: tex}},
	})
	if err != nil {
		t.Fatalf("initialize failed. Err: %s", err.Error())
	}
	return fb
}

func TestCopyBytesReadsRgba8(t *testing.T) {

	ctx := newFakeContext()
	fb := newReadbackFramebuffer(t, ctx, newFakeTexture(1, 64, 64))

	pixels := make([]byte, 64*64*4)
	fb.CopyBytesColorAttachment(0, pixels, textures.Range{Width: 64, Height: 64}, 0)

	// 64*4 bytes per row is 8-byte aligned.
	wantPack := fmt.Sprintf("PixelStorei(%d, 8)", glctx.PACK_ALIGNMENT)
	if got := ctx.lastCall("PixelStorei"); got != wantPack {
		t.Fatalf("wrong pack alignment. Got=%s Want=%s", got, wantPack)
	}

	if n := ctx.callCount("Flush"); n != 1 {
		t.Fatalf("readback must flush pending work. Flushes=%d", n)
	}

	wantRead := fmt.Sprintf("ReadPixels(0, 0, 64, 64, %d, %d)", glctx.RGBA, glctx.UNSIGNED_BYTE)
	if got := ctx.lastCall("ReadPixels"); got != wantRead {
		t.Fatalf("wrong read. Got=%s Want=%s", got, wantRead)
	}

	// No throwaway framebuffer for a non-layered source.
	if n := ctx.callCount("GenFramebuffer"); n != 1 {
		t.Fatalf("unexpected extra framebuffer objects. Gens=%d", n)
	}
}

func TestCopyBytesDerivesPackAlignmentFromOddRows(t *testing.T) {

	ctx := newFakeContext()
	fb := newReadbackFramebuffer(t, ctx, newFakeTexture(1, 7, 3))

	pixels := make([]byte, 7*3*4)
	fb.CopyBytesColorAttachment(0, pixels, textures.Range{Width: 7, Height: 3}, 0)

	// 7*4=28 bytes per row is only 4-byte aligned.
	wantPack := fmt.Sprintf("PixelStorei(%d, 4)", glctx.PACK_ALIGNMENT)
	if got := ctx.lastCall("PixelStorei"); got != wantPack {
		t.Fatalf("wrong pack alignment. Got=%s Want=%s", got, wantPack)
	}
}

func TestCopyBytesHonorsExplicitBytesPerRow(t *testing.T) {

	ctx := newFakeContext()
	fb := newReadbackFramebuffer(t, ctx, newFakeTexture(1, 64, 64))

	pixels := make([]byte, 30*2)
	fb.CopyBytesColorAttachment(0, pixels, textures.Range{Width: 7, Height: 2}, 30)

	wantPack := fmt.Sprintf("PixelStorei(%d, 2)", glctx.PACK_ALIGNMENT)
	if got := ctx.lastCall("PixelStorei"); got != wantPack {
		t.Fatalf("wrong pack alignment. Got=%s Want=%s", got, wantPack)
	}
}

func TestCopyBytesRejectsNonZeroIndexBeforeTouchingTheDriver(t *testing.T) {

	ctx := newFakeContext()
	fb := newReadbackFramebuffer(t, ctx, newFakeTexture(1, 64, 64))

	callsBefore := len(ctx.calls)

	expectPanic(t, func() {
		fb.CopyBytesColorAttachment(1, make([]byte, 4), textures.Range{Width: 1, Height: 1}, 0)
	})

	if len(ctx.calls) != callsBefore {
		t.Fatalf("driver was touched before the index was validated. Calls=%v", ctx.calls[callsBefore:])
	}
}

func TestCopyBytesLayeredSourceUsesThrowawayFramebuffer(t *testing.T) {

	ctx := newFakeContext()
	layered := newFakeTexture(1, 64, 64)
	layered.texType = textures.TextureType_2DArray
	layered.layers = 4

	fb := newReadbackFramebuffer(t, ctx, layered)

	pixels := make([]byte, 64*64*4)
	fb.CopyBytesColorAttachment(0, pixels, textures.Range{Width: 64, Height: 64, Layer: 2}, 0)

	// One framebuffer object from initialize, one throwaway for the layer.
	if n := ctx.callCount("GenFramebuffer"); n != 2 {
		t.Fatalf("wrong framebuffer object count. Gens=%d", n)
	}

	wantAttach := fmt.Sprintf("FramebufferTextureLayer(%d, %d, 1, 0, 2)", glctx.READ_FRAMEBUFFER, glctx.COLOR_ATTACHMENT0)
	if n := ctx.callCount(wantAttach); n != 1 {
		t.Fatalf("requested layer was not attached. Calls=%v", ctx.calls)
	}

	// After the read the layer is detached and the throwaway deleted.
	wantDetach := fmt.Sprintf("FramebufferTextureLayer(%d, %d, 0, 0, 0)", glctx.READ_FRAMEBUFFER, glctx.COLOR_ATTACHMENT0)
	if got := ctx.lastCall("FramebufferTextureLayer"); got != wantDetach {
		t.Fatalf("layer was not detached after the read. Got=%s", got)
	}
	if n := ctx.callCount("DeleteFramebuffer"); n != 1 {
		t.Fatalf("throwaway framebuffer not deleted. Deletes=%d", n)
	}
}

func TestCopyBytesIntegerFormatUsesIntegerReadPath(t *testing.T) {

	ctx := newFakeContext()
	intTex := newFakeTexture(1, 16, 16)
	intTex.format = textures.TextureFormat_RGBA_UInt32

	fb := newReadbackFramebuffer(t, ctx, intTex)

	pixels := make([]byte, 16*16*16)
	fb.CopyBytesColorAttachment(0, pixels, textures.Range{Width: 16, Height: 16}, 0)

	wantRead := fmt.Sprintf("ReadPixels(0, 0, 16, 16, %d, %d)", glctx.RGBA_INTEGER, glctx.UNSIGNED_INT)
	if got := ctx.lastCall("ReadPixels"); got != wantRead {
		t.Fatalf("wrong integer read. Got=%s Want=%s", got, wantRead)
	}
}

func TestCopyBytesIntegerFormatRequiresDriverSupport(t *testing.T) {

	ctx := newFakeContext()
	ctx.features[glctx.Feature_IntegerTextures] = false

	intTex := newFakeTexture(1, 16, 16)
	intTex.format = textures.TextureFormat_RGBA_UInt32

	fb := newReadbackFramebuffer(t, ctx, intTex)

	expectPanic(t, func() {
		fb.CopyBytesColorAttachment(0, make([]byte, 16*16*16), textures.Range{Width: 16, Height: 16}, 0)
	})
}

func TestCopyBytesDepthAndStencilAreUnimplemented(t *testing.T) {

	ctx := newFakeContext()
	fb := newReadbackFramebuffer(t, ctx, newFakeTexture(1, 16, 16))

	expectPanic(t, func() {
		fb.CopyBytesDepthAttachment(make([]byte, 4), textures.Range{Width: 1, Height: 1}, 0)
	})
	expectPanic(t, func() {
		fb.CopyBytesStencilAttachment(make([]byte, 4), textures.Range{Width: 1, Height: 1}, 0)
	})
}

func TestCopyTextureCopiesIntoDestination(t *testing.T) {

	ctx := newFakeContext()
	fb := newReadbackFramebuffer(t, ctx, newFakeTexture(1, 64, 64))

	dest := newFakeTexture(2, 32, 32)
	fb.CopyTextureColorAttachment(0, dest, textures.Range{X: 4, Y: 8, Width: 32, Height: 32})

	if len(dest.attachCalls) == 0 || dest.attachCalls[0] != "Bind" {
		t.Fatalf("destination texture was not bound. Calls=%v", dest.attachCalls)
	}

	want := fmt.Sprintf("CopyTexSubImage2D(%d, 0, 0, 0, 4, 8, 32, 32)", glctx.TEXTURE_2D)
	if got := ctx.lastCall("CopyTexSubImage2D"); got != want {
		t.Fatalf("wrong copy. Got=%s Want=%s", got, want)
	}
}

func TestCopyTextureRestoresAmbientBindings(t *testing.T) {

	ctx := newFakeContext()
	fb := newReadbackFramebuffer(t, ctx, newFakeTexture(1, 64, 64))

	ctx.BindFramebuffer(glctx.READ_FRAMEBUFFER, 50)
	ctx.BindFramebuffer(glctx.DRAW_FRAMEBUFFER, 51)

	fb.CopyTextureColorAttachment(0, newFakeTexture(2, 32, 32), textures.Range{Width: 32, Height: 32})

	if ctx.boundRead != 50 || ctx.boundDraw != 51 {
		t.Fatalf("ambient bindings leaked. Read=%d Draw=%d", ctx.boundRead, ctx.boundDraw)
	}
}
