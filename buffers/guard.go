package buffers

import (
	"github.com/amikey/igl/glctx"
)

// bindingGuard snapshots the driver's framebuffer and renderbuffer bindings
// so an operation can rebind freely and hand the previous state back on
// Release. Framebuffer bindings are only captured while the currently bound
// framebuffer is complete; restoring an incomplete binding would re-bind
// garbage state, so capture is skipped and Release rebinds 0 instead.
type bindingGuard struct {
	ctx glctx.Context

	renderbuffer    uint32
	framebuffer     uint32
	readFramebuffer uint32
	drawFramebuffer uint32
}

func newBindingGuard(ctx glctx.Context) bindingGuard {

	g := bindingGuard{ctx: ctx}
	g.renderbuffer = uint32(ctx.GetInteger(glctx.RENDERBUFFER_BINDING))

	if checkFramebufferStatus(ctx) != nil {
		return g
	}

	if ctx.HasFeature(glctx.Feature_ReadWriteFramebuffer) {
		g.readFramebuffer = uint32(ctx.GetInteger(glctx.READ_FRAMEBUFFER_BINDING))
		g.drawFramebuffer = uint32(ctx.GetInteger(glctx.DRAW_FRAMEBUFFER_BINDING))
	} else {
		g.framebuffer = uint32(ctx.GetInteger(glctx.FRAMEBUFFER_BINDING))
	}

	return g
}

// Release restores the captured bindings. Call it on every exit path,
// normally via defer.
func (g *bindingGuard) Release() {

	if g.ctx.HasFeature(glctx.Feature_ReadWriteFramebuffer) {
		g.ctx.BindFramebuffer(glctx.READ_FRAMEBUFFER, g.readFramebuffer)
		g.ctx.BindFramebuffer(glctx.DRAW_FRAMEBUFFER, g.drawFramebuffer)
	} else {
		g.ctx.BindFramebuffer(glctx.FRAMEBUFFER, g.framebuffer)
	}

	g.ctx.BindRenderbuffer(glctx.RENDERBUFFER, g.renderbuffer)
}
