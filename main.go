package main

import (
	"image"
	"image/png"
	"os"

	"github.com/bloeys/gglm/gglm"

	"github.com/amikey/igl/buffers"
	"github.com/amikey/igl/engine"
	"github.com/amikey/igl/logging"
	"github.com/amikey/igl/pixels"
	"github.com/amikey/igl/textures"
)

const (
	offscreenWidth  = 512
	offscreenHeight = 512
)

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalf("Failed to init engine. Err: %s\n", err.Error())
	}

	win, err := engine.CreateOpenGLWindowCentered("igl demo", 1280, 720, engine.WindowFlags_RESIZABLE)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to create window. Err: %s\n", err.Error())
	}
	defer win.Destroy()

	engine.SetVSync(true)

	// The window's default framebuffer, adopted as-is.
	screenFb := win.CurrentFramebuffer()

	// An offscreen render target with color and depth-stencil renderbuffers.
	colorRb, err := textures.NewRenderbuffer(win.Ctx, textures.RenderbufferDesc{
		Width:  offscreenWidth,
		Height: offscreenHeight,
		Format: textures.TextureFormat_RGBA8,
		Type:   textures.TextureType_2D,
	}, false)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to create color renderbuffer. Err: %s\n", err.Error())
	}

	depthRb, err := textures.NewRenderbuffer(win.Ctx, textures.RenderbufferDesc{
		Width:  offscreenWidth,
		Height: offscreenHeight,
		Format: textures.TextureFormat_Depth24Stencil8,
		Type:   textures.TextureType_2D,
	}, false)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to create depth renderbuffer. Err: %s\n", err.Error())
	}

	offscreenFb := buffers.NewCustomFramebuffer(win.Ctx)
	err = offscreenFb.Initialize(buffers.FramebufferDesc{
		ColorAttachments: map[uint32]buffers.AttachmentDesc{
			0: {Texture: colorRb},
		},
		DepthAttachment: buffers.AttachmentDesc{Texture: depthRb},
	})
	if err != nil {
		logging.ErrLog.Fatalf("Failed to initialize offscreen framebuffer. Err: %s\n", err.Error())
	}

	// One offscreen pass: clear to orange, keep the color, drop the depth.
	offscreenPass := &buffers.RenderPass{}
	offscreenPass.ColorAttachments[0] = buffers.ColorPassDesc{
		Load:       buffers.LoadAction_Clear,
		Store:      buffers.StoreAction_Store,
		ClearColor: *gglm.NewVec4(1, 0.5, 0, 1),
	}
	offscreenPass.DepthAttachment = buffers.DepthPassDesc{
		Load:       buffers.LoadAction_Clear,
		Store:      buffers.StoreAction_DontCare,
		ClearDepth: 1,
	}

	vp := offscreenFb.Viewport()
	win.Ctx.Viewport(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))

	offscreenFb.Bind(offscreenPass)
	// Draw calls for the offscreen pass go here.
	offscreenFb.Unbind()

	// Read the result back and dump it for inspection.
	readback := make([]byte, offscreenWidth*offscreenHeight*4)
	offscreenFb.CopyBytesColorAttachment(0, readback, textures.Range{
		Width:  offscreenWidth,
		Height: offscreenHeight,
	}, 0)

	img := pixels.FlipV(pixels.NRGBA(readback, offscreenWidth, offscreenHeight))
	writePng("offscreen.png", img)

	// Present a few frames through the adopted default framebuffer.
	screenPass := &buffers.RenderPass{}
	screenPass.ColorAttachments[0] = buffers.ColorPassDesc{
		Load:       buffers.LoadAction_Clear,
		Store:      buffers.StoreAction_Store,
		ClearColor: *gglm.NewVec4(0.1, 0.1, 0.1, 1),
	}
	screenPass.DepthAttachment = buffers.DepthPassDesc{Load: buffers.LoadAction_Clear, Store: buffers.StoreAction_DontCare, ClearDepth: 1}

	svp := screenFb.Viewport()
	for i := 0; i < 120 && !win.ShouldQuit; i++ {

		win.PollEvents()

		win.Ctx.Viewport(int32(svp.X), int32(svp.Y), int32(svp.Width), int32(svp.Height))
		screenFb.Bind(screenPass)
		// Draw calls for the presented pass go here.
		screenFb.Unbind()

		win.SDLWin.GLSwap()
	}

	offscreenFb.Delete()
	colorRb.Delete()
	depthRb.Delete()
}

func writePng(path string, img image.Image) {

	f, err := os.Create(path)
	if err != nil {
		logging.ErrLog.Printf("Failed to create %s. Err: %s\n", path, err.Error())
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		logging.ErrLog.Printf("Failed to encode %s. Err: %s\n", path, err.Error())
	}
}
