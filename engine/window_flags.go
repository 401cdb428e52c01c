package engine

import "github.com/veandco/go-sdl2/sdl"

type WindowFlags uint32

const (
	WindowFlags_OPENGL     WindowFlags = sdl.WINDOW_OPENGL
	WindowFlags_RESIZABLE  WindowFlags = sdl.WINDOW_RESIZABLE
	WindowFlags_HIDDEN     WindowFlags = sdl.WINDOW_HIDDEN
	WindowFlags_FULLSCREEN WindowFlags = sdl.WINDOW_FULLSCREEN
	WindowFlags_MAXIMIZED  WindowFlags = sdl.WINDOW_MAXIMIZED
	WindowFlags_ALLOW_HIGHDPI WindowFlags = sdl.WINDOW_ALLOW_HIGHDPI
)
