package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/nurbs-editor/internal/editor"
)

// surfaceKeys binds keys to surface editor actions.
var surfaceKeys = map[sdl.Scancode]editor.Action{
	sdl.SCANCODE_1:        editor.ActionShadingNone,
	sdl.SCANCODE_2:        editor.ActionShadingGouraud,
	sdl.SCANCODE_3:        editor.ActionShadingPhong,
	sdl.SCANCODE_4:        editor.ActionShadingBlinnPhong,
	sdl.SCANCODE_S:        editor.ActionToggleSnapping,
	sdl.SCANCODE_W:        editor.ActionToggleWireframe,
	sdl.SCANCODE_F:        editor.ActionToggleFill,
	sdl.SCANCODE_P:        editor.ActionTogglePoints,
	sdl.SCANCODE_N:        editor.ActionToggleNet,
	sdl.SCANCODE_B:        editor.ActionToggleBounds,
	sdl.SCANCODE_V:        editor.ActionToggleNormals,
	sdl.SCANCODE_L:        editor.ActionToggleLight,
	sdl.SCANCODE_Q:        editor.ActionRollLeft,
	sdl.SCANCODE_E:        editor.ActionRollRight,
	sdl.SCANCODE_EQUALS:   editor.ActionFinerMesh,
	sdl.SCANCODE_KP_PLUS:  editor.ActionFinerMesh,
	sdl.SCANCODE_MINUS:    editor.ActionCoarserMesh,
	sdl.SCANCODE_KP_MINUS: editor.ActionCoarserMesh,
}

const (
	keyQuit   = sdl.SCANCODE_ESCAPE
	keySave   = sdl.SCANCODE_F2
	keyReload = sdl.SCANCODE_F5
	keyShot   = sdl.SCANCODE_F12
)
