// Package input maps terminal events to game actions
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-lotto/render"
)

// Action is what the main loop should do in response to an event
type Action int

const (
	ActionNone Action = iota
	ActionPick
	ActionSort
	ActionMute
	ActionResize
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionPick:
		return "Pick"
	case ActionSort:
		return "Sort"
	case ActionMute:
		return "Mute"
	case ActionResize:
		return "Resize"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// HitTester resolves screen cells to buttons
type HitTester interface {
	HitTest(x, y int) render.Button
}

// Handler translates key, mouse and resize events
type Handler struct {
	buttons   HitTester
	mouseHeld bool
}

// NewHandler creates a handler using buttons for mouse hit tests
func NewHandler(buttons HitTester) *Handler {
	return &Handler{buttons: buttons}
}

// HandleEvent returns the action for ev
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		return h.handleMouse(ev)
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (h *Handler) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionPick
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P', ' ':
			return ActionPick
		case 's', 'S':
			return ActionSort
		case 'm', 'M':
			return ActionMute
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// handleMouse fires on the press edge of the primary button only
func (h *Handler) handleMouse(ev *tcell.EventMouse) Action {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if !pressed {
		h.mouseHeld = false
		return ActionNone
	}
	if h.mouseHeld {
		return ActionNone
	}
	h.mouseHeld = true

	x, y := ev.Position()
	switch h.buttons.HitTest(x, y) {
	case render.ButtonPick:
		return ActionPick
	case render.ButtonSort:
		return ActionSort
	}
	return ActionNone
}
