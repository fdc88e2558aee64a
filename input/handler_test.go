package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-lotto/render"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionPick, "Pick"},
		{ActionSort, "Sort"},
		{ActionMute, "Mute"},
		{ActionResize, "Resize"},
		{ActionQuit, "Quit"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestHandleKeys(t *testing.T) {
	h := NewHandler(render.NewRenderer(80, 24))

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPick},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPick},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionPick},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionSort},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionMute},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("HandleEvent(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestHandleResize(t *testing.T) {
	h := NewHandler(render.NewRenderer(80, 24))
	if got := h.HandleEvent(tcell.NewEventResize(100, 30)); got != ActionResize {
		t.Errorf("HandleEvent(resize) = %v, want Resize", got)
	}
}

// TestHandleMouseClick verifies buttons fire once per press
func TestHandleMouseClick(t *testing.T) {
	h := NewHandler(render.NewRenderer(80, 24))

	press := tcell.NewEventMouse(3, 23, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(3, 23, tcell.ButtonNone, tcell.ModNone)

	if got := h.HandleEvent(press); got != ActionPick {
		t.Errorf("Press on Pick = %v, want Pick", got)
	}
	if got := h.HandleEvent(press); got != ActionNone {
		t.Errorf("Held press = %v, want None", got)
	}
	h.HandleEvent(release)

	sortPress := tcell.NewEventMouse(12, 23, tcell.Button1, tcell.ModNone)
	if got := h.HandleEvent(sortPress); got != ActionSort {
		t.Errorf("Press on Sort = %v, want Sort", got)
	}
	h.HandleEvent(release)

	miss := tcell.NewEventMouse(40, 5, tcell.Button1, tcell.ModNone)
	if got := h.HandleEvent(miss); got != ActionNone {
		t.Errorf("Press on play area = %v, want None", got)
	}
}
