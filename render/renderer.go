// Package render draws the board, buttons and status line onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-lotto/components"
	"github.com/lixenwraith/lucky-lotto/constants"
	"github.com/lixenwraith/lucky-lotto/lottery"
)

// Button identifies a clickable control
type Button int

const (
	ButtonNone Button = iota
	ButtonPick
	ButtonSort
)

func (b Button) String() string {
	switch b {
	case ButtonPick:
		return "Pick"
	case ButtonSort:
		return "Sort"
	default:
		return "None"
	}
}

var (
	guideStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	buttonStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	mutedStyle  = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
)

// Frame is everything one draw needs
type Frame struct {
	Balls       []components.Ball
	Destination int // Top row of landed balls
	Chosen      []int
	Muted       bool
}

// Renderer lays out and draws frames for a fixed screen size
type Renderer struct {
	width, height int
	pickX, sortX  int
}

// NewRenderer creates a renderer for a width x height screen
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{}
	r.Resize(width, height)
	return r
}

// Resize updates the screen size
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.pickX = 1
	r.sortX = r.pickX + len(constants.PickLabel) + 2
}

// PlayArea returns the size available to falling balls
func (r *Renderer) PlayArea() (int, int) {
	return r.width, max(r.height-constants.ReservedRows, 1)
}

// Draw renders f and shows the screen
func (r *Renderer) Draw(screen tcell.Screen, f Frame) {
	screen.Clear()

	_, playH := r.PlayArea()

	// Guide sits under the landed balls
	if len(f.Balls) > 0 {
		floor := f.Destination + f.Balls[0].Sprite.Height()
		if floor >= 0 && floor < playH {
			for x := 0; x < r.width; x++ {
				screen.SetContent(x, floor, constants.GuideRune, nil, guideStyle)
			}
		}
	}

	for i := range f.Balls {
		r.drawBall(screen, &f.Balls[i], playH)
	}

	statusY := r.height - constants.StatusRowOffset
	status := "Press p to pick, s to sort, q to quit"
	if len(f.Chosen) > 0 {
		status = "Numbers " + lottery.FormatNumbers(f.Chosen)
	}
	drawText(screen, 1, statusY, status, statusStyle)
	if f.Muted {
		drawText(screen, r.width-len("muted")-1, statusY, "muted", mutedStyle)
	}

	buttonY := r.height - constants.ButtonRowOffset
	drawText(screen, r.pickX, buttonY, constants.PickLabel, buttonStyle)
	drawText(screen, r.sortX, buttonY, constants.SortLabel, buttonStyle)

	screen.Show()
}

// drawBall draws a ball sprite clipped to the play area
func (r *Renderer) drawBall(screen tcell.Screen, b *components.Ball, playH int) {
	for dy, row := range b.Sprite.Rows {
		y := b.Y + dy
		if y < 0 || y >= playH {
			continue
		}
		dx := 0
		for _, ch := range row {
			x := b.X + dx
			if x >= 0 && x < r.width {
				screen.SetContent(x, y, ch, nil, b.Sprite.Style)
			}
			dx++
		}
	}
}

// HitTest returns the button under screen cell (x, y)
func (r *Renderer) HitTest(x, y int) Button {
	if y != r.height-constants.ButtonRowOffset {
		return ButtonNone
	}
	switch {
	case x >= r.pickX && x < r.pickX+len(constants.PickLabel):
		return ButtonPick
	case x >= r.sortX && x < r.sortX+len(constants.SortLabel):
		return ButtonSort
	}
	return ButtonNone
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
