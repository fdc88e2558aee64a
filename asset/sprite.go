// Package asset provides the numbered ball sprites drawn by the renderer
package asset

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrSpriteNotFound is returned by Lookup for an unregistered name
var ErrSpriteNotFound = errors.New("sprite not found")

// Sprite dimensions, every ball shares them
const (
	SpriteWidth  = 4
	SpriteHeight = 3
)

// Sprite is a fixed-size block of cells drawn with a single style
type Sprite struct {
	Rows  []string
	Style tcell.Style
}

// Width returns the widest row in cells
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

// Height returns the row count
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// SpriteName returns the registry name of ball n
func SpriteName(n int) string {
	return fmt.Sprintf("num%d", n)
}

// Registry maps sprite names to sprites
type Registry struct {
	mu      sync.RWMutex
	sprites map[string]*Sprite
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{sprites: make(map[string]*Sprite)}
}

// Register adds or replaces a sprite
func (r *Registry) Register(name string, s *Sprite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sprites[name] = s
}

// Lookup returns the named sprite
func (r *Registry) Lookup(name string) (*Sprite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sprites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpriteNotFound, name)
	}
	return s, nil
}

// Len returns the number of registered sprites
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sprites)
}

// NewBallRegistry renders and registers ball sprites 1..pool
func NewBallRegistry(pool int) *Registry {
	r := NewRegistry()
	for n := 1; n <= pool; n++ {
		r.Register(SpriteName(n), RenderBall(n))
		log.Printf("Loaded sprite for %s", SpriteName(n))
	}
	return r
}

// RenderBall draws the boxed two-digit face of ball n
func RenderBall(n int) *Sprite {
	return &Sprite{
		Rows: []string{
			"╭──╮",
			fmt.Sprintf("│%02d│", n),
			"╰──╯",
		},
		Style: tcell.StyleDefault.Foreground(BallColor(n)).Bold(true),
	}
}

// BallColor picks the colour band for ball n by decade
func BallColor(n int) tcell.Color {
	switch {
	case n < 10:
		return tcell.ColorWhite
	case n < 20:
		return tcell.ColorBlue
	case n < 30:
		return tcell.ColorFuchsia
	case n < 40:
		return tcell.ColorGreen
	case n < 50:
		return tcell.ColorYellow
	default:
		return tcell.ColorRed
	}
}
