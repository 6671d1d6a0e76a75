package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// TerminalScene provides a simple ASCII-based view of the simulation for
// terminals. Each frame it composes the live visuals into a rune buffer
// and redraws the whole viewport with ANSI clear codes.
type TerminalScene struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
	out       io.Writer

	visuals   []*terminalVisual
	markerPos physics.Vector2D
	hasMarker bool
}

// NewTerminalScene creates a new terminal scene with the specified
// dimensions. scale is the width of one character cell in world units.
func NewTerminalScene(width, height int, scale float64) *TerminalScene {
	return NewTerminalSceneWithOutput(width, height, scale, os.Stdout)
}

// NewTerminalSceneWithOutput creates a terminal scene writing frames to the
// given writer instead of stdout.
func NewTerminalSceneWithOutput(width, height int, scale float64, out io.Writer) *TerminalScene {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	s := &TerminalScene{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
		out:    out,
	}
	s.clear()
	return s
}

// SetCenter sets the world position shown at the middle of the view.
func (s *TerminalScene) SetCenter(pos physics.Vector2D) {
	s.centerPos = pos
}

// worldToScreen converts world coordinates to character cell coordinates.
// World +Y points up, so the row axis is flipped.
func (s *TerminalScene) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-s.centerPos.X)/s.scale + float64(s.width)/2)
	screenY := int(float64(s.height)/2 - (pos.Y-s.centerPos.Y)/s.scale)
	return screenX, screenY
}

// ScreenToWorld implements entity.Scene. It is the exact inverse of the
// cell mapping used when drawing.
func (s *TerminalScene) ScreenToWorld(screen physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: (screen.X-float64(s.width)/2)*s.scale + s.centerPos.X,
		Y: (float64(s.height)/2-screen.Y)*s.scale + s.centerPos.Y,
	}
}

// CreateShipVisual implements entity.Scene.
func (s *TerminalScene) CreateShipVisual() entity.Visual {
	return s.addVisual('S')
}

// CreateAircraftVisual implements entity.Scene.
func (s *TerminalScene) CreateAircraftVisual() entity.Visual {
	return s.addVisual('A')
}

// PlaceGoalMarker implements entity.Scene. Successive calls move the
// marker to the latest target.
func (s *TerminalScene) PlaceGoalMarker(position physics.Vector2D) {
	s.markerPos = position
	s.hasMarker = true
}

func (s *TerminalScene) addVisual(symbol rune) *terminalVisual {
	v := &terminalVisual{symbol: symbol}
	s.visuals = append(s.visuals, v)
	return v
}

// clear resets the buffer to spaces.
func (s *TerminalScene) clear() {
	for y := range s.buffer {
		for x := range s.buffer[y] {
			s.buffer[y][x] = ' '
		}
	}
}

// plot writes a symbol at the cell for a world position, if it is within
// the viewport.
func (s *TerminalScene) plot(pos physics.Vector2D, symbol rune) {
	x, y := s.worldToScreen(pos)
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.buffer[y][x] = symbol
	}
}

// Present composes the current frame and writes it to the terminal.
// Destroyed visuals are dropped from the scene here.
func (s *TerminalScene) Present() {
	s.clear()

	if s.hasMarker {
		s.plot(s.markerPos, '+')
	}

	live := s.visuals[:0]
	for _, v := range s.visuals {
		if v.destroyed {
			continue
		}
		live = append(live, v)
		if v.placed {
			s.plot(v.position, v.symbol)
		}
	}
	s.visuals = live

	// Clear terminal
	fmt.Fprint(s.out, "\033[H\033[2J")

	border := "+" + strings.Repeat("-", s.width) + "+"
	fmt.Fprintln(s.out, border)
	for y := range s.buffer {
		fmt.Fprintln(s.out, "|"+string(s.buffer[y])+"|")
	}
	fmt.Fprintln(s.out, border)
}

// terminalVisual is a single glyph positioned in world space.
type terminalVisual struct {
	symbol    rune
	position  physics.Vector2D
	placed    bool
	destroyed bool
}

// Place implements entity.Visual. The terminal view has no way to show
// heading, so the angle is ignored.
func (v *terminalVisual) Place(position physics.Vector2D, _ float64) {
	v.position = position
	v.placed = true
}

// Destroy implements entity.Visual.
func (v *terminalVisual) Destroy() {
	v.destroyed = true
	v.placed = false
}
