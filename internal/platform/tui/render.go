package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/birds-planes/internal/core"
	"github.com/vovakirdan/birds-planes/internal/game"
)

// colorStyles maps palette roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorFinish:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorSafe:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorLane:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorPlaneSmall: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorPlaneMed:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorPlaneLarge: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBird:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorHUD:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorAlert:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorRecord:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer draws a game into a character screen, scaling world pixels to
// cells.
type Renderer struct {
	sprites *SpriteCache
	sx, sy  float64 // cells per pixel
}

// NewRenderer creates a renderer with its own sprite cache.
func NewRenderer() *Renderer {
	return &Renderer{sprites: NewSpriteCache(0)}
}

// Sprites exposes the plane sprite cache.
func (r *Renderer) Sprites() *SpriteCache { return r.sprites }

// Draw renders the whole frame for the game's current state.
func (r *Renderer) Draw(dst *core.Screen, g *game.Game) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	layout := g.Layout()
	r.sx = float64(dst.Width()) / layout.Width
	r.sy = float64(dst.Height()) / layout.Height
	r.sprites.SetScale(r.sx)

	st := g.Status()
	switch st.State {
	case game.StateMenu:
		r.drawWorld(dst, g, false)
		r.drawMenu(dst, st)
	case game.StatePlaying:
		r.drawWorld(dst, g, true)
		r.drawHUD(dst, st)
	case game.StatePaused:
		r.drawWorld(dst, g, true)
		r.drawHUD(dst, st)
		r.drawPanel(dst, []line{
			{"PAUSED", core.ColorTitle},
			{"", core.ColorDefault},
			{"P to resume  Esc for menu", core.ColorDim},
		})
	case game.StateGameOver:
		r.drawWorld(dst, g, true)
		r.drawGameOver(dst, st)
	}
}

func (r *Renderer) col(x float64) int { return int(math.Floor(x * r.sx)) }
func (r *Renderer) row(y float64) int { return int(math.Floor(y * r.sy)) }

// band fills the rows covered by [top, bottom) world pixels.
func (r *Renderer) band(dst *core.Screen, top, bottom float64, fill rune, c core.Color) {
	y0, y1 := r.row(top), r.row(bottom)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.DrawRect(core.NewRect(0, y0, dst.Width(), y1-y0), fill, c)
}

func (r *Renderer) drawWorld(dst *core.Screen, g *game.Game, withBird bool) {
	layout := g.Layout()

	r.band(dst, layout.FinishY, layout.FinishLine(), '░', core.ColorFinish)
	dst.DrawTextCentered(r.row(layout.FinishY+layout.FinishHeight/2), " FINISH ", core.ColorFinish)

	safe := layout.SafeZone()
	r.band(dst, safe.Top(), safe.Bottom(), '·', core.ColorSafe)

	lanes := g.Lanes()
	for i, lane := range lanes {
		if i == 0 {
			continue
		}
		y := r.row(lane.Bounds().Top())
		for x := 0; x < dst.Width(); x += 2 {
			dst.Set(x, y, '-', core.ColorLane)
		}
	}

	for _, lane := range lanes {
		for _, p := range lane.Planes() {
			sprite := r.sprites.Plane(p.Size, p.Dir)
			_, cy := p.Box.Center()
			x := r.col(p.Box.X)
			y := r.row(cy)
			for i, ch := range sprite.Runes {
				dst.Set(x+i, y, ch, sprite.Color)
			}
		}
	}

	if withBird {
		b := g.Bird()
		cx, cy := b.Box.Center()
		glyph := birdFrames[b.Frame()]
		dst.DrawText(r.col(cx)-len(glyph)/2, r.row(cy), glyph, core.ColorBird)
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, st game.Status) {
	hearts := strings.Repeat("♥", st.Lives)
	sound := "on"
	if !st.SoundEnabled {
		sound = "off"
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorHUD)
	left := fmt.Sprintf("Score: %d  ", st.Score)
	dst.DrawText(1+len(left), 0, hearts, core.ColorAlert)

	right := fmt.Sprintf("Record: %d  Sound: %s  x%.2f", st.HighScore, sound, st.Multiplier)
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right, core.ColorDim)
}

func (r *Renderer) drawMenu(dst *core.Screen, st game.Status) {
	r.drawPanel(dst, []line{
		{"BIRDS & PLANES", core.ColorTitle},
		{"", core.ColorDefault},
		{"Guide the bird across the lanes", core.ColorHUD},
		{"and dodge the planes.", core.ColorHUD},
		{"", core.ColorDefault},
		{fmt.Sprintf("Record: %d", st.HighScore), core.ColorRecord},
		{"", core.ColorDefault},
		{"Space to start  Q to quit", core.ColorDim},
	})
}

func (r *Renderer) drawGameOver(dst *core.Screen, st game.Status) {
	record := line{fmt.Sprintf("Record: %d", st.HighScore), core.ColorDim}
	if st.NewRecord {
		record = line{"NEW RECORD!", core.ColorRecord}
	}
	r.drawPanel(dst, []line{
		{"GAME OVER", core.ColorAlert},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", st.Score), core.ColorHUD},
		record,
		{"", core.ColorDefault},
		{"R to restart  Esc for menu", core.ColorDim},
	})
}

type line struct {
	text  string
	color core.Color
}

// drawPanel draws a bordered box in the middle of the screen.
func (r *Renderer) drawPanel(dst *core.Screen, lines []line) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.text)))
	}
	w += 4
	h := len(lines) + 2

	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorLane)

	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l.text, l.color)
	}
}
