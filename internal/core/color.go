package core

// Color is a palette role for a screen cell. Frontends decide how each role
// looks (ANSI 256 colors in the terminal, RGBA on the desktop).
type Color uint8

// Palette roles used by the game screens.
const (
	ColorDefault Color = iota
	ColorFinish        // finish zone band
	ColorSafe          // safe zone band
	ColorLane          // lane separators
	ColorPlaneSmall
	ColorPlaneMed
	ColorPlaneLarge
	ColorBird
	ColorHUD
	ColorTitle
	ColorAlert  // lives lost, game over
	ColorRecord // new high score
	ColorDim
)

// PlaneColor returns the palette role for a plane size index
// (0 small, 1 med, 2 large).
func PlaneColor(sizeIndex int) Color {
	switch sizeIndex {
	case 0:
		return ColorPlaneSmall
	case 1:
		return ColorPlaneMed
	default:
		return ColorPlaneLarge
	}
}
