package desktop

import (
	"fmt"
	"image/color"
	_ "image/png" // register the PNG decoder for asset files
	"math"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/birds-planes/internal/game"
)

var (
	colorBlue     = color.RGBA{0, 100, 255, 255}
	colorGray     = color.RGBA{128, 128, 128, 255}
	colorRed      = color.RGBA{255, 50, 50, 255}
	colorDarkGray = color.RGBA{64, 64, 64, 255}
	colorCockpit  = color.RGBA{50, 50, 80, 255}
	colorYellow   = color.RGBA{255, 220, 0, 255}
	colorOrange   = color.RGBA{255, 140, 0, 255}
	colorBlack    = color.RGBA{0, 0, 0, 255}
	colorWhite    = color.RGBA{255, 255, 255, 255}
	skyTop        = color.RGBA{135, 206, 250, 255}
	skyBottom     = color.RGBA{200, 230, 255, 255}
)

// planeColors are the placeholder body colors per size class.
var planeColors = [...]color.RGBA{
	game.SizeSmall: colorBlue,
	game.SizeMed:   colorGray,
	game.SizeLarge: colorRed,
}

type imageKey struct {
	size game.SizeClass
	dir  int
}

// PlaneImages loads plane images from the asset directory on first use and
// keeps one per (size class, direction). A missing or unreadable file gets
// a drawn placeholder instead.
type PlaneImages struct {
	dir    string
	logger *log.Logger
	images map[imageKey]*ebiten.Image
}

// NewPlaneImages creates an empty cache reading from assetDir.
func NewPlaneImages(assetDir string, logger *log.Logger) *PlaneImages {
	return &PlaneImages{
		dir:    assetDir,
		logger: logger,
		images: make(map[imageKey]*ebiten.Image),
	}
}

// Plane returns the image for a plane class flying in dir, scaled to the
// class size. Source images face right and are mirrored for dir < 0.
func (p *PlaneImages) Plane(size game.SizeClass, dir int) *ebiten.Image {
	k := imageKey{size: size, dir: dir}
	if img, ok := p.images[k]; ok {
		return img
	}

	w, h := size.Dimensions()
	src, err := loadImage(filepath.Join(p.dir, fmt.Sprintf("plane_%s.png", size)))
	if err != nil {
		p.logger.Warn("plane image unavailable, drawing placeholder", "size", size, "error", err)
		src = placeholderPlane(size)
	}

	img := fit(src, int(w), int(h), dir < 0)
	p.images[k] = img
	return img
}

// Len returns the number of cached images.
func (p *PlaneImages) Len() int { return len(p.images) }

// loadBirdFrames loads bird_1.png to bird_3.png, drawing a placeholder for
// any frame that fails.
func loadBirdFrames(assetDir string, size int, logger *log.Logger) [game.BirdFrames]*ebiten.Image {
	var frames [game.BirdFrames]*ebiten.Image
	for i := range frames {
		src, err := loadImage(filepath.Join(assetDir, fmt.Sprintf("bird_%d.png", i+1)))
		if err != nil {
			logger.Warn("bird image unavailable, drawing placeholder", "frame", i+1, "error", err)
			src = placeholderBird(i + 1)
		}
		frames[i] = fit(src, size, size, false)
	}
	return frames
}

// loadBackground loads background.png or draws the sky gradient.
func loadBackground(assetDir string, w, h int, logger *log.Logger) *ebiten.Image {
	src, err := loadImage(filepath.Join(assetDir, "background.png"))
	if err != nil {
		logger.Warn("background image unavailable, drawing gradient", "error", err)
		return gradient(w, h, skyTop, skyBottom)
	}
	return fit(src, w, h, false)
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("desktop: cannot load %s: %w", path, err)
	}
	return img, nil
}

// fit scales src to w×h, optionally mirrored horizontally.
func fit(src *ebiten.Image, w, h int, flip bool) *ebiten.Image {
	b := src.Bounds()
	dst := ebiten.NewImage(w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// placeholderPlane draws a fuselage, a wing and a cockpit facing right.
func placeholderPlane(size game.SizeClass) *ebiten.Image {
	fw, fh := size.Dimensions()
	w, h := float32(fw), float32(fh)
	img := ebiten.NewImage(int(fw), int(fh))

	fillEllipse(img, w/2, h/2, w/2, h/4, planeColors[size])
	fillPolygon(img, []float32{w / 3, h / 2, w / 2, 0, w / 2, h}, colorDarkGray)
	fillEllipse(img, w-w/4+w/10, h/2, w/10, h/6, colorCockpit)
	return img
}

// placeholderBird draws one 40×40 bird frame; the wing drops a little per frame.
func placeholderBird(frame int) *ebiten.Image {
	img := ebiten.NewImage(40, 40)
	vector.DrawFilledCircle(img, 20, 20, 15, colorYellow, true)
	vector.DrawFilledCircle(img, 20, float32(15+frame*2), 8, colorOrange, true)
	vector.DrawFilledCircle(img, 28, 15, 3, colorBlack, true)
	fillPolygon(img, []float32{32, 20, 40, 18, 40, 22}, colorOrange)
	return img
}

// gradient draws a vertical gradient from top to bottom.
func gradient(w, h int, top, bottom color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := range h {
		t := float64(y) / float64(h)
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 1, c, false)
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// fillEllipse fills an axis-aligned ellipse centered at (cx, cy).
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, c color.Color) {
	const segments = 32
	pts := make([]float32, 0, 2*segments)
	for i := range segments {
		a := 2 * math.Pi * float64(i) / segments
		pts = append(pts, cx+rx*float32(math.Cos(a)), cy+ry*float32(math.Sin(a)))
	}
	fillPolygon(dst, pts, c)
}

// fillPolygon fills the closed polygon given as x0, y0, x1, y1, ...
func fillPolygon(dst *ebiten.Image, xy []float32, c color.Color) {
	var path vector.Path
	path.MoveTo(xy[0], xy[1])
	for i := 2; i+1 < len(xy); i += 2 {
		path.LineTo(xy[i], xy[i+1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

var white *ebiten.Image

// whitePixel is the source texture for solid fills.
func whitePixel() *ebiten.Image {
	if white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(colorWhite)
		white = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return white
}
