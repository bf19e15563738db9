// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hud draws a small diagnostics panel over the camera background.
//
// The panel shows the smoothed frame rate, whether a camera texture is
// bound and how many GL errors the background pass has seen. Text is
// rasterized on the CPU with a fixed-size bitmap font and uploaded only when
// it changes.
package hud

import (
	"image"
	"image/color"
	"image/draw"
	"slices"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/geom"
	"golang.org/x/mobile/gl"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/arcam/background"
	"github.com/gogpu/arcam/loop"
)

// Panel layout in pixels.
const (
	columns = 26
	rows    = 3
	padding = 3
	margin  = 4
)

// smoothing is the weight kept from the previous FPS estimate.
const smoothing = 0.9

var (
	panelColor = color.RGBA{A: 0xa0}
	textColor  = colornames.White
)

// StatsFunc reports the background drawer state for the current frame.
type StatsFunc func() background.Stats

// Option configures an Overlay.
type Option func(*Overlay)

// WithLanguage selects the locale used to format numbers.
func WithLanguage(tag language.Tag) Option {
	return func(o *Overlay) {
		o.printer = message.NewPrinter(tag)
	}
}

// Overlay is a loop.Layer drawn after the background. All methods run on
// the render goroutine.
type Overlay struct {
	glctx   gl.Context
	stats   StatsFunc
	printer *message.Printer
	face    font.Face

	images *glutil.Images
	img    *glutil.Image
	sz     size.Event

	fps   float64
	lines []string
}

// New returns an overlay reading stats every frame. GL objects are created
// on the first frame that has a known window size.
func New(glctx gl.Context, stats StatsFunc, opts ...Option) *Overlay {
	o := &Overlay{
		glctx:   glctx,
		stats:   stats,
		printer: message.NewPrinter(language.English),
		face:    basicfont.Face7x13,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Resize records the window size the panel is laid out against.
func (o *Overlay) Resize(sz size.Event) {
	o.sz = sz
}

// FPS returns the smoothed frame rate.
func (o *Overlay) FPS() float64 { return o.fps }

// DrawLayer updates the panel and draws it in the top-left corner.
func (o *Overlay) DrawLayer(f loop.Frame) {
	o.fps = smoothFPS(o.fps, f.Delta)
	if o.sz.WidthPx == 0 || o.sz.HeightPx == 0 || o.glctx == nil {
		return
	}

	var s background.Stats
	if o.stats != nil {
		s = o.stats()
	}
	lines := formatLines(o.printer, o.fps, s)

	if o.img == nil {
		o.images = glutil.NewImages(o.glctx)
		w, h := panelSize(o.face)
		o.img = o.images.NewImage(w, h)
	}
	if !slices.Equal(lines, o.lines) {
		renderPanel(o.img.RGBA, o.face, lines)
		o.img.Upload()
		o.lines = lines
	}

	b := o.img.RGBA.Bounds()
	ppt := o.sz.PixelsPerPt
	if ppt <= 0 {
		ppt = 1
	}
	x0 := geom.Pt(margin / ppt)
	y0 := geom.Pt(margin / ppt)
	x1 := x0 + geom.Pt(float32(b.Dx())/ppt)
	y1 := y0 + geom.Pt(float32(b.Dy())/ppt)

	// The background wrote the far plane; the panel must not be depth tested
	// against it.
	g := o.glctx
	g.Disable(gl.DEPTH_TEST)
	g.Enable(gl.BLEND)
	g.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	o.img.Draw(o.sz,
		geom.Point{X: x0, Y: y0},
		geom.Point{X: x1, Y: y0},
		geom.Point{X: x0, Y: y1},
		b)
	g.Disable(gl.BLEND)
	g.Enable(gl.DEPTH_TEST)
}

// Release frees the panel texture and shader.
func (o *Overlay) Release() {
	if o.img != nil {
		o.img.Release()
		o.img = nil
	}
	if o.images != nil {
		o.images.Release()
		o.images = nil
	}
	o.lines = nil
}

func smoothFPS(prev, delta float64) float64 {
	if delta <= 0 {
		return prev
	}
	inst := 1 / delta
	if prev == 0 {
		return inst
	}
	return prev*smoothing + inst*(1-smoothing)
}

func formatLines(p *message.Printer, fps float64, s background.Stats) []string {
	cam := "camera: waiting"
	if s.Bound {
		cam = p.Sprintf("camera: texture %d", uint32(s.Handle))
	}
	return []string{
		p.Sprintf("%.1f fps", fps),
		cam,
		p.Sprintf("draws %d  gl errors %d", s.Draws, s.GLErrors),
	}
}

func panelSize(face font.Face) (w, h int) {
	m := face.Metrics()
	adv, _ := face.GlyphAdvance('M')
	w = adv.Ceil()*columns + 2*padding
	h = m.Height.Ceil()*rows + 2*padding
	return w, h
}

// renderPanel clears dst to the panel color and draws one line per row.
// Lines longer than the panel are clipped by dst.
func renderPanel(dst *image.RGBA, face font.Face, lines []string) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(panelColor), image.Point{}, draw.Src)
	m := face.Metrics()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	for i, line := range lines {
		if i >= rows {
			break
		}
		d.Dot = fixed.Point26_6{
			X: fixed.I(padding),
			Y: fixed.I(padding) + m.Height*fixed.Int26_6(i) + m.Ascent,
		}
		d.DrawString(line)
	}
}
