package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/portfoliotown/internal/domain/entity"
)

// AvatarStyle holds the colors of a character
type AvatarStyle struct {
	Body   color.RGBA
	Accent color.RGBA
}

// DrawAvatar draws a character centered on pos. size is the drawn height
// and scale multiplies it (1 for normal, >1 while pulsing).
func DrawAvatar(dst *ebiten.Image, a *entity.Avatar, style AvatarStyle, size, scale float64) {
	s := size * scale
	x, y := a.Position.X, a.Position.Y

	// Walk bob over the 6-frame cycle
	bob := 0.0
	if a.IsWalking() {
		bob = math.Sin(float64(a.Frame)/float64(entity.WalkFrames)*2*math.Pi) * s * 0.04
	}

	bodyW, bodyH := s*0.5, s*0.55
	vector.FillRect(dst, float32(x-bodyW/2), float32(y-bodyH/2+bob), float32(bodyW), float32(bodyH), style.Body, true)

	headR := s * 0.2
	headY := y - bodyH/2 - headR*0.8 + bob
	vector.DrawFilledCircle(dst, float32(x), float32(headY), float32(headR), style.Accent, true)

	// Eye shows facing
	ex, ey := x, headY
	switch a.Facing {
	case entity.FacingLeft:
		ex -= headR * 0.5
	case entity.FacingRight:
		ex += headR * 0.5
	case entity.FacingUp:
		ey -= headR * 0.5
	case entity.FacingDown:
		ey += headR * 0.3
	}
	if a.Facing != entity.FacingUp {
		vector.DrawFilledCircle(dst, float32(ex), float32(ey), float32(headR*0.18), color.RGBA{A: 255}, true)
	}
}

// DrawBox draws a filled rectangle centered on center
func DrawBox(dst *ebiten.Image, center entity.Vec2, size entity.Size, fill color.RGBA) {
	vector.FillRect(dst,
		float32(center.X-size.Width/2), float32(center.Y-size.Height/2),
		float32(size.Width), float32(size.Height), fill, false)
}

// OutlineBox strokes a rectangle centered on center
func OutlineBox(dst *ebiten.Image, center entity.Vec2, size entity.Size, width float32, clr color.RGBA) {
	vector.StrokeRect(dst,
		float32(center.X-size.Width/2), float32(center.Y-size.Height/2),
		float32(size.Width), float32(size.Height), width, clr, false)
}

// Lighten mixes c toward white by t in [0,1]
func Lighten(c color.RGBA, t float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
