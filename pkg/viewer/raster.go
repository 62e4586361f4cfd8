package viewer

import (
	"image"
	"image/color"
	"math"
)

// nearPlane is the closest depth the projection accepts
const nearPlane = 0.01

// vertex is a projected point: screen x, y and view depth z
type vertex struct {
	x, y, z float64
}

// frame is a color image with a matching depth buffer
type frame struct {
	img     *image.RGBA
	zbuffer []float64
}

func newFrame(width, height int, background color.RGBA) *frame {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = background.A
	}
	return &frame{img: img, zbuffer: zbuffer}
}

// fillTriangle fills a triangle with depth testing using scanlines
func (f *frame) fillTriangle(a, b, c vertex, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}
	if c.y == a.y {
		return
	}

	bounds := f.img.Bounds()
	yStart := int(math.Max(0, math.Ceil(a.y)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), c.y))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// Long edge a-c always spans the scanline
		left := lerpVertex(a, c, (fy-a.y)/(c.y-a.y))

		// Short edge: a-b above b, b-c below
		var right vertex
		if fy < b.y && b.y != a.y {
			right = lerpVertex(a, b, (fy-a.y)/(b.y-a.y))
		} else if c.y != b.y {
			right = lerpVertex(b, c, (fy-b.y)/(c.y-b.y))
		} else {
			right = b
		}

		if left.x > right.x {
			left, right = right, left
		}
		f.span(y, left, right, col)
	}
}

// span draws one depth-tested horizontal run
func (f *frame) span(y int, left, right vertex, col color.RGBA) {
	width := f.img.Bounds().Max.X
	xStart := int(math.Max(0, math.Ceil(left.x)))
	xEnd := int(math.Min(float64(width-1), right.x))

	for x := xStart; x <= xEnd; x++ {
		t := 0.0
		if right.x != left.x {
			t = (float64(x) - left.x) / (right.x - left.x)
		}
		z := left.z + t*(right.z-left.z)

		// Depth test - draw if closer (smaller z)
		idx := y*width + x
		if z < f.zbuffer[idx] {
			f.zbuffer[idx] = z
			f.img.SetRGBA(x, y, col)
		}
	}
}

func lerpVertex(a, b vertex, t float64) vertex {
	return vertex{
		x: a.x + t*(b.x-a.x),
		y: a.y + t*(b.y-a.y),
		z: a.z + t*(b.z-a.z),
	}
}

// drawLine draws a line using Bresenham's algorithm, ignoring depth
func (f *frame) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	bounds := f.img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			f.img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
