package main

import (
	"image"
	"image/color"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plotter is the drawing surface the controller talks to.
type Plotter interface {
	// Clear removes every point.
	Clear()
	// Scatter replaces the point cloud. Colors follow the selection's density.
	Scatter(sel Selection, sizes []float64)
	// SetSizes changes marker sizes for the current points only.
	SetSizes(sizes []float64)
	// Refresh asks for a redraw.
	Refresh()
}

// Camera orients the scene with a unit quaternion and projects orthographically.
type Camera struct {
	orient quat.Number
	zoom   float64
}

// NewCamera returns a camera looking down on the scene from 30 degrees of
// elevation and -60 degrees of azimuth, with z pointing up on screen.
func NewCamera() *Camera {
	c := &Camera{orient: quat.Number{Real: 1}, zoom: 1}
	c.Rotate(r3.Vec{Z: 1}, -60*math.Pi/180)
	c.Rotate(r3.Vec{X: 1}, (30-90)*math.Pi/180)
	return c
}

// axisAngle is the unit quaternion for a rotation of angle about axis.
func axisAngle(axis r3.Vec, angle float64) quat.Number {
	axis = r3.Unit(axis)
	s := math.Sin(angle / 2)
	return quat.Number{Real: math.Cos(angle / 2), Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

// Rotate applies a further rotation about a view-space axis.
func (c *Camera) Rotate(axis r3.Vec, angle float64) {
	q := quat.Mul(axisAngle(axis, angle), c.orient)
	c.orient = quat.Scale(1/quat.Abs(q), q)
}

// Zoom multiplies the magnification by f, keeping it in [0.1, 20].
func (c *Camera) Zoom(f float64) {
	c.zoom = math.Max(0.1, math.Min(20, c.zoom*f))
}

// View rotates p into view space. x is right, y is up and z points at the viewer.
func (c *Camera) View(p r3.Vec) r3.Vec {
	pp := quat.Mul(quat.Mul(c.orient, quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}), quat.Conj(c.orient))
	return r3.Vec{X: pp.Imag, Y: pp.Jmag, Z: pp.Kmag}
}

// Scene is a 3D scatter plot that rasterizes itself through a Camera.
type Scene struct {
	mu sync.Mutex

	points []r3.Vec
	colors []color.NRGBA
	sizes  []float64

	lo, hi float64 // axis bounds of the domain box
	Camera *Camera

	// OnRefresh is called by Refresh. The GUI hooks its raster here.
	OnRefresh func()
}

// NewScene returns an empty scene whose domain box spans [lo, hi] on each axis.
func NewScene(lo, hi float64) *Scene {
	return &Scene{lo: lo, hi: hi, Camera: NewCamera()}
}

func (s *Scene) Clear() {
	s.mu.Lock()
	s.points, s.colors, s.sizes = nil, nil, nil
	s.mu.Unlock()
}

func (s *Scene) Scatter(sel Selection, sizes []float64) {
	colors := make([]color.NRGBA, sel.Len())
	if sel.Len() > 0 {
		norm := normalizer{lo: floats.Min(sel.Density), hi: floats.Max(sel.Density)}
		for i, d := range sel.Density {
			colors[i] = viridis(norm.apply(d))
		}
	}
	s.mu.Lock()
	s.points = append([]r3.Vec(nil), sel.Points...)
	s.colors = colors
	s.sizes = append([]float64(nil), sizes...)
	s.mu.Unlock()
}

func (s *Scene) SetSizes(sizes []float64) {
	s.mu.Lock()
	s.sizes = append(s.sizes[:0], sizes...)
	s.mu.Unlock()
}

func (s *Scene) Refresh() {
	if s.OnRefresh != nil {
		s.OnRefresh()
	}
}

// Rotate turns the camera about a view-space axis.
func (s *Scene) Rotate(axis r3.Vec, angle float64) {
	s.mu.Lock()
	s.Camera.Rotate(axis, angle)
	s.mu.Unlock()
}

// Zoom scales the camera magnification.
func (s *Scene) Zoom(f float64) {
	s.mu.Lock()
	s.Camera.Zoom(f)
	s.mu.Unlock()
}

// Len returns the number of points in the scene.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// Snapshot returns copies of the current points, colors and sizes.
func (s *Scene) Snapshot() ([]r3.Vec, []color.NRGBA, []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]r3.Vec(nil), s.points...),
		append([]color.NRGBA(nil), s.colors...),
		append([]float64(nil), s.sizes...)
}

var (
	sceneBackground = color.NRGBA{R: 20, G: 20, B: 40, A: 255}
	sceneFrame      = color.NRGBA{R: 110, G: 110, B: 130, A: 255}
)

// Draw renders the scene into a w x h image. Its signature matches canvas.NewRaster.
func (s *Scene) Draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, sceneBackground)
	if w <= 0 || h <= 0 {
		return img
	}

	s.mu.Lock()
	points, colors, sizes := s.points, s.colors, s.sizes
	lo, hi, cam := s.lo, s.hi, s.Camera
	defer s.mu.Unlock()

	mid := (lo + hi) / 2
	center := r3.Vec{X: mid, Y: mid, Z: mid}
	halfDiag := math.Sqrt(3) * math.Max((hi-lo)/2, 1e-9)
	scale := cam.zoom * math.Min(float64(w), float64(h)) / (2 * halfDiag)
	project := func(p r3.Vec) (sx, sy, depth float64) {
		v := cam.View(r3.Sub(p, center))
		return float64(w)/2 + v.X*scale, float64(h)/2 - v.Y*scale, v.Z
	}

	// Domain box wireframe.
	corner := func(b int) r3.Vec {
		pick := func(bit int) float64 {
			if b&bit != 0 {
				return hi
			}
			return lo
		}
		return r3.Vec{X: pick(1), Y: pick(2), Z: pick(4)}
	}
	for a := 0; a < 8; a++ {
		for _, bit := range []int{1, 2, 4} {
			if a&bit == 0 {
				x0, y0, _ := project(corner(a))
				x1, y1, _ := project(corner(a | bit))
				drawLine(img, x0, y0, x1, y1, sceneFrame)
			}
		}
	}

	// Far points first so nearer ones paint over them.
	type proj struct {
		x, y, depth float64
		idx         int
	}
	order := make([]proj, len(points))
	for i, p := range points {
		x, y, d := project(p)
		order[i] = proj{x, y, d, i}
	}
	sort.Slice(order, func(a, b int) bool { return order[a].depth < order[b].depth })

	for _, p := range order {
		size := 1.0
		if p.idx < len(sizes) {
			size = sizes[p.idx]
		}
		c := color.NRGBA{A: 255}
		if p.idx < len(colors) {
			c = colors[p.idx]
		}
		drawDisc(img, p.x, p.y, math.Max(0.5, math.Sqrt(size)/2), c)
	}
	return img
}

// drawDisc fills a circle of radius rad centered at (cx, cy).
func drawDisc(img *image.RGBA, cx, cy, rad float64, c color.Color) {
	b := img.Bounds()
	x0, x1 := int(math.Floor(cx-rad)), int(math.Ceil(cx+rad))
	y0, y1 := int(math.Floor(cy-rad)), int(math.Ceil(cy+rad))
	r2 := rad * rad
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !(image.Point{X: x, Y: y}).In(b) {
				continue
			}
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r2 || (x == int(cx) && y == int(cy)) {
				img.Set(x, y, c)
			}
		}
	}
}

// drawLine draws a one-pixel line by stepping along its longer axis.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	b := img.Bounds()
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := image.Point{X: int(x0 + (x1-x0)*t), Y: int(y0 + (y1-y0)*t)}
		if p.In(b) {
			img.Set(p.X, p.Y, c)
		}
	}
}
