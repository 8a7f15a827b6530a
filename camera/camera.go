package camera

import (
	"math"

	"github.com/oliverbestmann/glm4/glm"
)

// Lens describes a projection. A positive Height selects an orthographic
// projection of that height, otherwise FovY is the vertical field of view
// of a perspective projection. Far may be +Inf for perspective lenses.
type Lens struct {
	FovY   glm.Rad
	Height float32
	Aspect float32
	Near   float32
	Far    float32

	// ZeroToOne maps depth to [0, 1] instead of [-1, 1]
	ZeroToOne  bool
	LeftHanded bool
}

func (l Lens) Orthographic() bool {
	return l.Height > 0
}

func (l Lens) hasNaN() bool {
	for _, v := range [...]float32{float32(l.FovY), l.Height, l.Aspect, l.Near, l.Far} {
		if math.IsNaN(float64(v)) {
			return true
		}
	}

	return false
}

// Build computes the projection matrix of the lens.
func (l Lens) Build() glm.Mat4 {
	var m glm.Mat4

	if l.Orthographic() {
		halfHeight := l.Height / 2
		halfWidth := halfHeight * l.Aspect

		if l.LeftHanded {
			m.SetOrthoLH(-halfWidth, halfWidth, -halfHeight, halfHeight, l.Near, l.Far, l.ZeroToOne)
		} else {
			m.SetOrtho(-halfWidth, halfWidth, -halfHeight, halfHeight, l.Near, l.Far, l.ZeroToOne)
		}

		return m
	}

	if l.LeftHanded {
		m.SetPerspectiveLH(l.FovY, l.Aspect, l.Near, l.Far, l.ZeroToOne)
	} else {
		m.SetPerspective(l.FovY, l.Aspect, l.Near, l.Far, l.ZeroToOne)
	}

	return m
}

// Camera places a Lens in the world. The matrices are derived on demand,
// the projection comes from the shared cache.
type Camera struct {
	Eye    glm.Vec3f
	Target glm.Vec3f
	Up     glm.Vec3f
	Lens   Lens

	cache *ProjectionCache
}

func New(cache *ProjectionCache, lens Lens) *Camera {
	return &Camera{
		Up:     glm.Vec3f{0, 1, 0},
		Target: glm.Vec3f{0, 0, -1},
		Lens:   lens,
		cache:  cache,
	}
}

// LookAt moves the camera to eye and points it to target.
func (c *Camera) LookAt(eye, target glm.Vec3f) *Camera {
	c.Eye = eye
	c.Target = target
	return c
}

// View returns the world to camera transform.
func (c *Camera) View() glm.Mat4 {
	var view glm.Mat4

	if c.Lens.LeftHanded {
		view.SetLookAtLH(c.Eye, c.Target, c.Up)
	} else {
		view.SetLookAt(c.Eye, c.Target, c.Up)
	}

	return view
}

func (c *Camera) Projection() glm.Mat4 {
	if c.cache == nil {
		return c.Lens.Build()
	}

	return c.cache.Get(c.Lens)
}

// ViewProjection returns the world to clip space transform.
func (c *Camera) ViewProjection() glm.Mat4 {
	view := c.View()
	projection := c.Projection()

	var vp glm.Mat4
	vp.Mul(&projection, &view)
	return vp
}

// InverseViewProjection returns the clip to world space transform.
func (c *Camera) InverseViewProjection() glm.Mat4 {
	vp := c.ViewProjection()

	var inv glm.Mat4
	inv.Invert(&vp)
	return inv
}

// Position recovers the eye from the view matrix.
func (c *Camera) Position() glm.Vec3f {
	view := c.View()
	return view.Origin()
}

// Frustum returns the six clip planes in world space, normals pointing inwards.
func (c *Camera) Frustum() [6]glm.Vec4f {
	vp := c.ViewProjection()
	return vp.FrustumPlanes()
}

// Corners returns the eight corners of the view volume in world space. Only
// valid for lenses with a depth range of [-1, 1].
func (c *Camera) Corners() [8]glm.Vec3f {
	vp := c.ViewProjection()
	return vp.FrustumCorners()
}

// Visible reports whether a sphere intersects the view volume.
func (c *Camera) Visible(center glm.Vec3f, radius float32) bool {
	for _, plane := range c.Frustum() {
		if plane.Truncate().Dot(center)+plane[3] < -radius {
			return false
		}
	}

	return true
}

// Unproject maps a point in normalized device coordinates back into the world.
func (c *Camera) Unproject(ndc glm.Vec3f) glm.Vec3f {
	inv := c.InverseViewProjection()
	return inv.TransformProject(ndc)
}
