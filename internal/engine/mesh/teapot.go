package mesh

import gomath "math"

// DefaultTeapotDetail is the per-patch subdivision used when none is configured.
const DefaultTeapotDetail = 10

const (
	teapotHeight = 3.15
	teapotScale  = 0.5
)

// Teapot tessellates the Utah teapot with detail x detail quads per patch.
// The result is Y up, centred vertically on the origin and scaled by half,
// so it spans roughly 3.2 x 1.6 x 2 units.
func Teapot(detail int) *Mesh {
	if detail < 1 {
		detail = 1
	}
	side := detail + 1
	vertices := make([]Vertex, 0, len(teapotPatches)*side*side)
	indices := make([]uint32, 0, len(teapotPatches)*detail*detail*6)

	for _, patch := range teapotPatches {
		var cp [16][3]float64
		for k, idx := range patch {
			p := teapotPoints[idx-1]
			cp[k] = [3]float64{float64(p[0]), float64(p[1]), float64(p[2])}
		}

		base := uint32(len(vertices))
		for j := range side {
			v := float64(j) / float64(detail)
			for i := range side {
				u := float64(i) / float64(detail)
				pos, n := patchPoint(&cp, u, v)

				vertices = append(vertices, Vertex{
					Position: toYUp(pos, true),
					Normal:   toYUp(n, false),
					TexCoord: [2]float32{float32(u), float32(v)},
				})
			}
		}

		for j := range uint32(detail) {
			for i := range uint32(detail) {
				a := base + j*uint32(side) + i
				b := a + 1
				d := a + uint32(side)
				c := d + 1
				indices = append(indices, a, b, c, a, c, d)
			}
		}
	}

	smoothNormals(vertices)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   computeBounds(vertices),
	}
}

// patchPoint evaluates a bicubic Bezier patch and its unit normal. Rows of
// cp run along v, columns along u. Where the patch collapses to a point the
// normal is taken from a sample just inside the patch.
func patchPoint(cp *[16][3]float64, u, v float64) (pos, normal [3]float64) {
	pos, du, dv := patchEval(cp, u, v)
	n := cross64(du, dv)
	if length64(n) < 1e-9 {
		const nudge = 1e-3
		nu, nv := u, v
		if v < 0.5 {
			nv += nudge
		} else {
			nv -= nudge
		}
		if u < 0.5 {
			nu += nudge
		} else {
			nu -= nudge
		}
		_, du, dv = patchEval(cp, nu, nv)
		n = cross64(du, dv)
	}
	return pos, normalize64(n)
}

func patchEval(cp *[16][3]float64, u, v float64) (pos, du, dv [3]float64) {
	bu, dbu := bernstein(u)
	bv, dbv := bernstein(v)

	for r := range 4 {
		for c := range 4 {
			p := cp[r*4+c]
			w := bv[r] * bu[c]
			wu := bv[r] * dbu[c]
			wv := dbv[r] * bu[c]
			for k := range 3 {
				pos[k] += w * p[k]
				du[k] += wu * p[k]
				dv[k] += wv * p[k]
			}
		}
	}
	return pos, du, dv
}

// bernstein returns the cubic Bernstein basis at t and its derivative.
func bernstein(t float64) (b, d [4]float64) {
	s := 1 - t
	b = [4]float64{s * s * s, 3 * t * s * s, 3 * t * t * s, t * t * t}
	d = [4]float64{-3 * s * s, 3 * s * (s - 2*t), 3 * t * (2*s - t), 3 * t * t}
	return b, d
}

// toYUp rotates from the Z-up table into Y up. Points are also recentred
// and scaled; directions are only rotated.
func toYUp(p [3]float64, point bool) [3]float32 {
	x, y, z := p[0], p[2], -p[1]
	if point {
		x *= teapotScale
		y = (y - teapotHeight/2) * teapotScale
		z *= teapotScale
	}
	return [3]float32{float32(x), float32(y), float32(z)}
}

func cross64(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func length64(v [3]float64) float64 {
	return gomath.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func normalize64(v [3]float64) [3]float64 {
	l := length64(v)
	if l == 0 {
		return [3]float64{0, 0, 1}
	}
	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}
