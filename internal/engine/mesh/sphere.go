package mesh

import gomath "math"

// MinSpherePrecision is the smallest slice count Sphere will build.
const MinSpherePrecision = 4

// Sphere builds a UV sphere centred on the origin with precision slices
// around the Y axis and precision/2 stacks from pole to pole. The seam
// column is duplicated so texture coordinates wrap cleanly.
func Sphere(radius float32, precision int) *Mesh {
	if precision < MinSpherePrecision {
		precision = MinSpherePrecision
	}
	slices := precision
	stacks := precision / 2

	vertices := make([]Vertex, 0, (stacks+1)*(slices+1))
	for i := 0; i <= stacks; i++ {
		phi := gomath.Pi * float64(i) / float64(stacks)
		sinPhi, cosPhi := gomath.Sincos(phi)

		for j := 0; j <= slices; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(slices)
			sinTheta, cosTheta := gomath.Sincos(theta)

			n := [3]float32{
				float32(sinPhi * cosTheta),
				float32(cosPhi),
				float32(sinPhi * sinTheta),
			}
			vertices = append(vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{float32(j) / float32(slices), float32(i) / float32(stacks)},
			})
		}
	}

	row := uint32(slices + 1)
	indices := make([]uint32, 0, stacks*slices*6)
	for i := range uint32(stacks) {
		for j := range uint32(slices) {
			a := i*row + j
			b := a + row
			c := b + 1
			d := a + 1
			indices = append(indices, a, c, b, a, d, c)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   computeBounds(vertices),
	}
}
