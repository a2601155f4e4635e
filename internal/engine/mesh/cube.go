package mesh

// cubeFaces lists each face as normal, u axis, v axis with u x v = normal,
// so corners walked (-u,-v) (u,-v) (u,v) (-u,v) are counter-clockwise
// seen from outside.
var cubeFaces = [6][3][3]float32{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Cube builds an axis-aligned cube of the given edge length centred on the
// origin. Faces do not share vertices so each keeps a flat normal.
func Cube(size float32) *Mesh {
	h := size / 2
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(vertices))

		for _, c := range corners {
			var p [3]float32
			for k := range 3 {
				p[k] = (n[k] + c[0]*u[k] + c[1]*v[k]) * h
			}
			vertices = append(vertices, Vertex{
				Position: p,
				Normal:   n,
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   computeBounds(vertices),
	}
}
