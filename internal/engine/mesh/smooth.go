package mesh

import gomath "math"

// smoothNormals averages the normals of vertices that share a position,
// which hides the seams between separately tessellated patches.
func smoothNormals(vertices []Vertex) {
	const epsilon float32 = 0.0005

	// Group vertices by quantized position for O(n) lookup
	posMap := make(map[[3]int32][]int)
	for i := range vertices {
		key := [3]int32{
			int32(gomath.Round(float64(vertices[i].Position[0] / epsilon))),
			int32(gomath.Round(float64(vertices[i].Position[1] / epsilon))),
			int32(gomath.Round(float64(vertices[i].Position[2] / epsilon))),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, group := range posMap {
		if len(group) < 2 {
			continue
		}

		var sum [3]float32
		for _, idx := range group {
			n := vertices[idx].Normal
			sum[0] += n[0]
			sum[1] += n[1]
			sum[2] += n[2]
		}

		// Opposing normals (a crease folding back on itself) keep their own
		l := float32(gomath.Sqrt(float64(sum[0]*sum[0] + sum[1]*sum[1] + sum[2]*sum[2])))
		if l < 0.0001 {
			continue
		}
		avg := [3]float32{sum[0] / l, sum[1] / l, sum[2] / l}
		for _, idx := range group {
			vertices[idx].Normal = avg
		}
	}
}
