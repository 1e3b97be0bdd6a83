package mesh

import "github.com/chewxy/math32"

// Minimum segment counts accepted by Sphere.
const (
	MinWidthSegments  = 3
	MinHeightSegments = 2
)

// Sphere builds a UV sphere centred on the origin.
//
// Longitude runs around Y starting at -X, latitude from +Y (v = 0 in the
// grid) down to -Y. Texture v is flipped so that uv (0,0) is the south
// pole. Pole rows get half-segment u offsets so each pole triangle samples
// the middle of its column. Degenerate pole triangles are skipped.
//
// Segment counts below the minimums are raised to them.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < MinWidthSegments {
		widthSegments = MinWidthSegments
	}
	if heightSegments < MinHeightSegments {
		heightSegments = MinHeightSegments
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, (widthSegments+1)*(heightSegments+1)),
		Indices:  make([]uint32, 0, 6*widthSegments*(heightSegments-1)),
	}

	grid := make([][]uint32, heightSegments+1)
	var index uint32

	for iy := 0; iy <= heightSegments; iy++ {
		row := make([]uint32, widthSegments+1)
		v := float32(iy) / float32(heightSegments)

		var uOffset float32
		switch {
		case iy == 0:
			uOffset = 0.5 / float32(widthSegments)
		case iy == heightSegments:
			uOffset = -0.5 / float32(widthSegments)
		}

		sinTheta, cosTheta := math32.Sincos(v * math32.Pi)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinPhi, cosPhi := math32.Sincos(u * 2 * math32.Pi)

			nx := -cosPhi * sinTheta
			ny := cosTheta
			nz := sinPhi * sinTheta

			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{radius * nx, radius * ny, radius * nz},
				Normal:   normalize(nx, ny, nz),
				TexCoord: [2]float32{u + uOffset, 1 - v},
			})
			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	return m
}

func normalize(x, y, z float32) [3]float32 {
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return [3]float32{0, 0, 0}
	}
	return [3]float32{x / l, y / l, z / l}
}
