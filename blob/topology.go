package blob

import (
	"math"
	"math/rand"
	"slices"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/physics"
	"github.com/lixenwraith/blob/vmath"
)

// edge is an eye-eye spring by eye index
type edge struct {
	a, b int
}

// spawnRect is the centred square of side minDim shrunk by EyeSpawnBuffer on each side
func spawnRect(w *physics.World) r2.Rect {
	minDim := math.Min(w.Width, w.Height)
	side := minDim * (1 - 2*parameter.EyeSpawnBuffer)
	return r2.RectFromCenterSize(
		r2.Point{X: w.Width / 2, Y: w.Height / 2},
		r2.Point{X: side, Y: side},
	)
}

// spawnPoint returns a uniform random point inside rect
func spawnPoint(rect r2.Rect, rng *rand.Rand) vmath.Vec2 {
	x := rect.X.Lo + rng.Float64()*rect.X.Length()
	y := rect.Y.Lo + rng.Float64()*rect.Y.Length()
	return vmath.V2(x, y)
}

// distanceMatrix returns the symmetric pairwise sclera distances with +Inf on the diagonal
func distanceMatrix(eyes []*Eye) [][]float64 {
	n := len(eyes)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		m[i][i] = math.Inf(1)
		for j := i + 1; j < n; j++ {
			d := vmath.V2Dist(eyes[i].Sclera.Current, eyes[j].Sclera.Current)
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}

// nearestEdges links every eye but the last to its 4-5 nearest unlinked neighbours
// Each used pair is struck from both rows so no pair links twice; an exhausted row stops early
func nearestEdges(m [][]float64, rng *rand.Rand) []edge {
	n := len(m)
	var edges []edge
	for i := 0; i < n-1; i++ {
		row := m[i]
		connections := parameter.EyeConnectionsMin +
			rng.Intn(parameter.EyeConnectionsMax-parameter.EyeConnectionsMin+1)

		for ; connections > 0; connections-- {
			nearest := slices.Min(row)
			if math.IsInf(nearest, 1) {
				break
			}
			j := slices.Index(row, nearest)
			row[j] = math.Inf(1)
			m[j][i] = math.Inf(1)
			edges = append(edges, edge{a: i, b: j})
		}
	}
	return edges
}

// connect adds the eye-eye springs and a spring from the mouth to every eye
func (b *Blob) connect() {
	for _, e := range nearestEdges(distanceMatrix(b.eyes), b.rng) {
		c := b.world.AddConstraint(physics.ConstraintConfig{
			Kind: physics.KindSpring,
			A:    b.eyes[e.a].Sclera,
			B:    b.eyes[e.b].Sclera,
			Min:  parameter.EyeSpringMin,
			Max:  parameter.EyeSpringMax,
			K:    parameter.EyeSpringK,
		})
		b.eyeSprings = append(b.eyeSprings, c)
	}

	for _, eye := range b.eyes {
		c := b.world.AddConstraint(physics.ConstraintConfig{
			Kind: physics.KindSpring,
			A:    b.mouth.point,
			B:    eye.Sclera,
			Min:  parameter.MouthSpringMin,
			Max:  parameter.MouthSpringMax,
			K:    parameter.MouthSpringK,
		})
		b.mouthSprings = append(b.mouthSprings, c)
	}
}
