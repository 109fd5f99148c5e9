package opengl

import (
	"math/rand"

	"github.com/anuraags/raytracer/types"
	"github.com/go-gl/gl/v2.1/gl"
)

// A fixed-width history of per-tracer values drawn as stacked bars.
type stackedSeries struct {
	series [][]float32
	colors []types.Color
}

func makeStackedSeries(numSeries, histCount int) *stackedSeries {
	s := &stackedSeries{
		series: make([][]float32, numSeries),
		colors: make([]types.Color, numSeries),
	}

	for sIndex := 0; sIndex < numSeries; sIndex++ {
		s.series[sIndex] = make([]float32, histCount)
		s.colors[sIndex] = types.RGB(rand.Float32(), rand.Float32(), 1.0)
	}

	return s
}

// Clear series
func (s *stackedSeries) Clear() {
	for sIndex := range s.series {
		s.series[sIndex] = make([]float32, len(s.series[sIndex]))
	}
}

// Shift series values and append new value at the end.
func (s *stackedSeries) Append(seriesIndex int, val float32) {
	if seriesIndex >= len(s.series) {
		return
	}
	s.series[seriesIndex] = append(s.series[seriesIndex][1:], val)
}

func (s *stackedSeries) Render(rY, rHeight uint32) {
	if len(s.series) == 0 {
		return
	}

	gl.LineWidth(1.0)
	gl.Begin(gl.LINES)
	for x := 0; x < len(s.series[0]); x++ {
		var sum float32
		var scale float32 = 1.0
		for seriesIndex := range s.series {
			sum += s.series[seriesIndex][x]
		}
		if sum > 0.0 {
			scale = float32(rHeight) / sum
		}

		y := float32(rY)
		for seriesIndex := range s.series {
			sH := s.series[seriesIndex][x] * scale
			gl.Color3fv(&s.colors[seriesIndex][0])
			gl.Vertex2f(float32(x), y)
			gl.Vertex2f(float32(x), y+sH)
			y += sH
		}
	}
	gl.End()
}
