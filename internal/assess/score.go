// Package assess pairs layer names with caller-supplied scores and derives
// the aggregate values the prompt builders embed.
package assess

import (
	"fmt"
	"math"
	"strconv"
)

// LayerCount is how many scores every assessment carries. The submission
// form collects exactly five values, so every profile binds five layers.
const LayerCount = 5

// LayerScores is a validated pairing of layer names and their scores.
// Construction fails on length mismatch; nothing downstream has to trust
// positional alignment between independently defined slices.
type LayerScores struct {
	names  []string
	values []float64
}

// Pair zips layer names with scores. Both sides must have exactly
// LayerCount entries.
func Pair(names []string, values []float64) (LayerScores, error) {
	if len(names) != len(values) {
		return LayerScores{}, fmt.Errorf("assess: %d layers but %d scores", len(names), len(values))
	}
	if len(names) != LayerCount {
		return LayerScores{}, fmt.Errorf("assess: expected %d layers, got %d", LayerCount, len(names))
	}
	ns := make([]string, len(names))
	vs := make([]float64, len(values))
	copy(ns, names)
	copy(vs, values)
	return LayerScores{names: ns, values: vs}, nil
}

func (ls LayerScores) Len() int            { return len(ls.names) }
func (ls LayerScores) Name(i int) string   { return ls.names[i] }
func (ls LayerScores) Value(i int) float64 { return ls.values[i] }

// Mean is the arithmetic mean of all scores, rounded to two decimals.
func (ls LayerScores) Mean() float64 {
	if len(ls.values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range ls.values {
		sum += v
	}
	return math.Round(sum/float64(len(ls.values))*100) / 100
}

// Bottleneck returns the lowest-scoring layer. Ties resolve to the first
// occurrence in layer order.
func (ls LayerScores) Bottleneck() (name string, index int) {
	index = 0
	for i := 1; i < len(ls.values); i++ {
		if ls.values[i] < ls.values[index] {
			index = i
		}
	}
	return ls.names[index], index
}

// FormatScore renders a score the way it was submitted: "7" rather than
// "7.0", but "7.5" stays "7.5".
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
