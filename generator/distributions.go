package generator

import (
	"math"
	"time"
)

// chance returns true with probability p.
func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

// weighted draws one choice from a categorical distribution. Weights must sum to 1.
func (g *Generator) weighted(choices []string, weights []float64) string {
	r := g.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}

// weightedInt is weighted for integer choices.
func (g *Generator) weightedInt(choices []int, weights []float64) int {
	r := g.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}

// pick returns a uniformly chosen element.
func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

// poisson draws from a Poisson distribution using Knuth's algorithm.
func (g *Generator) poisson(mean float64) int {
	l := math.Exp(-mean)
	k := 0
	p := 1.0
	for p > l {
		k++
		p *= g.rng.Float64()
	}
	return k - 1
}

// timeBetween samples a timestamp uniformly between start and end.
func (g *Generator) timeBetween(start, end time.Time) time.Time {
	delta := end.Sub(start)
	if delta <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rng.Int63n(int64(delta))))
}

// daysAfter shifts t forward by a uniform number of days in [min, max].
func (g *Generator) daysAfter(t time.Time, min, max int) time.Time {
	return t.AddDate(0, 0, min+g.rng.Intn(max-min+1))
}
