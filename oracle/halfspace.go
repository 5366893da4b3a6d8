// SPDX-License-Identifier: MIT

package oracle

import (
	"math"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// hImpl answers ray queries for {x : A·x ≤ b} with a single O(m·d) scan:
// each row contributes the parameter (bᵢ − aᵢ·p)/(aᵢ·v), positive
// denominators bound t from above, negative ones from below. Ties keep the
// lowest constraint index (strict comparison under ascending iteration).
type hImpl struct {
	p *body.HPolytope
}

// denomTiny filters directions numerically parallel to a facet; such rows
// impose no bound along the line.
const denomTiny = 1e-14

func (h *hImpl) extent(p, v []float64) (float64, float64, error) {
	tp := math.Inf(1)
	tm := math.Inf(-1)
	for i := 0; i < h.p.NumConstraints(); i++ {
		row := h.p.RowView(i)
		denom := geometry.Dot(row, v)
		if math.Abs(denom) < denomTiny {
			continue
		}
		t := (h.p.Offset(i) - geometry.Dot(row, p)) / denom
		if denom > 0 {
			if t < tp {
				tp = t
			}
		} else if t > tm {
			tm = t
		}
	}

	return tp, tm, nil
}

// normal returns the normalized row of the facet x is tightest against.
func (h *hImpl) normal(x []float64) ([]float64, error) {
	best := -1
	bestSlack := math.Inf(1)
	for i := 0; i < h.p.NumConstraints(); i++ {
		row := h.p.RowView(i)
		n := geometry.Norm(row)
		if n == 0 {
			continue
		}
		// Signed distance from x to facet hyperplane i.
		slack := (h.p.Offset(i) - geometry.Dot(row, x)) / n
		if math.Abs(slack) < math.Abs(bestSlack) {
			bestSlack = slack
			best = i
		}
	}
	if best < 0 || math.Abs(bestSlack) > 1e-6 {
		return nil, ErrNotOnBoundary
	}
	out := geometry.Clone(h.p.RowView(best))
	geometry.Scale(out, 1/geometry.Norm(out))

	return out, nil
}
