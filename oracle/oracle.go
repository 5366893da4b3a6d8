// SPDX-License-Identifier: MIT

package oracle

import (
	"math"

	"github.com/polyvol/polyvol/body"
)

// Hit is the pair of chord parameters bounding the current point along a
// direction: p + TPlus·v and p + TMinus·v lie on the boundary and the
// current point sits strictly between them (TMinus < 0 < TPlus).
type Hit struct {
	TPlus  float64
	TMinus float64
}

// queryable is the per-representation capability contract. extent may
// report ±Inf for unbounded directions; the public wrapper turns a
// non-finite side into ErrNoIntersection, while composite oracles
// (body ∩ ball) may still bound it with their other operand.
type queryable interface {
	// extent returns the raw (tplus, tminus) roots along p + t·v.
	extent(p, v []float64) (float64, float64, error)

	// normal returns the outward unit normal at boundary point x.
	normal(x []float64) ([]float64, error)
}

// Oracle answers chord and normal queries for one body. Each sampling chain
// owns its own Oracle (the LMI implementation carries mutable workspace);
// the underlying body stays shared and read-only.
type Oracle struct {
	b    body.Body
	impl queryable
}

// New selects the representation-specific implementation for b.
func New(b body.Body) (*Oracle, error) {
	impl, err := implFor(b)
	if err != nil {
		return nil, err
	}

	return &Oracle{b: b, impl: impl}, nil
}

func implFor(b body.Body) (queryable, error) {
	switch t := b.(type) {
	case *body.HPolytope:
		return &hImpl{p: t}, nil
	case *body.VPolytope:
		return &vImpl{p: t}, nil
	case *body.Zonotope:
		return &zImpl{z: t}, nil
	case *body.Spectrahedron:
		return newSpectraImpl(t), nil
	case *body.Ball:
		return &ballImpl{b: t}, nil
	case *body.Intersection:
		inner, err := implFor(t.Inner())
		if err != nil {
			return nil, err
		}

		return &intersectImpl{inner: inner, ball: &ballImpl{b: t.Ball()}}, nil
	default:
		return nil, ErrUnsupportedBody
	}
}

// Body returns the body this oracle answers for.
func (o *Oracle) Body() body.Body { return o.b }

// Chord returns the boundary parameters along p + t·v for an interior p.
// A side without a finite strictly-signed root yields ErrNoIntersection;
// the caller resamples the direction.
func (o *Oracle) Chord(p, v []float64) (Hit, error) {
	tp, tm, err := o.impl.extent(p, v)
	if err != nil {
		return Hit{}, err
	}
	if !finiteChord(tp, tm) {
		return Hit{}, ErrNoIntersection
	}

	return Hit{TPlus: tp, TMinus: tm}, nil
}

// Normal returns the outward unit normal at boundary point x.
func (o *Oracle) Normal(x []float64) ([]float64, error) {
	return o.impl.normal(x)
}

func finiteChord(tp, tm float64) bool {
	return tp > 0 && tm < 0 &&
		!math.IsInf(tp, 0) && !math.IsInf(tm, 0) &&
		!math.IsNaN(tp) && !math.IsNaN(tm)
}
