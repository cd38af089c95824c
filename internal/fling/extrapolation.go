// SPDX-License-Identifier: Unlicense OR MIT

// Package fling estimates the residual velocity of a drag gesture
// from its most recent position samples. The estimate decides whether
// a release hands off to the platform's momentum scrolling; the
// momentum animation itself is not implemented here.
package fling

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Extrapolation fits a quadratic polynomial to the last samples of a
// drag and extrapolates position and velocity at release time.
type Extrapolation struct {
	samples []sample
}

type sample struct {
	t time.Duration
	v float32
}

// Estimate is the extrapolated state at the time of the last sample.
type Estimate struct {
	// Velocity is the estimated velocity in units per second.
	Velocity float32
	// Distance is the distance traveled over the sample window.
	Distance float32
}

type coefficients [3]float32

// matrix is stored in column-major order.
type matrix struct {
	rows, cols int
	data       []float32
}

const (
	// maxAge is the window of samples considered for the fit.
	// Older samples describe a past phase of the gesture.
	maxAge = 100 * time.Millisecond
	// minSamples is the minimum number of samples for a
	// quadratic fit.
	minSamples = 3
)

// Sample adds a position sample and discards samples older than
// maxAge relative to it.
func (e *Extrapolation) Sample(t time.Duration, v float32) {
	e.samples = append(e.samples, sample{t: t, v: v})
	cutoff := t - maxAge
	first := 0
	for first < len(e.samples) && e.samples[first].t < cutoff {
		first++
	}
	e.samples = e.samples[first:]
}

// Estimate returns the extrapolated velocity and window distance, or
// the zero Estimate when too few samples are available or the fit is
// degenerate.
func (e *Extrapolation) Estimate() Estimate {
	if len(e.samples) < minSamples {
		return Estimate{}
	}
	last := e.samples[len(e.samples)-1]
	X := make([]float32, len(e.samples))
	Y := make([]float32, len(e.samples))
	for i, s := range e.samples {
		X[i] = float32((s.t - last.t).Seconds())
		Y[i] = s.v
	}
	coef, ok := polyFit(X, Y)
	if !ok {
		return Estimate{}
	}
	// The samples are normalized so the last one is at x = 0; the
	// linear coefficient is the velocity at release.
	return Estimate{
		Velocity: coef[1],
		Distance: last.v - e.samples[0].v,
	}
}

// polyFit computes the least squares quadratic fit of x, y with a QR
// decomposition of the Vandermonde matrix.
func polyFit(x, y []float32) (coefficients, bool) {
	if len(x) != len(y) || len(x) < minSamples {
		return coefficients{}, false
	}
	v := newMatrix(len(x), 3)
	for i, xi := range x {
		v.set(i, 0, 1)
		v.set(i, 1, xi)
		v.set(i, 2, xi*xi)
	}
	q, rt, ok := decomposeQR(v)
	if !ok {
		return coefficients{}, false
	}
	// Solve R*c = transpose(Q)*y by back substitution. rt is R
	// transposed, so rt.get(j, i) is R[i][j].
	qty := make([]float32, q.cols)
	for j := 0; j < q.cols; j++ {
		var s float32
		for i := 0; i < q.rows; i++ {
			s += q.get(i, j) * y[i]
		}
		qty[j] = s
	}
	var coef coefficients
	for i := len(coef) - 1; i >= 0; i-- {
		s := qty[i]
		for j := i + 1; j < len(coef); j++ {
			s -= rt.get(j, i) * coef[j]
		}
		coef[i] = s / rt.get(i, i)
	}
	return coef, true
}

// decomposeQR computes the QR decomposition of a with modified
// Gram-Schmidt orthogonalization. It returns Q and the transpose of
// R. The decomposition fails when a is rank deficient.
func decomposeQR(a *matrix) (q, rt *matrix, ok bool) {
	q = newMatrix(a.rows, a.cols)
	rt = newMatrix(a.cols, a.cols)
	copy(q.data, a.data)
	for j := 0; j < a.cols; j++ {
		n := norm(q.col(j))
		if n == 0 {
			return nil, nil, false
		}
		rt.set(j, j, n)
		scale(q.col(j), 1/n)
		for k := j + 1; k < a.cols; k++ {
			d := dot(q.col(j), q.col(k))
			rt.set(k, j, d)
			axpy(q.col(k), q.col(j), -d)
		}
	}
	return q, rt, true
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows: rows, cols: cols,
		data: make([]float32, rows*cols),
	}
}

func (m *matrix) get(i, j int) float32 {
	return m.data[j*m.rows+i]
}

func (m *matrix) set(i, j int, v float32) {
	m.data[j*m.rows+i] = v
}

func (m *matrix) col(j int) []float32 {
	return m.data[j*m.rows : (j+1)*m.rows]
}

func (m *matrix) transpose() *matrix {
	t := newMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.set(j, i, m.get(i, j))
		}
	}
	return t
}

func (m *matrix) mul(m2 *matrix) *matrix {
	if m.cols != m2.rows {
		panic("mismatched matrices")
	}
	p := newMatrix(m.rows, m2.cols)
	for i := 0; i < p.rows; i++ {
		for j := 0; j < p.cols; j++ {
			var s float32
			for k := 0; k < m.cols; k++ {
				s += m.get(i, k) * m2.get(k, j)
			}
			p.set(i, j, s)
		}
	}
	return p
}

func (m *matrix) approxEqual(m2 *matrix) bool {
	if m.rows != m2.rows || m.cols != m2.cols {
		return false
	}
	for i, v := range m.data {
		if !approxEqual(v, m2.data[i]) {
			return false
		}
	}
	return true
}

func (m *matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%9.4f ", m.get(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c coefficients) approxEqual(c2 coefficients) bool {
	for i, v := range c {
		if !approxEqual(v, c2[i]) {
			return false
		}
	}
	return true
}

func approxEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	scale := float32(1)
	if a < -scale || a > scale {
		scale = a
		if scale < 0 {
			scale = -scale
		}
	}
	return d <= scale*1e-3
}

func norm(v []float32) float32 {
	return float32(math.Sqrt(float64(dot(v, v))))
}

func dot(v1, v2 []float32) float32 {
	var s float32
	for i, v := range v1 {
		s += v * v2[i]
	}
	return s
}

func scale(v []float32, s float32) {
	for i := range v {
		v[i] *= s
	}
}

// axpy adds v2 scaled by s to v1 in place.
func axpy(v1, v2 []float32, s float32) {
	for i := range v1 {
		v1[i] += s * v2[i]
	}
}
