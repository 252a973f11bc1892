package rmsd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Centroid returns the arithmetic mean of the points in f.
// An empty frame yields the origin.
func Centroid(f Frame) Point {
	var c Point
	if len(f) == 0 {
		return c
	}
	for _, p := range f {
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
	}
	n := float64(len(f))
	c[0] /= n
	c[1] /= n
	c[2] /= n

	return c
}

// Center returns a copy of f translated so that its centroid is the origin.
// The input frame is not modified.
func Center(f Frame) Frame {
	c := Centroid(f)
	out := make(Frame, len(f))
	for k, p := range f {
		out[k] = Point{p[0] - c[0], p[1] - c[1], p[2] - c[2]}
	}

	return out
}

// covariance returns H = Yᵀ·X for centred frames y (mobile) and x (reference).
func covariance(y, x Frame) *mat.Dense {
	h := make([]float64, 9)
	var a, b int
	for k := range y {
		for a = 0; a < 3; a++ {
			for b = 0; b < 3; b++ {
				h[a*3+b] += y[k][a] * x[k][b]
			}
		}
	}

	return mat.NewDense(3, 3, h)
}

// rotationCentered computes the Kabsch rotation for already-centred frames.
func rotationCentered(x, y Frame) (*mat.Dense, error) {
	h := covariance(y, x)

	var svd mat.SVD
	if ok := svd.Factorize(h, mat.SVDFull); !ok {
		return nil, ErrSVDFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Reflection correction: flip the last left singular vector.
	if mat.Det(&u)*mat.Det(&v) < 0 {
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
	}

	var r mat.Dense
	r.Mul(&u, v.T())

	return &r, nil
}

// Rotation returns the proper 3×3 rotation R minimising ‖(mob−c_mob)·R − (ref−c_ref)‖.
// Points are treated as row vectors, so the rotated frame is Y·R.
func Rotation(ref, mob Frame) (*mat.Dense, error) {
	if err := checkPair(ref, mob); err != nil {
		return nil, err
	}

	return rotationCentered(Center(ref), Center(mob))
}

// Transform returns f·r for a 3×3 matrix r, treating each point as a row vector.
func Transform(f Frame, r mat.Matrix) Frame {
	out := make(Frame, len(f))
	var a, b int
	for k, p := range f {
		var q Point
		for b = 0; b < 3; b++ {
			for a = 0; a < 3; a++ {
				q[b] += p[a] * r.At(a, b)
			}
		}
		out[k] = q
	}

	return out
}

// Superimpose centres both frames and rotates the mobile frame onto the
// reference. It returns the centred reference, the aligned mobile frame and
// the rotation. Inputs are not modified.
func Superimpose(ref, mob Frame) (Frame, Frame, *mat.Dense, error) {
	if err := checkPair(ref, mob); err != nil {
		return nil, nil, nil, err
	}
	x := Center(ref)
	y := Center(mob)
	r, err := rotationCentered(x, y)
	if err != nil {
		return nil, nil, nil, err
	}

	return x, Transform(y, r), r, nil
}

// RawRMSD returns the root-mean-square deviation of a and b without any
// alignment.
func RawRMSD(a, b Frame) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	return rawRMSD(a, b), nil
}

func rawRMSD(a, b Frame) float64 {
	var sum, dx, dy, dz float64
	for k := range a {
		dx = a[k][0] - b[k][0]
		dy = a[k][1] - b[k][1]
		dz = a[k][2] - b[k][2]
		sum += dx*dx + dy*dy + dz*dz
	}

	return math.Sqrt(sum / float64(len(a)))
}

// RMSD returns the minimum RMSD between a and b over rigid motions.
func RMSD(a, b Frame) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	x, y := Center(a), Center(b)
	r, err := rotationCentered(x, y)
	if err != nil {
		return 0, err
	}

	return aligned(x, y, r), nil
}

// aligned returns the RMSD of centred frames x and y under rotation r, or
// without rotation when that is smaller. Identical frames give exactly 0.
func aligned(x, y Frame, r mat.Matrix) float64 {
	return math.Min(rawRMSD(x, y), rawRMSD(x, Transform(y, r)))
}
