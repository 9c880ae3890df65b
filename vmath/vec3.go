// SPDX-License-Identifier: EPL-2.0

// Package vmath holds the small amount of vector math needed to split a
// contact's relative velocity into its normal and tangential parts.
package vmath

import "math"

// Vec3 is a float64 3D vector in world units (meters, meters per second).
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3MagSq(v Vec3) float64 {
	return V3Dot(v, v)
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3Mean averages vs, the zero vector for an empty slice.
func V3Mean(vs []Vec3) Vec3 {
	if len(vs) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, v := range vs {
		sum = V3Add(sum, v)
	}
	return V3Scale(sum, 1/float64(len(vs)))
}

// V3Decompose splits v into its component along normal and the remainder.
// normal does not need to be unit length. A zero normal puts all of v in
// the tangential part.
func V3Decompose(v, normal Vec3) (normalPart, tangentPart Vec3) {
	n := V3Normalize(normal)
	if n == (Vec3{}) {
		return Vec3{}, v
	}
	normalPart = V3Scale(n, V3Dot(v, n))
	return normalPart, V3Sub(v, normalPart)
}
