package shade

import "github.com/go-gl/mathgl/mgl32"

// V3 is a convenience function to create an mgl32.Vec3.
func V3(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, z}
}

// V2 is a convenience function to create an mgl32.Vec2.
func V2(x, y float32) mgl32.Vec2 {
	return mgl32.Vec2{x, y}
}

// SafeNormalize returns a unit vector in the direction of v.
// Returns the zero vector if v has zero length, so degenerate geometry
// (collapsed triangles, missing normals) produces a stable result instead
// of NaN propagating through the lighting math.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// TransformPoint applies a 4x4 transform to a position, using w=1 so
// translation takes effect. The result is the transformed point with the
// w component dropped (no perspective divide).
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDirection applies a 4x4 transform to a direction, using w=0 so
// translation does not affect it, and renormalizes the result. The
// renormalization is required: non-uniform scale in the transform
// denormalizes the vector. Zero-length inputs return the zero vector.
func TransformDirection(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	return SafeNormalize(m.Mul4x1(d.Vec4(0)).Vec3())
}
