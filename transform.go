package shade

// TransformVertex is the vertex-stage entry point for the 3D variants.
//
// It composes clip position as projection * view * model * vec4(position, 1),
// in exactly that order, and produces the world-space attributes the shading
// stage consumes:
//
//   - WorldPosition from model * vec4(position, 1); lit variants need it
//     because the light direction depends on it.
//   - WorldNormal from model * vec4(normal, 0), renormalized; the zero w
//     keeps translation out of the direction, the renormalization undoes any
//     non-uniform scale in the model transform. A zero input normal yields a
//     zero output normal rather than NaN.
//   - Color and UV passed through unchanged for interpolation.
//
// Variants whose layout lacks a normal or uv simply leave those fields at
// their zero values; their shading stage never reads them.
//
// TransformVertex is pure and holds no state between invocations, so it may
// run for every vertex of a draw in parallel.
func TransformVertex(cam Camera, actor Actor, vert VertexAttributes) Varyings {
	mvp := cam.Projection.Mul4(cam.View).Mul4(actor.Model)
	return Varyings{
		ClipPosition:  mvp.Mul4x1(vert.Position.Vec4(1)),
		WorldPosition: TransformPoint(actor.Model, vert.Position),
		WorldNormal:   TransformDirection(actor.Model, vert.Normal),
		Color:         vert.Color,
		UV:            vert.UV,
	}
}
