package wgsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shade"
)

// Options parameterize code generation beyond the variant flags.
type Options struct {
	// Light is baked into lit programs as a shader constant. The bind
	// group contract has no light slot, so the position is a
	// specialization parameter rather than a uniform; regenerate the
	// program to move the light.
	Light shade.Light

	// FlipV inverts the V axis of blit texture coordinates to match
	// image-origin conventions.
	FlipV bool
}

// DefaultOptions are the options Source uses.
func DefaultOptions() Options {
	return Options{Light: shade.DefaultLight, FlipV: true}
}

// Source generates the complete WGSL program (vs_main + fs_main) for a
// variant with default options.
func Source(v shade.Variant) string {
	return SourceOptions(v, DefaultOptions())
}

// SourceOptions generates the complete WGSL program for a variant.
func SourceOptions(v shade.Variant, o Options) string {
	if v.IsBlit() {
		return blitSource(v, o)
	}
	return meshSource(v, o)
}

// EntryVertex and EntryFragment are the stage entry point names of every
// generated program.
const (
	EntryVertex   = "vs_main"
	EntryFragment = "fs_main"
)

func meshSource(v shade.Variant, o Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s material (generated)\n\n", v.Name)

	// Uniform blocks, group 0. Field order matches the CPU-side structs.
	b.WriteString("struct Camera {\n\tview: mat4x4<f32>,\n\tprojection: mat4x4<f32>,\n}\n\n")
	b.WriteString("struct Actor {\n\tcolor: vec4<f32>,\n\tmodel: mat4x4<f32>,\n}\n\n")
	fmt.Fprintf(&b, "@group(%d) @binding(%d) var<uniform> camera: Camera;\n",
		shade.UniformGroup, shade.CameraBinding)
	fmt.Fprintf(&b, "@group(%d) @binding(%d) var<uniform> actor: Actor;\n\n",
		shade.UniformGroup, shade.ActorBinding)

	// Texture group, only for texture-capable variants.
	if v.TextureCapable {
		fmt.Fprintf(&b, "@group(%d) @binding(%d) var<uniform> texture_enabled: u32;\n",
			shade.TextureGroup, shade.TextureEnabledBinding)
		fmt.Fprintf(&b, "@group(%d) @binding(%d) var base_texture: texture_2d<f32>;\n",
			shade.TextureGroup, shade.TextureBinding2D)
		fmt.Fprintf(&b, "@group(%d) @binding(%d) var base_sampler: sampler;\n\n",
			shade.TextureGroup, shade.SamplerBinding)
	}

	if v.Lighting {
		p := o.Light.Position
		fmt.Fprintf(&b, "const light_position = vec3<f32>(%g, %g, %g);\n\n",
			p.X(), p.Y(), p.Z())
	}

	// Vertex input follows the variant's declared slot layout.
	b.WriteString("struct VertexInput {\n")
	for _, a := range v.VertexLayout() {
		fmt.Fprintf(&b, "\t@location(%d) %s: %s,\n", a.Slot, a.Semantic, a.Format)
	}
	b.WriteString("}\n\n")

	b.WriteString("struct VertexOutput {\n")
	b.WriteString("\t@builtin(position) clip_position: vec4<f32>,\n")
	loc := 0
	emit := func(name, typ string) {
		fmt.Fprintf(&b, "\t@location(%d) %s: %s,\n", loc, name, typ)
		loc++
	}
	if v.Lighting {
		emit("world_position", "vec3<f32>")
		emit("world_normal", "vec3<f32>")
	}
	if v.HasSemantic(shade.SemanticColor) {
		emit("color", "vec4<f32>")
	}
	if v.HasSemantic(shade.SemanticUV) {
		emit("uv", "vec2<f32>")
	}
	b.WriteString("}\n\n")

	// Transform stage.
	b.WriteString("@vertex\n")
	fmt.Fprintf(&b, "fn %s(in: VertexInput) -> VertexOutput {\n", EntryVertex)
	b.WriteString("\tvar out: VertexOutput;\n")
	b.WriteString("\tout.clip_position = camera.projection * camera.view * actor.model * vec4<f32>(in.position, 1.0);\n")
	if v.Lighting {
		b.WriteString("\tout.world_position = (actor.model * vec4<f32>(in.position, 1.0)).xyz;\n")
		b.WriteString("\tout.world_normal = normalize((actor.model * vec4<f32>(in.normal, 0.0)).xyz);\n")
	}
	if v.HasSemantic(shade.SemanticColor) {
		b.WriteString("\tout.color = in.color;\n")
	}
	if v.HasSemantic(shade.SemanticUV) {
		b.WriteString("\tout.uv = in.uv;\n")
	}
	b.WriteString("\treturn out;\n}\n\n")

	// Shading stage.
	b.WriteString("@fragment\n")
	if v.Lighting && v.DoubleSided {
		fmt.Fprintf(&b, "fn %s(in: VertexOutput, @builtin(front_facing) front_facing: bool) -> @location(0) vec4<f32> {\n", EntryFragment)
	} else {
		fmt.Fprintf(&b, "fn %s(in: VertexOutput) -> @location(0) vec4<f32> {\n", EntryFragment)
	}

	interpolated := "actor.color"
	if v.Source == shade.ColorSourceVertex {
		interpolated = "in.color"
	}
	if v.TextureCapable {
		// Both sources are evaluated so textureSample stays in uniform
		// control flow; the toggle alone picks the active one.
		fmt.Fprintf(&b, "\tlet base = select(%s, textureSample(base_texture, base_sampler, in.uv), texture_enabled != 0u);\n", interpolated)
	} else {
		fmt.Fprintf(&b, "\tlet base = %s;\n", interpolated)
	}

	if v.AlphaCutout {
		fmt.Fprintf(&b, "\tif (base.a < %g) {\n\t\tdiscard;\n\t}\n", shade.CutoutThreshold)
	}

	final := "base"
	if v.Lighting {
		if v.DoubleSided {
			b.WriteString("\tlet normal = select(-in.world_normal, in.world_normal, front_facing);\n")
		} else {
			b.WriteString("\tlet normal = in.world_normal;\n")
		}
		b.WriteString("\tlet light_dir = normalize(light_position - in.world_position);\n")
		b.WriteString("\tlet factor = clamp(dot(normal, light_dir), 0.0, 0.7) + 0.3;\n")
		b.WriteString("\tlet shaded = vec4<f32>(base.rgb * factor, base.a);\n")
		final = "shaded"
	}

	if v.Gamma != shade.GammaNone {
		fmt.Fprintf(&b, "\treturn pow(%s, vec4<f32>(%g));\n", final, v.Gamma)
	} else {
		fmt.Fprintf(&b, "\treturn %s;\n", final)
	}
	b.WriteString("}\n")

	return b.String()
}

// blitSource generates the full-screen passthrough program. The blit path
// has its own single bind group of texture+sampler and no uniform blocks;
// UV is derived from the clip-space position.
func blitSource(v shade.Variant, o Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s material (generated)\n\n", v.Name)

	b.WriteString("@group(0) @binding(0) var blit_texture: texture_2d<f32>;\n")
	b.WriteString("@group(0) @binding(1) var blit_sampler: sampler;\n\n")

	b.WriteString("struct VertexOutput {\n")
	b.WriteString("\t@builtin(position) clip_position: vec4<f32>,\n")
	b.WriteString("\t@location(0) uv: vec2<f32>,\n")
	b.WriteString("}\n\n")

	b.WriteString("@vertex\n")
	fmt.Fprintf(&b, "fn %s(@location(0) position: vec3<f32>) -> VertexOutput {\n", EntryVertex)
	b.WriteString("\tvar out: VertexOutput;\n")
	b.WriteString("\tout.clip_position = vec4<f32>(position, 1.0);\n")
	if o.FlipV {
		b.WriteString("\tout.uv = vec2<f32>(position.x * 0.5 + 0.5, 0.5 - position.y * 0.5);\n")
	} else {
		b.WriteString("\tout.uv = position.xy * 0.5 + vec2<f32>(0.5);\n")
	}
	b.WriteString("\treturn out;\n}\n\n")

	b.WriteString("@fragment\n")
	fmt.Fprintf(&b, "fn %s(in: VertexOutput) -> @location(0) vec4<f32> {\n", EntryFragment)
	if v.Gamma != shade.GammaNone {
		fmt.Fprintf(&b, "\treturn pow(textureSample(blit_texture, blit_sampler, in.uv), vec4<f32>(%g));\n", v.Gamma)
	} else {
		b.WriteString("\treturn textureSample(blit_texture, blit_sampler, in.uv);\n")
	}
	b.WriteString("}\n")

	return b.String()
}
