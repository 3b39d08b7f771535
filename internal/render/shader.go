package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"meshview/internal/material"
)

// Lit shader for the window backend: one directional light plus ambient,
// with the specular term driven by the preset's metallic/roughness
// factors. Vertex attributes match raylib meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform float specularPower;
uniform float specularStrength;
uniform float metallic;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * (1.0 - 0.5 * metallic);
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specColor = mix(vec3(1.0), tint.rgb, metallic);
  vec3 specular = specColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient keeps shadowed faces from going pure black.
var defaultAmbient = [4]float32{0.18, 0.2, 0.24, 1.0}

// lightDirection is the direction to the light, normalized at use.
var lightDirection = [3]float32{-0.6, 1, 0.4}

func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

// setLitUniforms pushes per-frame uniforms (camera) and the preset-derived
// shading factors. Roughness widens the highlight by lowering the
// exponent; metallic tints it with the base color.
func setLitUniforms(shader rl.Shader, viewPos rl.Vector3, p material.Preset) {
	if !rl.IsShaderValid(shader) {
		return
	}
	view := []float32{viewPos.X, viewPos.Y, viewPos.Z}
	light := []float32{lightDirection[0], lightDirection[1], lightDirection[2]}
	amb := defaultAmbient[:]
	power := float32(4 + (1-p.Roughness)*(1-p.Roughness)*96)
	strength := float32(0.1 + 0.6*p.Metallic)
	metallic := float32(p.Metallic)

	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, view, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, light, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb, rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{power}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{strength}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "metallic"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{metallic}, rl.ShaderUniformFloat)
	}
}
