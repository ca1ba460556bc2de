package render

// All programs share the vertex stage layout: clip distances are always
// written for all three planes; a disabled plane is passed as the
// sentinel (0,0,0,1), whose distance is 1 everywhere.

const shadedVertexSrc = `#version 410
uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;
uniform vec4 clipPlanes[3];

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;

out vec3 fragNormal;
out vec3 fragPos;

void main() {
	vec4 world = model * vec4(position, 1.0);
	gl_Position = proj * view * world;
	fragNormal = mat3(model) * normal;
	fragPos = world.xyz;
	for (int i = 0; i < 3; i++) {
		gl_ClipDistance[i] = dot(world.xyz, clipPlanes[i].xyz) + clipPlanes[i].w;
	}
}
`

const shadedFragmentSrc = `#version 410
uniform vec3 baseColor;
uniform vec3 eyePos;
uniform float opacity;

in vec3 fragNormal;
in vec3 fragPos;

out vec4 outColor;

const vec3 keyDir = normalize(vec3(0.4, 0.7, 0.6));

void main() {
	vec3 n = normalize(fragNormal);
	vec3 toEye = normalize(eyePos - fragPos);

	// Two-sided: clipped solids expose their interior
	if (dot(n, toEye) < 0.0) {
		n = -n;
	}

	float head = max(dot(n, toEye), 0.0);
	float key = max(dot(n, keyDir), 0.0);
	float light = 0.20 + 0.45 * head + 0.35 * key;
	outColor = vec4(baseColor * min(light, 1.0), opacity);
}
`

const flatVertexSrc = `#version 410
uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;
uniform vec4 clipPlanes[3];

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;

void main() {
	vec4 world = model * vec4(position, 1.0);
	gl_Position = proj * view * world;
	for (int i = 0; i < 3; i++) {
		gl_ClipDistance[i] = dot(world.xyz, clipPlanes[i].xyz) + clipPlanes[i].w;
	}
}
`

const flatFragmentSrc = `#version 410
uniform vec3 baseColor;
uniform float opacity;

out vec4 outColor;

void main() {
	outColor = vec4(baseColor, opacity);
}
`
