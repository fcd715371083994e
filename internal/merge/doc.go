// Package merge patches generated TypeScript sources without parsing them.
//
// Every operation is anchored to structure the base templates always
// contain: the import block, the defineConfig({ opener, a plugins array,
// a vite or server block. When the anchor is missing the content is
// returned unchanged. Callers that care compare input and output.
//
// Operations are idempotent against their own output: re-applying an
// import, a plugin call or a config key that is already present is a no-op.
package merge
