// Package generator wires the manifest, resolver, and code emitter
// together. It resolves every constant's fallback chain, logs each skipped
// source, and writes the generated file only after the whole manifest has
// resolved, so a failing constant never leaves a partial file behind.
package generator
