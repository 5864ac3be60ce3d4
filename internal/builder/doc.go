// Package builder exposes the one operation of this module: turn a
// [Request] into a [Result] holding a deterministic, collision-checked
// output path and a status code.
//
// The cycle is probe → assemble → normalize → resolve collision, each step
// delegated to its own package (probe, naming, collide). The builder itself
// only sequences them and shapes the outcome.
//
// Each invocation is synchronous and owns its request/result pair; the only
// filesystem side effect is the probe's transient create-then-delete pair.
// Concurrent invocations against the same parent are the caller's problem to
// serialize (see the probe package for the TOCTOU caveat).
package builder
