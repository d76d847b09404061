// Package memo provides memoization utilities for pure functions.
//
// Memoize is not just a utility to avoid recomputation.
// Memoize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lookup table?"
//
// That question is not about performance—it's about trust and meaning.
// A function worth memoizing is a function you can reason about equationally.
//
// The centerpiece is the MemoizeIxOy family, typed generic wrappers that cache
// a pure function's results keyed by its ordered argument values. These
// functions assume purity—not just determinism, but referential
// transparency—and guarantee that the wrapped function runs at most once per
// argument tuple, even under concurrent first access.
//
// Features:
//   - MemoizeI1O1 to MemoizeI3O2: typed, generic memoizers for common arities.
//   - MemoizeI1E to MemoizeI3E: error-aware variants; failures propagate
//     unchanged and are never cached, so a later call retries.
//   - Trie-based cache keyed by argument sequence, unbounded by default,
//     with optional dual-map rotation for bounded memory.
//   - Pluggable Store backends, including a ristretto-backed bounded store
//     and a hash-sharded store for hot tables.
//   - Singleflight-collapsed first computations for the at-most-once
//     guarantee, safe for recursive memoization.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time,
// I/O, or shared mutable state).
package memo
