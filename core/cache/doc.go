// Package cache provides the snapshot cache used by the catalog read path.
//
// The cache holds full-collection snapshots (all products, all categories)
// written after each successful sync cycle, each under a fixed key with a TTL.
// It is a derived, possibly-stale copy of the store; the store remains the
// sole source of truth.
//
// Two interchangeable backends implement the Cache interface:
//   - Memory: process-local map with per-entry expiry
//   - Redis: shared across service instances
//
// A clean miss is reported as ErrMiss so callers can tell "not cached" apart
// from "backend broken". The query engine treats both the same way (fall back
// to the store) but logs only the latter.
package cache
