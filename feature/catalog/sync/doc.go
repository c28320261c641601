// Package sync keeps the catalog store and snapshot cache loosely in step
// with the external ERP feed.
//
// Each cycle runs fetch -> reconcile -> snapshot-refresh for one catalog type
// (products or categories). Reconciliation is accretive: entities missing
// from the feed are never deleted, and re-applying the same feed is a no-op.
// The reconcile batch commits atomically; the snapshot write that follows is
// a separate step, so readers may observe the previous snapshot briefly.
//
// The Scheduler drives cycles from per-type cron expressions and uses a
// singleflight guard so cycles of the same type never overlap.
package sync
