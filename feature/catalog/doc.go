// Package catalog implements the catalog query feature.
//
// It answers paginated, filtered catalog queries through a cache-aside read
// path: list queries consult the snapshot cache first and fall back to the
// persistent store with byte-for-byte equivalent filter semantics, while
// single-entity lookups always go straight to the store.
//
// # Components
//
//   - Store: the persistent catalog store (GORM/MySQL) with batch-atomic upserts.
//   - Filter: one filter contract applied identically in memory and as SQL.
//   - Service: the query engine, validating parameters before any I/O.
//   - Handler: exposes the query engine over HTTP.
//   - sync (subpackage): the periodic feed->store->snapshot sync cycle.
//
// # HTTP Endpoints
//
//   - GET /products : Filtered, paginated product listing.
//   - GET /products/:id : Single product lookup.
//   - GET /categories : Paginated category listing.
//   - GET /categories/:id : Single category lookup.
package catalog
