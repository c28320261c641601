// Package feed retrieves catalog documents from the external ERP.
//
// A Source turns a configured path into raw bytes (HTTP endpoint or object
// storage bucket); Records decodes those bytes into a typed collection. The
// fetcher has no side effects beyond the network call and never returns a
// partial collection: on any failure the whole fetch fails.
package feed
