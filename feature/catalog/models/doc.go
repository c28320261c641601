// Package models defines the catalog domain types shared by the store, the
// snapshot cache and the HTTP surface.
package models
