// Package middleware groups Fiber middlewares used by the HTTP surface.
package middleware
