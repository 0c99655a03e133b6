// Package httpserver runs the site's HTTP listener with graceful shutdown
// on context cancellation or OS signals, plus probe handlers for liveness
// and readiness.
package httpserver
