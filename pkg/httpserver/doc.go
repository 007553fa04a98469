// Package httpserver wraps net/http's Server with environment-driven
// configuration and graceful, signal-aware shutdown.
package httpserver
