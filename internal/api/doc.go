// Package api exposes a tracker session over HTTP. Handlers translate
// requests into session operations and map session, domain and token errors
// to status codes with messages that are safe to show to clients.
package api
