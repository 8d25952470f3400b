// Package auth issues and validates the signed tokens that identify a
// tracker session. A token carries only the session ID; all session state
// stays in memory on the server.
package auth
