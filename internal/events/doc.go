// Package events publishes task lifecycle notifications.
//
// Sessions emit an event whenever a task is added, completed or reopened and
// whenever a session starts or ends. Handlers subscribe without the session
// knowing who they are, which keeps logging and metrics out of the core.
//
// The primary components are:
// - TaskEvent: a single lifecycle notification
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
