// Package session owns the per-user task tracker state.
//
// A Session holds one pending priority queue and one completed-task stack and
// is the only code that moves tasks between them. Completing a task takes it
// out of the queue before pushing it onto the stack, and undoing takes it off
// the stack before inserting it back into the queue, so a task always has
// exactly one owner.
//
// A Manager creates sessions, hands them out by ID and discards them when they
// are ended explicitly or have been idle for too long. Sessions never share
// state with each other.
package session
