// Package domain contains the task entity, its priority scale and the
// orderings used by the rest of the application. It has no knowledge of how
// tasks are stored, transported or rendered.
package domain
