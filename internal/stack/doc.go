// Package stack provides a slice-backed LIFO container.
package stack
