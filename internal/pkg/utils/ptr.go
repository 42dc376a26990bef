// Package utils holds small helpers shared across the module.
package utils

// Ptr returns a pointer to v. Useful for building partial updates and
// filter literals.
func Ptr[T any](v T) *T {
	return &v
}
