//go:build !windows

package platform

// Default returns the policy for the current platform family.
func Default() Policy { return Posix() }
