//go:build raylib

package raylib

func Available() bool { return true }
