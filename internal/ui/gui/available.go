//go:build !headless

package gui

func Available() bool { return true }
