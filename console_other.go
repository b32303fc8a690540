//go:build !windows

package main

func hideAndDetachConsoleForGUI() {}
