//go:build windows

package main

import "golang.org/x/sys/windows"

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
	procShowWindow       = user32.NewProc("ShowWindow")
)

const swHide = 0

// hideAndDetachConsoleForGUI hides the console a double-clicked binary opens
// alongside the Aqua Land window, then lets it go.
func hideAndDetachConsoleForGUI() {
	if hwnd, _, _ := procGetConsoleWindow.Call(); hwnd != 0 {
		_, _, _ = procShowWindow.Call(hwnd, swHide)
	}
	_, _, _ = procFreeConsole.Call()
}
