//go:build !headless

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"aqualand/internal/ui/gui"
)

func showAlreadyRunningDialog() {
	uiApp := app.New()
	icon := gui.AppIconResource()
	uiApp.SetIcon(icon)
	win := uiApp.NewWindow("Aqua Land")
	win.SetFixedSize(true)

	badge := canvas.NewImageFromResource(icon)
	badge.FillMode = canvas.ImageFillContain
	badge.SetMinSize(fyne.NewSize(48, 48))
	message := widget.NewLabel("Aqua Land is already running.\nClose the other window or use its tray menu.")
	ok := widget.NewButton("OK", uiApp.Quit)
	ok.Importance = widget.HighImportance
	buttonBar := container.NewHBox(layout.NewSpacer(), container.NewGridWrap(fyne.NewSize(104, 34), ok))

	win.SetContent(container.NewPadded(container.NewBorder(nil, buttonBar, badge, nil, message)))
	win.SetCloseIntercept(uiApp.Quit)
	win.Show()
	uiApp.Run()
}
