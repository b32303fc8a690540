//go:build !headless

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"aqualand/internal/game"
)

func (c *controller) setupTray() {
	desk, ok := c.app.(desktop.App)
	if !ok {
		c.logger.Debug("system tray not supported by driver")
		return
	}
	desk.SetSystemTrayIcon(aquaIconResource())

	openItem := fyne.NewMenuItem("Mostrar janela", func() {
		c.win.Show()
		c.win.RequestFocus()
	})
	items := []*fyne.MenuItem{openItem, fyne.NewMenuItemSeparator()}
	for _, b := range game.Buttons(c.layout) {
		action := b.Action
		items = append(items, fyne.NewMenuItem(b.Layout.Label, func() {
			c.queue(action)
		}))
	}
	quitItem := fyne.NewMenuItem("Sair", c.quitApp)
	quitItem.IsQuit = true
	items = append(items, fyne.NewMenuItemSeparator(), quitItem)
	desk.SetSystemTrayMenu(fyne.NewMenu(c.layout.Title, items...))
}
