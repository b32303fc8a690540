package headless

import (
	zone "github.com/lrstanley/bubblezone"

	headlessview "aqualand/internal/ui/headless/view"
)

// View is the Bubble Tea render entrypoint; rendering is delegated to the pure view package.
func (m *headlessModel) View() string {
	return zone.Scan(headlessview.RenderApp(&m.ui, m.session.Presentation()))
}
