// Package tray manages the system tray menu when the platform provides one.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWindow      func()
	OnTogglePause     func()
	OnToggleAutostart func()
	OnQuit            func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	pauseItem     *fyne.MenuItem
	autostartItem *fyne.MenuItem
	callbacks     Callbacks
	running       bool
	statusLabel   string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, autostartEnabled bool, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})
	manager.pauseItem.Disabled = true

	manager.autostartItem = fyne.NewMenuItem("Launch at login", func() {
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart()
		}
	})
	manager.autostartItem.Checked = autostartEnabled

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label shown at the top of the menu.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning toggles the pause item between Pause and Resume.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.pauseItem.Label = "Pause"
	} else {
		manager.pauseItem.Label = "Resume"
	}
	manager.pauseItem.Disabled = false
	manager.refreshMenu()
}

// SetIdle disables the pause item while no session is underway.
func (manager *Manager) SetIdle() {
	manager.pauseItem.Label = "Pause"
	manager.pauseItem.Disabled = true
	manager.refreshMenu()
}

// SetAutostart updates the launch-at-login checkmark.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostartItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("FocusTree",
		manager.statusItem,
		fyne.NewMenuItem("Open FocusTree", func() {
			if manager.callbacks.OnShowWindow != nil {
				manager.callbacks.OnShowWindow()
			}
		}),
		manager.pauseItem,
		manager.autostartItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
