package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"dotsandboxes/pkg/music"
)

func buildMainMenu(ui *BoardUI) *fyne.MainMenu {
	restartMenuItem := &fyne.MenuItem{
		Label:    "Restart",
		Shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierShortcutDefault},
		Action: func() {
			ui.Restart()
		},
	}

	musicMenuItem := &fyne.MenuItem{}
	musicLabel := func() string {
		if music.Open {
			return "Music OFF"
		}
		return "Music ON"
	}
	musicMenuItem.Label = musicLabel()
	musicMenuItem.Action = func() {
		music.Open = !music.Open
		musicMenuItem.Label = musicLabel()
		ui.window.MainMenu().Refresh()
	}

	quitMenuItem := &fyne.MenuItem{
		Label:    "Quit",
		IsQuit:   true,
		Shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierShortcutDefault},
		Action: func() {
			fyne.CurrentApp().Quit()
		},
	}

	return fyne.NewMainMenu(fyne.NewMenu("Game",
		restartMenuItem,
		musicMenuItem,
		fyne.NewMenuItemSeparator(),
		quitMenuItem,
	))
}
