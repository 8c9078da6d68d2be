package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"focustree/internal/audio"
	"focustree/internal/core/achievements"
	"focustree/internal/core/goals"
	"focustree/internal/core/history"
	"focustree/internal/core/model"
	"focustree/internal/core/stats"
	"focustree/internal/core/timer"
	"focustree/internal/platform"
	"focustree/internal/storage"
	"focustree/internal/ui/celebrate"
	"focustree/internal/ui/mainwindow"
	"focustree/internal/ui/presentation"
	"focustree/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "FocusTree"

const statsWindowDays = 7

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.focustree.app")

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v", err)
		settings = model.DefaultSettings()
	}

	store, err := storage.Open(appName)
	if err != nil {
		log.Printf("storage: %v", err)
		return
	}

	sessionLog := history.New(store)
	if err := sessionLog.Load(); err != nil {
		log.Printf("history: %v", err)
	}

	goalTracker := goals.New(store)
	if err := goalTracker.Load(); err != nil {
		log.Printf("goals: %v", err)
	}

	var storedBadges []achievements.Achievement
	if _, err := store.Get(achievements.StorageKey, &storedBadges); err != nil {
		log.Printf("achievements: %v", err)
	}
	badges := achievements.Merge(achievements.Catalog(), storedBadges)

	player, err := audio.NewPlayer()
	if err != nil {
		log.Printf("audio disabled: %v", err)
		player = nil
	}
	defer player.Close()

	countdown := timer.New(settings.FocusMinutes)
	defer countdown.Close()

	var mainWindow *mainwindow.Window
	var trayManager *tray.Manager
	var slides *presentation.Window
	var statusTimer *time.Timer

	burst := celebrate.New(celebrate.DefaultConfig(), func(particles []celebrate.Particle) {
		fyne.Do(func() {
			mainWindow.RenderParticles(particles)
		})
	})
	defer burst.Stop()

	saveSettings := func() {
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	}

	// setStatus shows a transient message in the window footer. UI thread only.
	setStatus := func(text string) {
		mainWindow.SetStatus(text)
		if statusTimer != nil {
			statusTimer.Stop()
		}
		statusTimer = time.AfterFunc(4*time.Second, func() {
			fyne.Do(func() {
				mainWindow.SetStatus("")
			})
		})
	}

	refreshViews := func() {
		sessions := sessionLog.Sessions()
		totalSessions := sessionLog.TotalSessions()
		totalMinutes := sessionLog.TotalMinutes()
		now := time.Now()

		mainWindow.SetSessions(sessions, totalSessions, totalMinutes)
		mainWindow.SetStats(
			stats.DailyMinutes(sessions, now, statsWindowDays),
			stats.DurationDistribution(sessions, 0),
			totalSessions,
			stats.AverageMinutes(sessions),
			stats.Streak(stats.CompletionTimes(sessions), now),
		)
		mainWindow.SetAchievements(badges, totalSessions, totalMinutes)
		mainWindow.SetGoals(goalTracker.Goal(), sessionLog.TodaySessions(), sessionLog.TodayMinutes())
	}

	// syncAmbient starts or stops the background loop from the current timer
	// and settings state. UI thread only.
	syncAmbient := func() {
		snapshot := countdown.Snapshot()
		if snapshot.State == timer.StateRunning && snapshot.Mode == timer.ModeFocus && settings.Ambient != model.AmbientNone {
			player.StartAmbient(settings.Ambient)
		} else {
			player.StopAmbient()
		}
	}

	selectDuration := func(minutes int) {
		countdown.SelectDuration(minutes)
		if countdown.Snapshot().TotalSeconds == minutes*60 {
			settings.FocusMinutes = minutes
			saveSettings()
		}
	}

	// evaluateBadges re-derives unlock state after a history change and
	// persists plus announces anything new. UI thread only.
	evaluateBadges := func() {
		updated, newlyUnlocked := achievements.Evaluate(badges, sessionLog.TotalSessions(), sessionLog.TotalMinutes(), time.Now())
		badges = updated
		if len(newlyUnlocked) == 0 {
			return
		}
		if err := store.Set(achievements.StorageKey, badges); err != nil {
			log.Printf("save achievements: %v", err)
		}
		for _, badge := range newlyUnlocked {
			fyneApp.SendNotification(fyne.NewNotification(
				"Achievement unlocked!",
				fmt.Sprintf("%s %s: %s", badge.Icon, badge.Title, badge.Description),
			))
		}
		last := newlyUnlocked[len(newlyUnlocked)-1]
		setStatus(fmt.Sprintf("Achievement unlocked: %s %s", last.Icon, last.Title))
	}

	exportHistory := func() {
		saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				setStatus(fmt.Sprintf("Export failed: %v", err))
				return
			}
			if writer == nil {
				return
			}
			defer writer.Close()

			data, err := sessionLog.ExportCSV()
			if err != nil {
				setStatus(fmt.Sprintf("Export failed: %v", err))
				return
			}
			if _, err := writer.Write(data); err != nil {
				setStatus(fmt.Sprintf("Export failed: %v", err))
				return
			}
			setStatus("History exported")
		}, mainWindow.Window())
		saveDialog.SetFileName(history.ExportFileName(time.Now()))
		saveDialog.Show()
	}

	toggleAutostart := func(enable bool) {
		if enable {
			execPath, err := os.Executable()
			if err != nil {
				setStatus(fmt.Sprintf("Autostart failed: %v", err))
				mainWindow.SetAutostart(false)
				return
			}
			if err := platform.EnableAutostart(appName, execPath); err != nil {
				setStatus(fmt.Sprintf("Autostart failed: %v", err))
				mainWindow.SetAutostart(false)
				return
			}
		} else {
			if err := platform.DisableAutostart(appName); err != nil {
				setStatus(fmt.Sprintf("Autostart failed: %v", err))
				mainWindow.SetAutostart(true)
				return
			}
		}
		settings.Autostart = enable
		saveSettings()
		mainWindow.SetAutostart(enable)
		if trayManager != nil {
			trayManager.SetAutostart(enable)
		}
	}

	autostartOn := platform.AutostartEnabled(appName)

	callbacks := mainwindow.Callbacks{
		OnStart: func() {
			countdown.Start()
		},
		OnPause: func() {
			countdown.Pause()
		},
		OnReset: func() {
			countdown.Reset()
		},
		OnSelectDuration: selectDuration,
		OnCustomDuration: func(text string) {
			minutes, err := timer.ParseCustomDuration(text)
			if err != nil {
				setStatus(fmt.Sprintf("Invalid duration: %v", err))
				return
			}
			selectDuration(minutes)
		},
		OnStartBreak: func(minutes int) {
			countdown.StartBreak(minutes)
			player.PlayBreak()
		},
		OnDeleteSession: func(id string) {
			sessionLog.Remove(id)
			refreshViews()
			setStatus("Session removed")
		},
		OnExportHistory: exportHistory,
		OnSaveGoals: func(sessionsText, minutesText string) {
			targetSessions, err := strconv.Atoi(sessionsText)
			if err != nil {
				setStatus("Invalid goal: sessions must be a number")
				return
			}
			targetMinutes, err := strconv.Atoi(minutesText)
			if err != nil {
				setStatus("Invalid goal: minutes must be a number")
				return
			}
			if err := goalTracker.Set(targetSessions, targetMinutes); err != nil {
				setStatus(fmt.Sprintf("Invalid goal: %v", err))
				return
			}
			mainWindow.CloseGoalEditor()
			mainWindow.SetGoals(goalTracker.Goal(), sessionLog.TodaySessions(), sessionLog.TodayMinutes())
			setStatus("Daily goal updated")
		},
		OnThemeChange: func(theme model.TreeTheme) {
			if theme == settings.TreeTheme {
				return
			}
			settings.TreeTheme = theme
			saveSettings()
			mainWindow.SetTheme(theme)
		},
		OnAmbientChange: func(sound model.AmbientSound) {
			if sound == settings.Ambient {
				return
			}
			settings.Ambient = sound
			saveSettings()
			syncAmbient()
		},
		OnToggleAutostart: toggleAutostart,
		OnShowPresentation: func() {
			slides.Show()
		},
	}

	mainWindow = mainwindow.New(fyneApp, settings, autostartOn, callbacks)
	slides = presentation.New(fyneApp)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, autostartOn, tray.Callbacks{
			OnShowWindow: func() {
				mainWindow.Show()
			},
			OnTogglePause: func() {
				switch countdown.Snapshot().State {
				case timer.StateRunning:
					countdown.Pause()
				case timer.StatePaused:
					countdown.Start()
				}
			},
			OnToggleAutostart: func() {
				toggleAutostart(!platform.AutostartEnabled(appName))
			},
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
	}

	applySnapshot := func() {
		snapshot := countdown.Snapshot()
		fyne.Do(func() {
			mainWindow.ApplyTimer(snapshot)
			syncAmbient()
			updateTray(trayManager, snapshot)
		})
	}

	events := countdown.Subscribe(16)
	go func() {
		for event := range events {
			switch event.Type {
			case timer.EventProgress, timer.EventStateChange:
				if event.Type == timer.EventProgress &&
					event.State == timer.StateRunning &&
					event.Mode == timer.ModeFocus &&
					event.Remaining > 0 && event.Remaining <= 10 {
					player.PlayTick()
				}
				applySnapshot()

			case timer.EventCompleted:
				if event.Mode == timer.ModeFocus {
					player.PlayCompletion()
					burst.Start(context.Background())
					fyneApp.SendNotification(fyne.NewNotification(
						"Focus session complete!",
						fmt.Sprintf("You focused for %d minutes. Your tree is fully grown.", event.Minutes),
					))
					minutes := event.Minutes
					fyne.Do(func() {
						sessionLog.Append(minutes)
						evaluateBadges()
						refreshViews()
						mainWindow.NewQuote()
						setStatus(fmt.Sprintf("Session complete: %d minutes", minutes))
					})
				} else {
					player.PlayBreak()
					fyneApp.SendNotification(fyne.NewNotification(
						"Break over",
						"Ready for your next focus session?",
					))
				}
				applySnapshot()
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			countdown.Tick()
		}
	}()

	// Catch up on unlocks earned in a previous run but never persisted.
	evaluateBadges()
	refreshViews()
	mainWindow.ApplyTimer(countdown.Snapshot())
	if trayManager != nil {
		trayManager.SetIdle()
	}

	mainWindow.Show()
	fyneApp.Run()
}

func updateTray(trayManager *tray.Manager, snapshot timer.Snapshot) {
	if trayManager == nil {
		return
	}
	switch snapshot.State {
	case timer.StateRunning:
		trayManager.SetRunning(true)
		trayManager.SetStatus(fmt.Sprintf("%s %s", formatRemaining(snapshot.RemainingSeconds), snapshot.Mode))
	case timer.StatePaused:
		trayManager.SetRunning(false)
		trayManager.SetStatus(fmt.Sprintf("%s paused", formatRemaining(snapshot.RemainingSeconds)))
	default:
		trayManager.SetIdle()
		trayManager.SetStatus(string(snapshot.State))
	}
}

func formatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
