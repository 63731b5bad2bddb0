// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 tably Contributors

package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/tably/tably/pkg/config"
	"github.com/tably/tably/pkg/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash handles flash messages in the application.
type Flash struct {
	*tview.TextView

	app    *App
	cancel context.CancelFunc
	mx     sync.Mutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := &Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)

	return f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...interface{}) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...interface{}) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.stopTimer()
	f.update(func() {
		f.TextView.Clear()
	})
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	f.stopTimer()
	if msg == "" {
		f.Clear()
		return
	}

	f.update(func() {
		f.TextView.Clear()
		f.SetTextColor(flashColor(level))
		fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), msg)
	})

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()
	go f.autoClear(ctx)
}

// update runs through the app draw queue when attached to one.
func (f *Flash) update(fn func()) {
	if f.app != nil {
		f.app.QueueUpdateDraw(fn)
		return
	}
	fn()
}

func (f *Flash) stopTimer() {
	f.mx.Lock()
	defer f.mx.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(FlashDelay):
		f.Clear()
	}
}

func flashColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return tcell.ColorYellow
	case FlashErr:
		return tcell.ColorRed
	default:
		return tcell.ColorGreen
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "[WARN]"
	case FlashErr:
		return "[ERROR]"
	default:
		return "[INFO]"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application

	version   string
	cfg       *config.Config
	Main      *tview.Pages
	content   ui.Component
	menu      *ui.Menu
	indicator *ui.SortIndicator
	flash     *Flash
	running   bool
	mx        sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, version string) *App {
	app := &App{
		Application: tview.NewApplication(),
		version:     version,
		cfg:         cfg,
		Main:        tview.NewPages(),
	}

	app.flash = NewFlash(app)
	app.menu = ui.NewMenu()
	app.indicator = ui.NewSortIndicator()
	app.content = NewFleetView(app, cfg.Tably)

	app.Application.SetInputCapture(app.keyboard)
	app.Application.EnableMouse(cfg.Tably.Mouse)

	return app
}

// Init initializes and builds the application layout.
func (a *App) Init() error {
	if err := a.content.Init(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize %s view: %w", a.content.Name(), err)
	}
	a.menu.HydrateMenu(a.content.Hints())

	layout := a.buildLayout()
	a.Main.AddPage("main", layout, true, true)
	a.SetRoot(a.Main, true)
	a.SetFocus(a.content)

	return nil
}

// Run starts the application.
func (a *App) Run() error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	a.content.Start()
	a.flash.Infof("Welcome to %s v%s", config.AppName, a.version)

	return a.Application.Run()
}

// Stop stops the application.
func (a *App) Stop() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.content.Stop()
	a.running = false
	a.Application.Stop()
}

// IsRunning returns whether the application is currently running.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.running
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Content returns the main content component.
func (a *App) Content() ui.Component {
	return a.content
}

// QueueUpdateDraw queues a function to be executed on the UI thread.
func (a *App) QueueUpdateDraw(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

// buildLayout creates the main UI layout.
func (a *App) buildLayout() *tview.Flex {
	statusBar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.indicator, 1, 0, false).
		AddItem(a.flash, 1, 0, false).
		AddItem(a.menu, 2, 0, false)

	main := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.content, 0, 1, true).
		AddItem(statusBar, 4, 0, false)

	return main
}

// keyboard handles global keyboard events.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := evt.Key()
	if key == tcell.KeyRune {
		if evt.Rune() == 'q' {
			a.Stop()
			return nil
		}
		return evt
	}

	switch key {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyCtrlR:
		a.refreshContent()
		return nil
	}

	return evt
}

// refreshContent forces a redraw of the current view.
func (a *App) refreshContent() {
	if r, ok := a.content.(interface{ Refresh() }); ok {
		a.flash.Info("Refreshed")
		r.Refresh()
	}
}
