package app

import (
	"context"
	"errors"
	"fmt"

	"drag-threshold/internal/config"
	"drag-threshold/internal/dragthreshold"
	"drag-threshold/internal/eventsystem"
	"drag-threshold/internal/host"
	"drag-threshold/internal/logger"
	"drag-threshold/internal/shutdown"
	"drag-threshold/internal/threshold"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Drag Threshold"
	AppID      = "com.dragthreshold.app"
	AppVersion = "1.0.0"

	WindowWidth  = 420
	WindowHeight = 260
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	view    *View
	logger  logger.Logger

	events    *eventsystem.EventSystem
	display   *host.Display
	component *dragthreshold.Component

	configPath string
	lifecycle  *Lifecycle
}

// NewApplication wires the component into a new Fyne window. configPath may
// be empty; when set and watch is true, edits to the file re-trigger the
// threshold update.
func NewApplication(ctx context.Context, settings config.Settings, configPath string, watch bool, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	return newApplication(ctx, fyneApp, settings, configPath, watch, log)
}

func newApplication(ctx context.Context, fyneApp fyne.App, settings config.Settings, configPath string, watch bool, log logger.Logger) (*Application, error) {
	if watch && configPath == "" {
		return nil, errors.New("watching requires a config file")
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	events := eventsystem.New()
	display := &host.Display{Canvas: window.Canvas(), Override: settings.ScreenDPI}
	component := dragthreshold.New(settings.Threshold, display, events,
		dragthreshold.WithResolver(host.NewResolver(window, fyneApp.Driver())),
		dragthreshold.WithLogger(log),
		dragthreshold.WithPath(AppName+"/EventSystem"),
	)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       NewView(),
		logger:     log,
		events:     events,
		display:    display,
		component:  component,
		configPath: configPath,
	}

	manager := shutdown.NewManager(ctx, log)
	a.lifecycle = NewLifecycle(manager, log)
	if watch {
		a.lifecycle.StartWatcher(config.NewWatcher(configPath, log, a.handleReload))
	}

	events.OnChange(a.view.ShowThreshold)
	a.view.SetReapplyHandler(a.handleReapply)
	window.SetContent(a.view.Content())

	log.Info("Application", "application initialized", map[string]interface{}{
		"version": AppVersion,
		"config":  configPath,
		"watch":   watch,
		"units":   settings.Threshold.Units.String(),
	})

	return a, nil
}

// Start runs the component's one-time initialization and fills the view.
func (a *Application) Start() {
	a.view.ShowConfig(a.component.Config())
	a.view.ShowThreshold(a.events.PixelDragThreshold())
	a.apply()
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})
	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.Show()
	a.Start()

	a.fyneApp.Run()
	a.lifecycle.Shutdown()
	return nil
}

// EventSystem is the consumer the component writes to.
func (a *Application) EventSystem() *eventsystem.EventSystem {
	return a.events
}

func (a *Application) apply() {
	result, err := a.component.UpdateDragThreshold()

	scale := 0.0
	if c := a.component.Canvas(); c != nil {
		scale = c.ScaleFactor()
	} else if wc := a.window.Canvas(); wc != nil {
		scale = float64(wc.Scale())
	}
	a.view.ShowDevice(a.display.ScreenDPI(), scale)

	if err != nil {
		a.view.ShowStatus(fmt.Sprintf("Threshold unchanged: %v", err))
		return
	}
	a.view.ShowStatus(fmt.Sprintf("Applied %s", a.component.Config().Units))
	a.logger.Debug("Application", "drag threshold applied", map[string]interface{}{
		"pixels": result.Pixels,
	})
}

func (a *Application) handleReapply(distance float64, units threshold.Units) {
	cfg := a.component.Config()
	cfg.Distance = distance
	cfg.Units = units
	a.component.SetConfig(cfg)
	a.apply()
}

func (a *Application) handleReload(settings config.Settings) {
	fyne.Do(func() {
		a.logger.Info("Application", "config reloaded", map[string]interface{}{
			"path":  a.configPath,
			"units": settings.Threshold.Units.String(),
		})
		a.display.Override = settings.ScreenDPI
		a.component.SetConfig(settings.Threshold)
		a.view.ShowConfig(settings.Threshold)
		a.apply()
	})
}
