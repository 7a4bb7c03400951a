// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"feedscroll/internal/bridge"
	"feedscroll/internal/config"
	"feedscroll/internal/hotkey"
	"feedscroll/internal/i18n"
	"feedscroll/internal/input"
	"feedscroll/internal/listener"
	"feedscroll/internal/logging"
	"feedscroll/internal/notify"
	"feedscroll/internal/tray"
)

// App связывает источник событий, мост, уведомления и трей.
type App struct {
	config   *config.Config
	log      *logging.Logger
	bindings hotkey.Bindings
	bridge   *bridge.Bridge
	listener *listener.Listener
	notifier *notify.Notifier
	tray     *tray.Tray
	out      io.Writer
}

// New создаёт приложение с бэкендами из конфигурации.
func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	scroller, err := input.New(input.Backend(cfg.Scroller()))
	if err != nil {
		return nil, fmt.Errorf("scroll backend: %w", err)
	}
	src, err := listener.New(listener.Kind(cfg.Source()))
	if err != nil {
		return nil, fmt.Errorf("event source: %w", err)
	}
	return newApp(cfg, logger, scroller, src, os.Stdout)
}

func newApp(cfg *config.Config, logger *logging.Logger, scroller input.Scroller, src listener.Source, out io.Writer) (*App, error) {
	a := &App{
		config:   cfg,
		log:      logger,
		bindings: hotkey.DefaultBindings(),
		listener: listener.NewListener(src, logger.Logger),
		notifier: notify.New(cfg.NotificationsEnabled()),
		out:      out,
	}

	if cfg.TrayEnabled() {
		a.tray = tray.New(tray.Callbacks{
			OnNotificationsToggle: func() bool {
				enabled := a.config.ToggleNotifications()
				a.notifier.SetEnabled(enabled)
				return enabled
			},
			OnQuit: func() {
				a.bridge.Stop(bridge.ReasonQuit)
			},
		}, cfg.NotificationsEnabled())
	}

	b, err := bridge.New(bridge.Options{
		Scroller:      scroller,
		Amount:        cfg.ScrollAmount(),
		Bindings:      a.bindings,
		Logger:        logger.Logger,
		Debug:         logger.DebugEnabled(),
		PollInterval:  cfg.PollInterval(),
		OnStop:        a.onStop,
		OnScrollError: a.notifier.ScrollFailed,
		OnScroll: func(s bridge.Stats) {
			if a.tray != nil {
				a.tray.SetScrolls(s.Scrolls)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	a.bridge = b
	return a, nil
}

// Run блокируется до остановки моста. С треем главный поток занимает systray.
func (a *App) Run(ctx context.Context) error {
	if a.tray == nil {
		return a.serve(ctx)
	}

	errCh := make(chan error, 1)
	a.tray.Run(func() {
		go func() {
			errCh <- a.serve(ctx)
			a.tray.Quit()
		}()
	})
	return <-errCh
}

func (a *App) serve(ctx context.Context) error {
	if err := a.listener.Start(); err != nil {
		a.bridge.Stop(bridge.ReasonSource)
		return err
	}
	if a.tray != nil {
		a.tray.SetState(tray.StateListening)
	}

	a.printBanner()
	a.notifier.Started(hotkey.Label(a.bindings.Scroll), a.bindings.Quit.String())
	a.log.Info("Слушаю клавиатуру",
		"source", a.config.Source(),
		"scroller", a.config.Scroller(),
		"amount", a.bridge.Amount(),
		"debug", a.log.DebugEnabled(),
	)

	served := make(chan error, 1)
	go func() {
		err := a.listener.Serve(ctx, a.bridge)
		// источник закрылся сам (например, клавиатуру отключили)
		a.bridge.Stop(bridge.ReasonSource)
		served <- err
	}()

	if err := a.bridge.Wait(ctx); err != nil {
		return err
	}
	err := <-served

	stats := a.bridge.Stats()
	a.log.Info("Итого", "scrolls", stats.Scrolls, "failures", stats.Failures, "reason", string(a.bridge.Reason()))
	fmt.Fprintln(a.out, i18n.T("banner_stopped"))
	return err
}

func (a *App) onStop(reason bridge.Reason) {
	a.listener.Stop()
	if a.tray != nil {
		a.tray.SetState(tray.StateStopped)
	}
	if reason != bridge.ReasonSource {
		a.notifier.Stopped()
	}
}

func (a *App) printBanner() {
	fmt.Fprintln(a.out, i18n.T("banner_started"))
	fmt.Fprintln(a.out, i18n.T("banner_usage"))
	fmt.Fprintln(a.out, "  • "+i18n.Tf("banner_scroll", hotkey.Label(a.bindings.Scroll), a.bridge.Amount()))
	fmt.Fprintln(a.out, "  • "+i18n.Tf("banner_quit", a.bindings.Quit.String()))
	fmt.Fprintln(a.out, "  • "+i18n.T("banner_focus"))
	fmt.Fprintln(a.out, i18n.T("banner_waiting"))
}

// StartupReport формирует текст ошибки запуска с подсказками по исправлению.
func StartupReport(err error) string {
	var b strings.Builder
	b.WriteString(i18n.T("error_startup"))
	b.WriteString(": ")
	b.WriteString(err.Error())

	hints := listener.HintKeys(err)
	if len(hints) == 0 {
		hints = []string{"hint_elevated", "hint_reinstall"}
	}
	b.WriteString("\n")
	b.WriteString(i18n.T("error_hints"))
	for _, h := range hints {
		b.WriteString("\n  - ")
		b.WriteString(i18n.T(h))
	}
	return b.String()
}
