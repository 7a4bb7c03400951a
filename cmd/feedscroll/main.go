// FeedScroll - прокрутка ленты коротких видео с клавиатуры.
//
// Слушает глобальные нажатия: стрелка вниз прокручивает колесо мыши,
// Ctrl+Esc завершает работу.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"feedscroll/internal/app"
	"feedscroll/internal/config"
	"feedscroll/internal/dialog"
	"feedscroll/internal/hotkey"
	"feedscroll/internal/i18n"
	"feedscroll/internal/logging"
	"feedscroll/internal/notify"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	code := 0
	// Запускаем в главном потоке (требование для macOS и трея)
	hotkey.RunOnMainThread(func() {
		code = run()
	})
	os.Exit(code)
}

func run() int {
	cfg := config.New()
	langApplied := i18n.SetLanguage(i18n.Language(cfg.UILanguage()))

	logger, err := logging.New(logging.Options{Format: cfg.LogFormat()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	logger.Info("FeedScroll запускается", "version", Version, "lang", i18n.LanguageName(i18n.GetLanguage()))
	if !langApplied {
		logger.Warn("Язык интерфейса не поддерживается", "lang", cfg.UILanguage())
	}
	for _, w := range cfg.Warnings() {
		logger.Warn("Проблема в конфигурации, используются значения по умолчанию", "path", cfg.Path(), "problem", w)
	}

	if dialog.AskDebug(cfg.Prompt()) {
		logger.SetDebug(true)
		logger.Debug("Режим отладки включён")
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		return fail(cfg, logger, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		return fail(cfg, logger, err)
	}
	return 0
}

func fail(cfg *config.Config, logger *logging.Logger, err error) int {
	logger.Error("Ошибка запуска", "error", err)
	report := app.StartupReport(err)
	fmt.Fprintln(os.Stderr, report)
	notify.New(cfg.NotificationsEnabled()).Error(i18n.T("error_startup") + ": " + err.Error())
	if cfg.Prompt() == config.PromptDialog {
		dialog.ShowError(i18n.T("error_title"), report)
	}
	return 1
}
