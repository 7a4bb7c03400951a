// Package config предоставляет конфигурацию приложения из файла рядом с бинарником.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"feedscroll/internal/i18n"
)

// FileName - имя файла конфигурации рядом с бинарником.
const FileName = "config.json"

// Prompt - способ спросить про режим отладки при запуске.
type Prompt string

const (
	PromptTerminal Prompt = "terminal"
	PromptDialog   Prompt = "dialog"
	PromptNone     Prompt = "none"
)

// Значения по умолчанию.
const (
	DefaultScrollAmount = 3
	DefaultPollInterval = 100 * time.Millisecond
	DefaultSource       = "hook"
	DefaultScroller     = "robotgo"
	DefaultLogFormat    = "text"
	DefaultUILanguage   = "en"
)

// configData структура для сериализации.
type configData struct {
	ScrollAmount   *int   `json:"scroll_amount,omitempty"`
	UILanguage     string `json:"ui_language,omitempty"`
	Notifications  *bool  `json:"notifications,omitempty"`
	Tray           bool   `json:"tray,omitempty"`
	Source         string `json:"source,omitempty"`
	Scroller       string `json:"scroller,omitempty"`
	Prompt         Prompt `json:"prompt,omitempty"`
	LogFormat      string `json:"log_format,omitempty"`
	PollIntervalMS int    `json:"poll_interval_ms,omitempty"`
}

// Config хранит настройки приложения. Файл только читается.
type Config struct {
	mu            sync.RWMutex
	scrollAmount  int
	uiLanguage    string
	notifications bool
	tray          bool
	source        string
	scroller      string
	prompt        Prompt
	logFormat     string
	pollInterval  time.Duration
	configPath    string
	warnings      []string
}

// Default возвращает конфигурацию по умолчанию без чтения файла.
func Default() *Config {
	return &Config{
		scrollAmount:  DefaultScrollAmount,
		uiLanguage:    DefaultUILanguage,
		notifications: true,
		source:        DefaultSource,
		scroller:      DefaultScroller,
		prompt:        PromptTerminal,
		logFormat:     DefaultLogFormat,
		pollInterval:  DefaultPollInterval,
	}
}

// New создаёт конфигурацию, загружая config.json рядом с бинарником.
func New() *Config {
	// Определяем путь к файлу конфигурации рядом с бинарником
	execPath, err := os.Executable()
	if err == nil {
		// Резолвим симлинки
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			return Load(filepath.Join(filepath.Dir(execPath), FileName))
		}
	}
	return Default()
}

// Load читает конфигурацию из path. Отсутствующий файл не ошибка.
func Load(path string) *Config {
	c := Default()
	c.configPath = path
	c.load()
	return c
}

// load загружает конфигурацию из файла.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.warn("read %s: %v", c.configPath, err)
		}
		return // Файл не существует, используем defaults
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		c.warn("parse %s: %v", c.configPath, err)
		return
	}

	if cfg.ScrollAmount != nil {
		if *cfg.ScrollAmount < 0 {
			c.warn("scroll_amount must be >= 0, got %d", *cfg.ScrollAmount)
		} else {
			c.scrollAmount = *cfg.ScrollAmount
		}
	}
	if cfg.UILanguage != "" {
		lang := strings.ToLower(cfg.UILanguage)
		if oneOf(lang, languages()) {
			c.uiLanguage = lang
		} else {
			c.warn("unknown ui_language %q", cfg.UILanguage)
		}
	}
	if cfg.Notifications != nil {
		c.notifications = *cfg.Notifications
	}
	c.tray = cfg.Tray
	if cfg.Source != "" {
		if src := strings.ToLower(cfg.Source); oneOf(src, sources) {
			c.source = src
		} else {
			c.warn("unknown source %q", cfg.Source)
		}
	}
	if cfg.Scroller != "" {
		if sc := strings.ToLower(cfg.Scroller); oneOf(sc, scrollers) {
			c.scroller = sc
		} else {
			c.warn("unknown scroller %q", cfg.Scroller)
		}
	}
	switch cfg.Prompt {
	case "":
	case PromptTerminal, PromptDialog, PromptNone:
		c.prompt = cfg.Prompt
	default:
		c.warn("unknown prompt %q", cfg.Prompt)
	}
	switch f := strings.ToLower(cfg.LogFormat); f {
	case "":
	case "text", "json":
		c.logFormat = f
	default:
		c.warn("unknown log_format %q", cfg.LogFormat)
	}
	if cfg.PollIntervalMS < 0 {
		c.warn("poll_interval_ms must be positive, got %d", cfg.PollIntervalMS)
	} else if cfg.PollIntervalMS > 0 {
		c.pollInterval = time.Duration(cfg.PollIntervalMS) * time.Millisecond
	}
}

// Допустимые значения source и scroller.
var (
	sources   = []string{"hook", "evdev"}
	scrollers = []string{"robotgo", "xdotool"}
)

func languages() []string {
	langs := i18n.AvailableLanguages()
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, string(l))
	}
	return names
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func (c *Config) warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	return c.configPath
}

// Warnings возвращает проблемы, найденные при загрузке.
func (c *Config) Warnings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.warnings...)
}

// ScrollAmount возвращает шаг прокрутки.
func (c *Config) ScrollAmount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scrollAmount
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// ToggleNotifications переключает уведомления до конца сеанса.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	return c.notifications
}

// TrayEnabled возвращает true если нужна иконка в трее.
func (c *Config) TrayEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tray
}

// Source возвращает имя источника событий клавиатуры.
func (c *Config) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Scroller возвращает имя бэкенда прокрутки.
func (c *Config) Scroller() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scroller
}

// Prompt возвращает способ запроса режима отладки.
func (c *Config) Prompt() Prompt {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prompt
}

// LogFormat возвращает формат логов.
func (c *Config) LogFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logFormat
}

// PollInterval возвращает период опроса флага работы.
func (c *Config) PollInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pollInterval
}
