// Package i18n provides internationalization support.
package i18n

import (
	"fmt"
	"sync"
)

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	RU Language = "ru"
	ZH Language = "zh"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":    "FeedScroll",
		"app_tooltip": "FeedScroll - scroll the feed from the keyboard",

		// Console banner
		"banner_started": "FeedScroll is running",
		"banner_usage":   "How to use:",
		"banner_scroll":  "press %s to scroll down by %d",
		"banner_quit":    "press %s to quit",
		"banner_focus":   "keep the target window focused",
		"banner_waiting": "Waiting for keys...",
		"banner_stopped": "FeedScroll stopped",

		// Startup prompt
		"prompt_debug":       "Enable debug logging of every key event?",
		"prompt_debug_title": "FeedScroll - debug mode",
		"prompt_yes_no":      "[y/N]",

		// Tray menu
		"tray_ready":              "Listening",
		"tray_scrolls":            "Scrolled %d times",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Stop listening and exit",

		// Notifications
		"notify_started":       "Listening: %s scrolls, %s quits",
		"notify_stopped":       "Stopped",
		"notify_scroll_failed": "Scroll failed",
		"notify_error":         "Error",

		// Errors
		"error_title":   "FeedScroll failed to start",
		"error_startup": "Could not start the keyboard listener",
		"error_hints":   "Things to try:",

		// Remediation hints
		"hint_display":       "no X11 display found; run inside an X session",
		"hint_evdev":         "under Wayland set \"source\": \"evdev\" in config.json",
		"hint_x11_libs":      "reinstall libx11, libxtst and libxkbcommon-x11, then restart",
		"hint_elevated":      "run with elevated privileges (administrator or sudo)",
		"hint_input_group":   "add your user to the \"input\" group or run as root",
		"hint_accessibility": "grant Accessibility and Input Monitoring permission in System Settings",
		"hint_source_hook":   "set \"source\": \"hook\" in config.json",
		"hint_reinstall":     "reinstall the application dependencies",
	},

	RU: {
		// App
		"app_name":    "FeedScroll",
		"app_tooltip": "FeedScroll - прокрутка ленты с клавиатуры",

		// Console banner
		"banner_started": "FeedScroll запущен",
		"banner_usage":   "Как пользоваться:",
		"banner_scroll":  "нажмите %s для прокрутки вниз на %d",
		"banner_quit":    "нажмите %s для выхода",
		"banner_focus":   "целевое окно должно быть активным",
		"banner_waiting": "Ожидание нажатий...",
		"banner_stopped": "FeedScroll остановлен",

		// Startup prompt
		"prompt_debug":       "Включить отладочный лог всех нажатий?",
		"prompt_debug_title": "FeedScroll - режим отладки",
		"prompt_yes_no":      "[y/N]",

		// Tray menu
		"tray_ready":              "Слушаю",
		"tray_scrolls":            "Прокручено %d раз",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Остановить и закрыть",

		// Notifications
		"notify_started":       "Слушаю: %s прокрутка, %s выход",
		"notify_stopped":       "Остановлено",
		"notify_scroll_failed": "Не удалось прокрутить",
		"notify_error":         "Ошибка",

		// Errors
		"error_title":   "FeedScroll не запустился",
		"error_startup": "Не удалось запустить перехват клавиатуры",
		"error_hints":   "Что попробовать:",

		// Remediation hints
		"hint_display":       "не найден X11 дисплей; запустите внутри X-сессии",
		"hint_evdev":         "под Wayland укажите \"source\": \"evdev\" в config.json",
		"hint_x11_libs":      "переустановите libx11, libxtst и libxkbcommon-x11 и перезапустите",
		"hint_elevated":      "запустите с повышенными правами (администратор или sudo)",
		"hint_input_group":   "добавьте пользователя в группу \"input\" или запустите от root",
		"hint_accessibility": "разрешите Универсальный доступ и Мониторинг ввода в Системных настройках",
		"hint_source_hook":   "укажите \"source\": \"hook\" в config.json",
		"hint_reinstall":     "переустановите зависимости приложения",
	},

	ZH: {
		// App
		"app_name":    "FeedScroll",
		"app_tooltip": "FeedScroll - 用键盘滚动信息流",

		// Console banner
		"banner_started": "FeedScroll 已启动",
		"banner_usage":   "使用说明：",
		"banner_scroll":  "按 %s 向下滚动 %d",
		"banner_quit":    "按 %s 退出程序",
		"banner_focus":   "请确保目标窗口处于活动状态",
		"banner_waiting": "等待按键...",
		"banner_stopped": "FeedScroll 已退出",

		// Startup prompt
		"prompt_debug":       "是否开启调试日志，记录所有按键事件？",
		"prompt_debug_title": "FeedScroll - 调试模式",
		"prompt_yes_no":      "[y/N]",

		// Tray menu
		"tray_ready":              "监听中",
		"tray_scrolls":            "已滚动 %d 次",
		"tray_notifications":      "通知",
		"tray_notifications_hint": "显示通知",
		"tray_quit":               "退出",
		"tray_quit_hint":          "停止监听并退出",

		// Notifications
		"notify_started":       "监听中：%s 滚动，%s 退出",
		"notify_stopped":       "已停止",
		"notify_scroll_failed": "滚动失败",
		"notify_error":         "错误",

		// Errors
		"error_title":   "FeedScroll 启动失败",
		"error_startup": "无法启动键盘监听",
		"error_hints":   "可以尝试：",

		// Remediation hints
		"hint_display":       "未找到 X11 显示，请在 X 会话中运行",
		"hint_evdev":         "Wayland 下请在 config.json 中设置 \"source\": \"evdev\"",
		"hint_x11_libs":      "重新安装 libx11、libxtst 和 libxkbcommon-x11 后重启",
		"hint_elevated":      "使用管理员权限或 sudo 运行",
		"hint_input_group":   "将用户加入 \"input\" 组或以 root 运行",
		"hint_accessibility": "在系统设置中授予辅助功能和输入监控权限",
		"hint_source_hook":   "在 config.json 中设置 \"source\": \"hook\"",
		"hint_reinstall":     "重新安装程序依赖",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to English, then to the key itself
	if s, ok := translations[EN][key]; ok {
		return s
	}
	return key
}

// Tf formats the translation for the given key.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) bool {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; !ok {
		return false
	}
	current = lang
	return true
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, RU, ZH}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case EN:
		return "English"
	case RU:
		return "Русский"
	case ZH:
		return "中文"
	default:
		return string(lang)
	}
}
