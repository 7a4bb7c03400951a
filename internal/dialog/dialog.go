// Package dialog спрашивает пользователя о режиме отладки и показывает ошибки.
package dialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ncruces/zenity"
	"golang.org/x/term"

	"feedscroll/internal/config"
	"feedscroll/internal/i18n"
)

// AskDebug спрашивает, включить ли отладочный лог. Ответ по умолчанию - нет.
func AskDebug(mode config.Prompt) bool {
	switch mode {
	case config.PromptDialog:
		return askDialog(i18n.T("prompt_debug_title"), i18n.T("prompt_debug"))
	case config.PromptTerminal:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return false
		}
		return AskYesNo(os.Stdin, os.Stdout, i18n.T("prompt_debug")+" "+i18n.T("prompt_yes_no")+" ")
	default:
		return false
	}
}

// AskYesNo печатает вопрос в out и читает одну строку ответа из in.
func AskYesNo(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return isYes(line)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да", "是", "是的":
		return true
	default:
		return false
	}
}

func askDialog(title, question string) bool {
	err := zenity.Question(question,
		zenity.Title(title),
		zenity.QuestionIcon,
		zenity.DefaultCancel(),
	)
	return err == nil
}

// ShowError показывает сообщение об ошибке. Отмена окна не важна.
func ShowError(title, message string) {
	err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		fmt.Fprintln(os.Stderr, message)
	}
}
