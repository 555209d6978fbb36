// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// Error messages.
const (
	msgInternalError        = "Something went wrong. Please try again later."
	msgUnknownCommand       = "Unknown command. Send /help to see what I can do."
	msgUnknownInput         = "I didn't get that. Start a session with /practice, or see /help."
	msgSessionExpired       = "This question is no longer active."
	msgNothingToPractice    = "Nothing to practice right now. Come back later!"
	msgProgressUnavailable  = "Couldn't load your progress. Please try again later."
	msgSettingsUnavailable  = "Couldn't load your settings. Please try again later."
	msgInvalidSessionSize   = "That session size isn't allowed."
	msgProgressNotSaved     = "⚠️ Progress for this word wasn't saved, it will come up again."
	msgResetDone            = "🧹 Your progress has been reset."
	msgResetCancelled       = "Reset cancelled."
	msgResetConfirmQuestion = "This will erase every card and your settings. Are you sure?"
)

const msgHelp = `🧠 LexiQuest — vocabulary practice with spaced repetition

/practice — practice cards with multiple choice
/listen — hear the word, pick its meaning
/write — type the translation yourself
/daily — the challenge of the day, the same for everyone
/progress — see how you are doing
/settings — session size, mode and reminders
/reset — start over from scratch
/help — this message

Words you miss come back sooner, words you know come back later.`

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func welcomeMarkdownV2(firstName string) string {
	var sb strings.Builder

	name := strings.TrimSpace(firstName)
	if name == "" {
		name = "there"
	}

	sb.WriteString(bold(fmt.Sprintf("Hi, %s! 👋", name)))
	sb.WriteString("\n\n")
	sb.WriteString(md("I help you learn new words and keep them. Every answer updates when you'll see a word again: mistakes return tomorrow, known words drift further out."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Tap below to start your first session, or send /help for all commands."))

	return sb.String()
}

func formatMode(mode entities.ReviewMode) string {
	switch mode {
	case entities.ModeListening:
		return "🎧 Listening"
	case entities.ModeWriting:
		return "✍️ Writing"
	default:
		return "🔤 Multiple choice"
	}
}

func formatBool(b bool) string {
	if b {
		return "On ✅"
	}
	return "Off ❌"
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// buildProgressBar creates a text progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	filled = min(max(filled, 0), length)

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}
