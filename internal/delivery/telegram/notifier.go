package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// SendReminder posts a practice nudge and removes the previous one from the
// chat, so at most one reminder is visible at a time.
func (h *Handler) SendReminder(chatID int64, dueCount int) error {
	msg := newMessage(chatID, renderReminder(dueCount))
	msg.ReplyMarkup = buildReminderKeyboard()

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	if h.reminders == nil {
		return nil
	}

	prev, ok := h.reminders.Swap(chatID, sent.MessageID, h.now())
	if !ok {
		return nil
	}

	if _, err = h.bot.Request(tgbotapi.NewDeleteMessage(chatID, prev.MessageID)); err != nil {
		// Telegram refuses to delete messages older than 48h.
		h.logger.Debug("failed to delete previous reminder",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", prev.MessageID),
			zap.Error(err),
		)
	}

	return nil
}
