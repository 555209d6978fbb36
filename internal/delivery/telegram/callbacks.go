package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.ack(cb, "")
		return
	}

	chatID := cb.Message.Chat.ID
	learnerID := cb.From.ID
	cd := decodeCallback(cb.Data)

	var fn HandlerFunc

	switch cd.Action {
	case actionAnswer:
		// Acked inside, the toast carries the verdict.
		_ = h.withErrorHandling(h.handleAnswerCallback(cb, cd))(ctx, chatID)
		return
	case actionPractice:
		mode := entities.ReviewMode("")
		if len(cd.Params) > 0 && cd.Params[0] != "" {
			mode = entities.ParseReviewMode(cd.Params[0])
		}
		fn = h.handleStartSession(learnerID, mode)
	case actionDaily:
		fn = h.handleDaily(learnerID)
	case actionProgress:
		fn = h.handleProgressCallback(learnerID, cb.Message.MessageID)
	case actionSettings:
		fn = h.handleSettingsCallback(learnerID, cb.Message.MessageID, cd.Params)
	case actionReminder:
		if h.reminders != nil {
			h.reminders.Forget(chatID)
		}
		fn = h.handleStartSession(learnerID, "")
	case actionReset:
		fn = h.handleResetCallback(learnerID, cb.Message.MessageID, cd.Params)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}

	h.ack(cb, "")

	if fn != nil {
		_ = h.withErrorHandling(fn)(ctx, chatID)
	}
}

func (h *Handler) handleAnswerCallback(cb *tgbotapi.CallbackQuery, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		ans, err := parseAnswerCallback(cd)
		if err != nil {
			h.ack(cb, "")
			h.logger.Warn("invalid answer callback", zap.String("data", cd.Raw))
			return nil
		}

		// The prompt is rebuilt before answering, the session advances afterwards.
		var prompt string
		if session, ok := h.services.Practice.ActiveSession(cb.From.ID); ok &&
			session.ID == ans.SessionID && ans.ItemIndex < len(session.Items) {
			prompt = renderItem(session, ans.ItemIndex)
		}

		res, err := h.services.Practice.AnswerOption(ctx, cb.From.ID, ans.SessionID, ans.ItemIndex, ans.Option)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) ||
				errors.Is(err, service.ErrItemMismatch) ||
				errors.Is(err, service.ErrInvalidOption) {
				h.ack(cb, msgSessionExpired)
				return nil
			}
			h.ack(cb, "")
			return fmt.Errorf("answer option: %w", err)
		}

		if res.Correct {
			h.ack(cb, "✅")
		} else {
			h.ack(cb, "❌ "+res.CorrectAnswer)
		}

		edit := newEdit(chatID, cb.Message.MessageID, renderFeedback(prompt, res))
		if err = h.send(edit); err != nil {
			return err
		}

		return h.sendAfterAnswer(chatID, res)
	}
}

func (h *Handler) handleProgressCallback(learnerID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, err := h.progressText(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("progress: %w", err)
		}

		edit := newEdit(chatID, messageID, text)
		kb := buildProgressKeyboard()
		edit.ReplyMarkup = &kb
		// Refreshing an unchanged screen fails with "message is not modified".
		_ = h.send(edit)
		return nil
	}
}

func (h *Handler) handleSettingsCallback(learnerID int64, messageID int, params []string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sub := settingsMenu
		if len(params) > 0 {
			sub = params[0]
		}
		value := ""
		if len(params) > 1 {
			value = params[1]
		}

		switch {
		case sub == settingsSize && value == "":
			return h.editKeyboard(chatID, messageID, md("📝 How many words per session?"), buildSessionSizeKeyboard())

		case sub == settingsSize:
			size, err := strconv.Atoi(value)
			if err != nil {
				return h.send(newPlainMessage(chatID, msgInvalidSessionSize))
			}
			if err = h.services.Settings.UpdateSessionSize(ctx, learnerID, size); err != nil {
				if errors.Is(err, service.ErrInvalidSessionSize) {
					return h.send(newPlainMessage(chatID, msgInvalidSessionSize))
				}
				return fmt.Errorf("update session size: %w", err)
			}

		case sub == settingsMode && value == "":
			return h.editKeyboard(chatID, messageID, md("🎲 How should words be asked?"), buildModeKeyboard())

		case sub == settingsMode:
			if err := h.services.Settings.UpdateMode(ctx, learnerID, entities.ParseReviewMode(value)); err != nil {
				return fmt.Errorf("update mode: %w", err)
			}

		case sub == settingsReminders:
			enabled, err := h.services.Settings.ToggleReminder(ctx, learnerID)
			if err != nil {
				return fmt.Errorf("toggle reminder: %w", err)
			}
			h.logger.Info("reminders toggled",
				zap.Int64("learner_id", learnerID),
				zap.Bool("enabled", enabled),
			)
		}

		settings, err := h.services.Settings.GetOrCreate(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		return h.editKeyboard(chatID, messageID, renderSettings(settings), buildSettingsKeyboard())
	}
}

func (h *Handler) handleResetCallback(learnerID int64, messageID int, params []string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(params) == 0 || params[0] != resetConfirm {
			return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgResetCancelled))
		}

		if err := h.services.Reset.Reset(ctx, learnerID); err != nil {
			return fmt.Errorf("reset: %w", err)
		}

		return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgResetDone))
	}
}

func (h *Handler) editKeyboard(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) error {
	edit := newEdit(chatID, messageID, text)
	edit.ReplyMarkup = &kb
	return h.send(edit)
}
