package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/service"
)

func (h *Handler) handleStart(firstName string, created bool) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if created {
			h.logger.Info("new learner", zap.Int64("chat_id", chatID))
		}

		msg := newMessage(chatID, welcomeMarkdownV2(firstName))
		msg.ReplyMarkup = buildStartKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgHelp)
		msg.ReplyMarkup = buildStartKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) handleUnknown() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// handleStartSession composes a new session and sends its first item.
// An empty mode means the learner's preferred mode.
func (h *Handler) handleStartSession(learnerID int64, mode entities.ReviewMode) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.services.Practice.StartSession(ctx, learnerID, mode)
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		h.logger.Info("session started",
			zap.Int64("learner_id", learnerID),
			zap.String("session_id", session.ID.String()),
			zap.Int("items", len(session.Items)),
		)

		return h.sendSession(chatID, session)
	}
}

func (h *Handler) handleDaily(learnerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.services.Practice.StartDailyChallenge(ctx, learnerID, h.now())
		if err != nil {
			return fmt.Errorf("start daily challenge: %w", err)
		}

		h.logger.Info("daily challenge started",
			zap.Int64("learner_id", learnerID),
			zap.String("seed", session.Seed),
		)

		return h.sendSession(chatID, session)
	}
}

func (h *Handler) sendSession(chatID int64, session *entities.Session) error {
	if len(session.Items) == 0 {
		return h.send(newPlainMessage(chatID, msgNothingToPractice))
	}
	return h.sendItem(chatID, session)
}

// sendItem sends the current item of the session.
func (h *Handler) sendItem(chatID int64, session *entities.Session) error {
	idx := session.Current
	if idx >= len(session.Items) {
		return nil
	}

	msg := newMessage(chatID, renderItem(session, idx))
	if session.Items[idx].HasOptions() {
		msg.ReplyMarkup = buildAnswerKeyboard(session, idx)
	}
	return h.send(msg)
}

// sendAfterAnswer sends the next item, or the result once the session is done.
func (h *Handler) sendAfterAnswer(chatID int64, res *service.AnswerResult) error {
	if !res.Done {
		return h.sendItem(chatID, res.Session)
	}

	mode := entities.ModeChoice
	if len(res.Session.Items) > 0 {
		mode = res.Session.Items[0].Mode
	}

	msg := newMessage(chatID, renderResult(res.Session))
	msg.ReplyMarkup = buildResultKeyboard(mode)
	return h.send(msg)
}

// handleText treats free text as an answer to the active writing item.
func (h *Handler) handleText(learnerID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, ok := h.services.Practice.ActiveSession(learnerID)
		if !ok {
			return h.send(newPlainMessage(chatID, msgUnknownInput))
		}

		item, ok := session.Next()
		if !ok || item.HasOptions() {
			return h.send(newPlainMessage(chatID, msgUnknownInput))
		}

		res, err := h.services.Practice.Answer(ctx, learnerID, session.ID, session.Current, strings.TrimSpace(text))
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, service.ErrItemMismatch) {
				return h.send(newPlainMessage(chatID, msgSessionExpired))
			}
			return fmt.Errorf("answer: %w", err)
		}

		if err = h.send(newMessage(chatID, renderFeedback(bold(item.Word.Term), res))); err != nil {
			return err
		}
		return h.sendAfterAnswer(chatID, res)
	}
}

func (h *Handler) handleProgress(learnerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, err := h.progressText(ctx, learnerID)
		if err != nil {
			h.logger.Error("failed to get progress", zap.Int64("learner_id", learnerID), zap.Error(err))
			return h.send(newPlainMessage(chatID, msgProgressUnavailable))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = buildProgressKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) progressText(ctx context.Context, learnerID int64) (string, error) {
	summary, err := h.services.Progress.Summary(ctx, learnerID, h.now())
	if err != nil {
		return "", err
	}

	// Settings are decoration here.
	settings, err := h.services.Settings.GetOrCreate(ctx, learnerID)
	if err != nil {
		h.logger.Warn("progress without settings", zap.Int64("learner_id", learnerID), zap.Error(err))
		settings = nil
	}

	return renderProgress(summary, settings, h.location), nil
}

func (h *Handler) handleSettings(learnerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.services.Settings.GetOrCreate(ctx, learnerID)
		if err != nil {
			h.logger.Error("failed to get settings", zap.Int64("learner_id", learnerID), zap.Error(err))
			return h.send(newPlainMessage(chatID, msgSettingsUnavailable))
		}

		msg := newMessage(chatID, renderSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgResetConfirmQuestion)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.send(msg)
	}
}
