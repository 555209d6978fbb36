package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/storage"
)

// Bot is the part of tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Handler struct {
	bot       Bot
	logger    *zap.Logger
	services  Services
	reminders *storage.ReminderMessages
	location  *time.Location
	now       func() time.Time
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	services Services,
	reminders *storage.ReminderMessages,
	location *time.Location,
) *Handler {
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		bot:       bot,
		logger:    logger,
		services:  services,
		reminders: reminders,
		location:  location,
		now:       time.Now,
	}
}

// Commands lists the bot commands for the Telegram menu.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "practice", Description: "Practice with multiple choice"},
		{Command: "listen", Description: "Listening practice"},
		{Command: "write", Description: "Writing practice"},
		{Command: "daily", Description: "Challenge of the day"},
		{Command: "progress", Description: "Show progress"},
		{Command: "settings", Description: "Settings"},
		{Command: "reset", Description: "Reset progress"},
		{Command: "help", Description: "Help"},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("learner_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	learner := entities.NewLearner(from.ID, chatID)
	learner.FirstName = from.FirstName
	learner.Username = from.UserName
	learner.LanguageCode = from.LanguageCode

	created, err := h.services.Learners.EnsureLearner(ctx, learner)
	if err != nil {
		h.logger.Error("failed to ensure learner",
			zap.Int64("learner_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		var fn HandlerFunc

		switch update.Message.Command() {
		case "start":
			fn = h.handleStart(from.FirstName, created)
		case "practice":
			fn = h.handleStartSession(from.ID, entities.ModeChoice)
		case "listen":
			fn = h.handleStartSession(from.ID, entities.ModeListening)
		case "write":
			fn = h.handleStartSession(from.ID, entities.ModeWriting)
		case "daily":
			fn = h.handleDaily(from.ID)
		case "progress":
			fn = h.handleProgress(from.ID)
		case "settings":
			fn = h.handleSettings(from.ID)
		case "reset":
			fn = h.handleReset()
		case "help":
			fn = h.handleHelp()
		default:
			fn = h.handleUnknown()
		}

		_ = h.withErrorHandling(fn)(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.handleText(from.ID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ack answers a callback query, removing the loading state on the client.
func (h *Handler) ack(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
