package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

var sessionSizeChoices = []int{5, 10, 20, 30, 50}

// buildAnswerKeyboard builds one button per option of the item.
func buildAnswerKeyboard(session *entities.Session, itemIndex int) tgbotapi.InlineKeyboardMarkup {
	item := session.Items[itemIndex]

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(item.Options))
	for i, option := range item.Options {
		data := buildAnswerCallback(session.ID, itemIndex, i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildStartKeyboard offers the practice modes.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔤 Practice", buildPracticeCallback(string(entities.ModeChoice))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎧 Listen", buildPracticeCallback(string(entities.ModeListening))),
			tgbotapi.NewInlineKeyboardButtonData("✍️ Write", buildPracticeCallback(string(entities.ModeWriting))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Daily challenge", buildDailyCallback()),
		),
	)
}

// buildResultKeyboard builds keyboard for the end of a session.
func buildResultKeyboard(mode entities.ReviewMode) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Another session", buildPracticeCallback(string(mode))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My progress", buildProgressCallback()),
		),
	)
}

// buildProgressKeyboard builds keyboard for progress screen.
func buildProgressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", buildProgressCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Practice", buildPracticeCallback("")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Session size", buildSettingsCallback(settingsSize)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Mode", buildSettingsCallback(settingsMode)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏰ Reminders", buildSettingsCallback(settingsReminders)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My progress", buildProgressCallback()),
		),
	)
}

// buildSessionSizeKeyboard builds keyboard for session size setting.
func buildSessionSizeKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, n := range sessionSizeChoices {
		v := strconv.Itoa(n)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(v, buildSettingsCallback(settingsSize, v)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildModeKeyboard builds keyboard for review mode setting.
func buildModeKeyboard() tgbotapi.InlineKeyboardMarkup {
	modes := []entities.ReviewMode{entities.ModeChoice, entities.ModeListening, entities.ModeWriting}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(modes)+1)
	for _, m := range modes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(formatMode(m), buildSettingsCallback(settingsMode, string(m))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildReminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Practice now", buildReminderPracticeCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔕 Turn off reminders", buildSettingsCallback(settingsReminders)),
		),
	)
}

func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, reset", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCancelCallback()),
		),
	)
}
