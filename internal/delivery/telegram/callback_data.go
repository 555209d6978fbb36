package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Callback action constants.
const (
	actionAnswer   = "answer"
	actionPractice = "practice"
	actionDaily    = "daily"
	actionSettings = "settings"
	actionProgress = "progress"
	actionReminder = "reminder"
	actionReset    = "reset"
)

// Settings sub-actions.
const (
	settingsMenu      = "menu"
	settingsSize      = "size"
	settingsMode      = "mode"
	settingsReminders = "reminders"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// answerCallback is a decoded option pick.
type answerCallback struct {
	SessionID uuid.UUID
	ItemIndex int
	Option    int
}

// buildAnswerCallback builds answer:<session>:<idx>:<option>.
func buildAnswerCallback(sessionID uuid.UUID, itemIndex, option int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{
			sessionID.String(),
			strconv.Itoa(itemIndex),
			strconv.Itoa(option),
		},
	}.encode()
}

func parseAnswerCallback(cd callbackData) (answerCallback, error) {
	if cd.Action != actionAnswer || len(cd.Params) != 3 {
		return answerCallback{}, errMalformedCallback
	}

	id, err := uuid.Parse(cd.Params[0])
	if err != nil {
		return answerCallback{}, errMalformedCallback
	}

	idx, errIdx := strconv.Atoi(cd.Params[1])
	opt, errOpt := strconv.Atoi(cd.Params[2])
	if errIdx != nil || errOpt != nil || idx < 0 || opt < 0 {
		return answerCallback{}, errMalformedCallback
	}

	return answerCallback{SessionID: id, ItemIndex: idx, Option: opt}, nil
}

// buildPracticeCallback starts a session in the given mode.
func buildPracticeCallback(mode string) string {
	return callbackData{
		Action: actionPractice,
		Params: []string{mode},
	}.encode()
}

func buildDailyCallback() string {
	return actionDaily
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

// buildProgressCallback builds callback data for opening the progress view.
func buildProgressCallback() string {
	return actionProgress
}

// buildReminderPracticeCallback starts practice from a reminder message.
func buildReminderPracticeCallback() string {
	return callbackData{
		Action: actionReminder,
		Params: []string{actionPractice},
	}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
