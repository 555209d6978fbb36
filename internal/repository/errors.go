package repository

import "errors"

var (
	ErrCardStateNotFound = errors.New("card state not found")
	ErrLearnerNotFound   = errors.New("learner not found")
	ErrSettingsNotFound  = errors.New("settings not found")
)
