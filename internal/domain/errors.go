package domain

import "errors"

var (
	// ErrInvalidWeightConfig signals a weight table that fails validation.
	ErrInvalidWeightConfig = errors.New("invalid weight configuration")
	// ErrUnknownCategory signals a reference to an unregistered category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidProfile signals a structurally invalid request profile.
	ErrInvalidProfile = errors.New("invalid request profile")
	// ErrNoScoreCards signals a selection over an empty score card batch.
	ErrNoScoreCards = errors.New("no score cards")
)
