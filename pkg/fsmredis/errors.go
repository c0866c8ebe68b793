package fsmredis

import "errors"

var (
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady           = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed       = errors.New("redis healthcheck failed")

	// ErrOwnerNotFound indicates no persisted state exists for the owner id.
	ErrOwnerNotFound = errors.New("no persisted state for owner")

	ErrFailedToPersistState = errors.New("failed to persist state")
	ErrFailedToLoadState    = errors.New("failed to load state")
)
