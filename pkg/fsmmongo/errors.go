package fsmmongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")

	// ErrOwnerNotFound indicates no document matched the owner id; the state
	// was not durably written.
	ErrOwnerNotFound = errors.New("owner document not found")

	ErrFailedToPersistState = errors.New("failed to persist state")
	ErrFailedToLoadState    = errors.New("failed to load state")
)
