package domain

import "errors"

var (
	ErrEntryNotFound        = errors.New("journal entry not found")
	ErrCorruptJournal       = errors.New("journal store is corrupt")
	ErrRemoteStatus         = errors.New("remote api reported failure")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)
