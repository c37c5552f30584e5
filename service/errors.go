// Package service holds the scheduling and booking core: screening
// validation, the screening store with its occupancy lock gates, the
// reservation engine and the order ledger. Handlers map the sentinel
// errors below to HTTP statuses; nothing in here knows about Fiber.
package service

import "errors"

var (
	ErrInvalidInterval   = errors.New("finish must occur after start")
	ErrPastScheduling    = errors.New("start cannot be set in the past")
	ErrOutsideFilmRun    = errors.New("show must be held during the film run")
	ErrCapacityExceeded  = errors.New("not enough free places at the venue")
	ErrVenueDoubleBooked = errors.New("some show is already set in the same place simultaneously")
	ErrInvalidRunWindow  = errors.New("the end of the film run cannot be earlier than its beginning")
	ErrDuplicateName     = errors.New("name is already taken")
	ErrScreeningLocked   = errors.New("tickets already sold, no edits allowed")
	ErrNotFound          = errors.New("record not found")
	ErrShowEnded         = errors.New("show has already ended")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)
