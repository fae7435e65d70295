package booking

import "errors"

var (
	// ErrNotFound signals the desk or reservation does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotBookable signals the business has no hours for the date, or the
	// requested window falls outside them.
	ErrNotBookable = errors.New("not bookable for the requested date and time")
	// ErrSlotTaken signals another reservation already covers part of the
	// requested window. A normal negative result: the caller picks another time.
	ErrSlotTaken = errors.New("time slot is no longer available")
	// ErrOwnBusiness signals an owner attempting to book their own desk.
	ErrOwnBusiness = errors.New("owners cannot book desks at their own business")
	// ErrForbidden signals the caller may not view or change the resource.
	ErrForbidden = errors.New("forbidden")
)
