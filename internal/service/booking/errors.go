package booking

import "errors"

var (
	ErrSlotAlreadyBooked   = errors.New("slot is already booked")
	ErrInvalidSlot         = errors.New("slot is not currently bookable")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrInvalidDate         = errors.New("invalid date format")
	ErrInvalidTimes        = errors.New("invalid time entries")
)
