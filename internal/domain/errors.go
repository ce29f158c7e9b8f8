package domain

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateBooking = errors.New("booking id already exists")
)
