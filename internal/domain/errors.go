package domain

import "errors"

var (
	// Import errors
	ErrMalformedInput = errors.New("input is not a decodable delimited file")
	ErrInvalidDate    = errors.New("invalid date format")

	// Lookup errors
	ErrPersonNotFound = errors.New("person not found")
	ErrUserNotFound   = errors.New("user not found")

	// Search errors
	ErrInvalidSearchName = errors.New("search name must contain a first name and a surname")
)
