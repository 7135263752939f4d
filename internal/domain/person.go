package domain

import "time"

// Person represents an individual imported from a people file. The surrogate
// ID is assigned by the store on insert; identity within an import is the
// natural key (FirstName, Surname, DateOfBirth) with trimmed, case-sensitive
// strings and a date-only DateOfBirth.
type Person struct {
	ID          int64
	FirstName   string
	Surname     string
	DateOfBirth time.Time
	Address     string
	Postcode    string
}
