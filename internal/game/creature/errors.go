package creature

import (
	"errors"
	"fmt"
)

var (
	// ErrDataNotFound marks a species whose link rows cannot fill both move slots.
	ErrDataNotFound = errors.New("creature data not found")
	// ErrRange marks a computed numeric range that collapsed and was clamped.
	ErrRange = errors.New("creature range collapsed")
)

// DataNotFoundError reports a species with fewer linked moves than required.
type DataNotFoundError struct {
	SpeciesID int
	Species   string
	// Found is how many linked moves the species has.
	Found int
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("species %d (%s) has %d linked moves, need %d", e.SpeciesID, e.Species, e.Found, MoveSlots)
}

// Unwrap lets errors.Is match ErrDataNotFound.
func (e *DataNotFoundError) Unwrap() error { return ErrDataNotFound }

// RangeError reports a numeric range that was clamped to its minimum valid value.
type RangeError struct {
	Quantity string
	Value    int
	Clamped  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range, clamped to %d", e.Quantity, e.Value, e.Clamped)
}

// Unwrap lets errors.Is match ErrRange.
func (e *RangeError) Unwrap() error { return ErrRange }
