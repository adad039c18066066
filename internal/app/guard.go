package app

import (
	"strings"
	"time"

	"stayhub/internal/domain"
)

const dateLayout = "2006-01-02"

// requireNonBlank rejects empty and whitespace-only values.
func requireNonBlank(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Blankf("%s must not be blank", field)
	}
	return nil
}

// validateStayDates checks the checkIn/checkOut pair: both absent is valid
// (provisional booking), exactly one absent is invalid, and when both are
// present they must parse as yyyy-MM-dd with checkIn strictly before checkOut.
func validateStayDates(checkIn, checkOut string) error {
	hasIn := strings.TrimSpace(checkIn) != ""
	hasOut := strings.TrimSpace(checkOut) != ""

	if !hasIn && !hasOut {
		return nil
	}
	if hasIn != hasOut {
		return domain.Conflictf("checkIn and checkOut must be provided together")
	}

	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return domain.Malformedf("invalid date format. Expected yyyy-MM-dd")
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return domain.Malformedf("invalid date format. Expected yyyy-MM-dd")
	}
	if !in.Before(out) {
		return domain.Conflictf("checkIn must be before checkOut")
	}
	return nil
}
