package httperr

import "errors"

// Error codes raised by the scheduling engine. Handlers translate these
// to HTTP statuses; anything else is treated as a store failure.
const (
	CodeServiceNotFound    = "service_not_found"
	CodeBookingNotFound    = "booking_not_found"
	CodeOutOfHours         = "out_of_hours"
	CodeMisalignedSlot     = "misaligned_slot"
	CodeSlotTaken          = "slot_taken"
	CodeInvalidTransition  = "invalid_transition"
	CodeInvalidStatus      = "invalid_status"
	CodeInvalidRequest     = "invalid_request"
	CodeServiceHasBookings = "service_has_bookings"
	CodeStoreUnavailable   = "store_unavailable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" for
// infrastructure errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
