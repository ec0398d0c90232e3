package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BookingStatus represents the workflow stage of a booking. It is the
// single source of truth for what may happen to the booking next.
type BookingStatus int

const (
	BookingStatusDraft            BookingStatus = 0
	BookingStatusPending          BookingStatus = 1
	BookingStatusHallApproved     BookingStatus = 2
	BookingStatusVendorsApproving BookingStatus = 3
	BookingStatusReadyForPayment  BookingStatus = 4
	BookingStatusPaid             BookingStatus = 5
	BookingStatusConfirmed        BookingStatus = 6
	BookingStatusCancelled        BookingStatus = 7
	BookingStatusHallRejected     BookingStatus = 8
	BookingStatusVendorRejected   BookingStatus = 9
)

var bookingStatusNames = [...]string{
	"Draft",
	"Pending",
	"HallApproved",
	"VendorsApproving",
	"ReadyForPayment",
	"Paid",
	"Confirmed",
	"Cancelled",
	"HallRejected",
	"VendorRejected",
}

func (s BookingStatus) String() string {
	if int(s) < 0 || int(s) >= len(bookingStatusNames) {
		return fmt.Sprintf("BookingStatus(%d)", int(s))
	}
	return bookingStatusNames[s]
}

// IsValid reports whether s is one of the defined statuses.
func (s BookingStatus) IsValid() bool {
	return int(s) >= 0 && int(s) < len(bookingStatusNames)
}

// IsTerminal reports whether the booking can no longer move through
// the approval workflow. Confirmed and Cancelled bookings are frozen;
// rejections are terminal too and need a new booking to retry.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusHallRejected, BookingStatusVendorRejected:
		return true
	}
	return false
}

// ParseBookingStatus converts a status name into a BookingStatus,
// rejecting anything outside the closed set. Free-form status strings
// never enter the system.
func ParseBookingStatus(s string) (BookingStatus, error) {
	for i, name := range bookingStatusNames {
		if name == s {
			return BookingStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown booking status %q", s)
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !BookingStatus(i).IsValid() {
			return fmt.Errorf("unknown booking status %d", i)
		}
		*s = BookingStatus(i)
		return nil
	}
	parsed, err := ParseBookingStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *BookingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BookingStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		if !BookingStatus(v).IsValid() {
			return fmt.Errorf("unknown booking status %d", v)
		}
		*s = BookingStatus(v)
	case int:
		if !BookingStatus(v).IsValid() {
			return fmt.Errorf("unknown booking status %d", v)
		}
		*s = BookingStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into BookingStatus", value)
	}
	return nil
}
