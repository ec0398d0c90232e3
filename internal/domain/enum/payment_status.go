package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentStatus represents the payment state of a booking or invoice
type PaymentStatus int

const (
	PaymentStatusPending   PaymentStatus = 0
	PaymentStatusPaid      PaymentStatus = 1
	PaymentStatusRefunded  PaymentStatus = 2
	PaymentStatusCancelled PaymentStatus = 3
)

var paymentStatusNames = [...]string{"Pending", "Paid", "Refunded", "Cancelled"}

func (s PaymentStatus) String() string {
	if int(s) < 0 || int(s) >= len(paymentStatusNames) {
		return fmt.Sprintf("PaymentStatus(%d)", int(s))
	}
	return paymentStatusNames[s]
}

// IsValid reports whether s is one of the defined statuses.
func (s PaymentStatus) IsValid() bool {
	return int(s) >= 0 && int(s) < len(paymentStatusNames)
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !PaymentStatus(i).IsValid() {
			return fmt.Errorf("unknown payment status %d", i)
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = PaymentStatusPending
	case "Paid":
		*s = PaymentStatusPaid
	case "Refunded":
		*s = PaymentStatusRefunded
	case "Cancelled":
		*s = PaymentStatusCancelled
	default:
		return fmt.Errorf("unknown payment status %q", str)
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		if !PaymentStatus(v).IsValid() {
			return fmt.Errorf("unknown payment status %d", v)
		}
		*s = PaymentStatus(v)
	case int:
		if !PaymentStatus(v).IsValid() {
			return fmt.Errorf("unknown payment status %d", v)
		}
		*s = PaymentStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentStatus", value)
	}
	return nil
}
