package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ApprovalStatus represents one vendor's decision on its share of a
// booking. It is independent per vendor and scoped to one booking.
type ApprovalStatus int

const (
	ApprovalStatusPending  ApprovalStatus = 0
	ApprovalStatusApproved ApprovalStatus = 1
	ApprovalStatusRejected ApprovalStatus = 2
)

var approvalStatusNames = [...]string{"Pending", "Approved", "Rejected"}

func (s ApprovalStatus) String() string {
	if int(s) < 0 || int(s) >= len(approvalStatusNames) {
		return fmt.Sprintf("ApprovalStatus(%d)", int(s))
	}
	return approvalStatusNames[s]
}

// IsValid reports whether s is one of the defined statuses.
func (s ApprovalStatus) IsValid() bool {
	return int(s) >= 0 && int(s) < len(approvalStatusNames)
}

func (s ApprovalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ApprovalStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !ApprovalStatus(i).IsValid() {
			return fmt.Errorf("unknown approval status %d", i)
		}
		*s = ApprovalStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = ApprovalStatusPending
	case "Approved":
		*s = ApprovalStatusApproved
	case "Rejected":
		*s = ApprovalStatusRejected
	default:
		return fmt.Errorf("unknown approval status %q", str)
	}
	return nil
}

func (s ApprovalStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ApprovalStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ApprovalStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		if !ApprovalStatus(v).IsValid() {
			return fmt.Errorf("unknown approval status %d", v)
		}
		*s = ApprovalStatus(v)
	case int:
		if !ApprovalStatus(v).IsValid() {
			return fmt.Errorf("unknown approval status %d", v)
		}
		*s = ApprovalStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into ApprovalStatus", value)
	}
	return nil
}
