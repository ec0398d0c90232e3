package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	status, err := enum.ParseBookingStatus("ReadyForPayment")
	require.NoError(t, err)
	assert.Equal(t, enum.BookingStatusReadyForPayment, status)

	_, err = enum.ParseBookingStatus("Completed")
	assert.Error(t, err, "names outside the closed set must be rejected")

	_, err = enum.ParseBookingStatus("confirmed")
	assert.Error(t, err, "matching is case sensitive")
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	terminal := []enum.BookingStatus{
		enum.BookingStatusConfirmed,
		enum.BookingStatusCancelled,
		enum.BookingStatusHallRejected,
		enum.BookingStatusVendorRejected,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
	}

	active := []enum.BookingStatus{
		enum.BookingStatusDraft,
		enum.BookingStatusPending,
		enum.BookingStatusHallApproved,
		enum.BookingStatusVendorsApproving,
		enum.BookingStatusReadyForPayment,
		enum.BookingStatusPaid,
	}
	for _, s := range active {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestBookingStatus_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(enum.BookingStatusVendorsApproving)
	require.NoError(t, err)
	assert.Equal(t, `"VendorsApproving"`, string(data))

	var status enum.BookingStatus
	require.NoError(t, json.Unmarshal(data, &status))
	assert.Equal(t, enum.BookingStatusVendorsApproving, status)

	assert.Error(t, json.Unmarshal([]byte(`"Unknown"`), &status))
	assert.Error(t, json.Unmarshal([]byte(`42`), &status))
}

func TestBookingStatus_ScanRejectsUnknown(t *testing.T) {
	var status enum.BookingStatus
	assert.Error(t, status.Scan(int64(99)))
	require.NoError(t, status.Scan(int64(6)))
	assert.Equal(t, enum.BookingStatusConfirmed, status)
}
