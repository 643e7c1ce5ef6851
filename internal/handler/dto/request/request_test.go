//go:build unit

package request_test

import (
	"testing"

	"stayhub/internal/handler/dto/request"
	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateBookingRequest_Validation(t *testing.T) {
	require.NoError(t, request.RegisterValidators())
	require.NoError(t, request.RegisterValidators())

	valid := request.CreateBookingRequest{
		UnitID:   uuid.New(),
		CheckIn:  "2026-04-01",
		CheckOut: "2026-04-04",
		Guests:   2,
	}

	tests := []struct {
		name    string
		mutate  func(r *request.CreateBookingRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(*request.CreateBookingRequest) {}},
		{name: "missing unit", mutate: func(r *request.CreateBookingRequest) { r.UnitID = uuid.Nil }, wantErr: true},
		{name: "timestamp instead of date", mutate: func(r *request.CreateBookingRequest) { r.CheckIn = "2026-04-01T10:00:00Z" }, wantErr: true},
		{name: "impossible date", mutate: func(r *request.CreateBookingRequest) { r.CheckOut = "2026-02-30" }, wantErr: true},
		{name: "zero guests", mutate: func(r *request.CreateBookingRequest) { r.Guests = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := binding.Validator.ValidateStruct(r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingRequest_ToInput(t *testing.T) {
	key := uuid.New()
	r := request.CreateBookingRequest{
		UnitID:    uuid.New(),
		CheckIn:   "2026-04-01",
		CheckOut:  "2026-04-04",
		Guests:    2,
		PromoCode: strPtr("  SAVE10 "),
		Notes:     strPtr("   "),
	}

	in, err := r.ToInput(&key)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-01", in.CheckIn.Format("2006-01-02"))
	assert.Equal(t, "SAVE10", *in.PromoCode)
	assert.Nil(t, in.Notes)
	assert.Equal(t, &key, in.Key)

	r.CheckOut = "04/04/2026"
	_, err = r.ToInput(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidDates)
}

func TestCreateCalendarSyncRequest_ToImportInput(t *testing.T) {
	_, ok := request.CreateCalendarSyncRequest{Direction: "import", URL: "https://example.com/a.ics"}.ToImportInput()
	assert.False(t, ok)

	unitID := uuid.New()
	in, ok := request.CreateCalendarSyncRequest{
		Direction: "import", UnitID: &unitID, URL: "https://example.com/a.ics", Label: "airbnb", IntervalMinutes: 30,
	}.ToImportInput()
	require.True(t, ok)
	assert.Equal(t, unitID, in.UnitID)
	assert.Equal(t, "30m0s", in.Interval.String())
}

func TestBlockDatesRequest_Validation(t *testing.T) {
	require.NoError(t, request.RegisterValidators())

	assert.NoError(t, binding.Validator.ValidateStruct(request.BlockDatesRequest{Dates: []string{"2026-05-01"}}))
	assert.Error(t, binding.Validator.ValidateStruct(request.BlockDatesRequest{Dates: []string{}}))
	assert.Error(t, binding.Validator.ValidateStruct(request.BlockDatesRequest{Dates: []string{"2026-05-01", "tomorrow"}}))
}

func TestBookingStatsQuery_Unit(t *testing.T) {
	assert.Nil(t, request.BookingStatsQuery{}.Unit())

	id := uuid.New()
	got := request.BookingStatsQuery{UnitID: id.String()}.Unit()
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
}
