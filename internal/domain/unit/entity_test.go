//go:build unit

package unit_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/unit"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newUnit(status unit.Status, minNights, maxNights, maxGuests int) *unit.Unit {
	now := time.Now()
	return unit.ReconstructUnit(uuid.New(), uuid.New(), "Seaside loft", status, minNights, maxNights, maxGuests, now, now)
}

func TestUnit_ValidateStay(t *testing.T) {
	testCases := []struct {
		name   string
		unit   *unit.Unit
		nights int
		errIs  error
	}{
		{name: "published within bounds", unit: newUnit(unit.StatusPublished, 2, 14, 4), nights: 3},
		{name: "lower bound inclusive", unit: newUnit(unit.StatusPublished, 2, 14, 4), nights: 2},
		{name: "upper bound inclusive", unit: newUnit(unit.StatusPublished, 2, 14, 4), nights: 14},
		{name: "below minimum", unit: newUnit(unit.StatusPublished, 2, 14, 4), nights: 1, errIs: errs.ErrInvalidStayLength},
		{name: "above maximum", unit: newUnit(unit.StatusPublished, 2, 14, 4), nights: 15, errIs: errs.ErrInvalidStayLength},
		{name: "zero maximum means unbounded", unit: newUnit(unit.StatusPublished, 1, 0, 4), nights: 120},
		{name: "draft unit", unit: newUnit(unit.StatusDraft, 1, 30, 4), nights: 3, errIs: errs.ErrUnbookable},
		{name: "archived unit", unit: newUnit(unit.StatusArchived, 1, 30, 4), nights: 3, errIs: errs.ErrUnbookable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.unit.ValidateStay(tc.nights)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUnit_ValidateGuests(t *testing.T) {
	u := newUnit(unit.StatusPublished, 1, 30, 4)

	assert.NoError(t, u.ValidateGuests(4))
	assert.ErrorIs(t, u.ValidateGuests(5), errs.ErrGuestCountExceeded)
	assert.ErrorIs(t, u.ValidateGuests(0), errs.ErrDomainValidation)
}
