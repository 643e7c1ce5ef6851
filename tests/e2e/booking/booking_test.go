//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	bookingURL      = "/api/bookings/%s"
	statusURL       = "/api/bookings/%s/status"
	historyURL      = "/api/bookings/%s/history"
	availabilityURL = "/api/units/%s/availability?check_in=%s&check_out=%s"
	blockedDatesURL = "/api/units/%s/blocked-dates"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// stay returns check-in and check-out keys offset from today.
func stay(fromDays, nights int) (string, string) {
	in := calendar.AddDays(calendar.Day(time.Now().UTC()), fromDays)
	return calendar.Key(in), calendar.Key(calendar.AddDays(in, nights))
}

func (s *BookingSuite) createBooking(t *testing.T, token string, req request.CreateBookingRequest, headers map[string]string) (int, *response.BookingResponse) {
	t.Helper()
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, req, token, headers)
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		return w.Code, nil
	}
	var res response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return w.Code, &res
}

func (s *BookingSuite) changeStatus(t *testing.T, token string, id uuid.UUID, status string) *response.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, id),
		request.UpdateBookingStatusRequest{Status: status}, token)
	var res response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func (s *BookingSuite) availability(t *testing.T, unitID uuid.UUID, checkIn, checkOut string) queries.AvailabilityView {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, unitID, checkIn, checkOut), nil, "")
	var view queries.AvailabilityView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
	return view
}

// =============================================================================
// TestBookingLifecycle - create, confirm, pay and cancel through the API
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: full lifecycle releases the dates with a full refund", func() {
		t := s.T()

		ownerID, ownerToken := s.jwt.NewActor(t, user.RoleOwner)
		guestID, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(30, 3)

		code, created := s.createBooking(t, guestToken, request.CreateBookingRequest{
			UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
		}, nil)
		require.Equal(t, http.StatusCreated, code)

		expected := &response.BookingResponse{
			UnitID:             unitID,
			GuestID:            guestID,
			CheckIn:            checkIn,
			CheckOut:           checkOut,
			Nights:             3,
			Guests:             2,
			Status:             "pending",
			PaymentStatus:      "pending",
			Currency:           "USD",
			AccommodationTotal: 300,
			TotalPrice:         300,
		}
		opts := cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "BookingNumber", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, created, opts); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}
		assert.Regexp(t, `^BK-\d{8}-[A-Z0-9]{6}$`, created.BookingNumber)

		view := s.availability(t, unitID, checkIn, checkOut)
		assert.False(t, view.Available)
		assert.Equal(t, "dates occupied", view.Reason)

		s.changeStatus(t, ownerToken, created.ID, "confirmed")
		paid := s.changeStatus(t, ownerToken, created.ID, "paid")
		assert.Equal(t, "completed", paid.PaymentStatus)

		canceled := s.changeStatus(t, guestToken, created.ID, "canceled")
		assert.Equal(t, "canceled", canceled.Status)
		assert.Equal(t, int64(300), canceled.RefundAmount)
		assert.Equal(t, "partially_refunded", canceled.PaymentStatus)
		assert.NotNil(t, canceled.CanceledAt)

		hw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, created.ID), nil, guestToken)
		var history []response.StatusChangeResponse
		httptest.AssertSuccessResponse(t, hw, http.StatusOK, &history)
		require.Len(t, history, 4)
		assert.Nil(t, history[0].FromStatus)
		assert.Equal(t, "canceled", history[3].ToStatus)

		assert.True(t, s.availability(t, unitID, checkIn, checkOut).Available)
	})

	s.Run("Error case: a stranger cannot read the booking", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		_, strangerToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(10, 2)

		code, created := s.createBooking(t, guestToken, request.CreateBookingRequest{
			UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 1,
		}, nil)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, strangerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: invalid transition is rejected", func() {
		t := s.T()

		ownerID, ownerToken := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(10, 2)

		_, created := s.createBooking(t, guestToken, request.CreateBookingRequest{
			UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 1,
		}, nil)
		require.NotNil(t, created)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, created.ID),
			request.UpdateBookingStatusRequest{Status: "completed"}, ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Status change not allowed")
	})

	s.Run("Error case: unauthenticated request", func() {
		t := s.T()
		checkIn, checkOut := stay(10, 2)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			UnitID: uuid.New(), CheckIn: checkIn, CheckOut: checkOut, Guests: 1,
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCreateBookingConflicts - overlap, blocked days and concurrent requests
// =============================================================================

func (s *BookingSuite) TestCreateBookingConflicts() {
	s.Run("Error case: blocked day rejects the stay", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(15, 3)
		first, err := calendar.ParseDay(checkIn)
		require.NoError(t, err)
		dbtest.BlockTestDate(t, s.DB, unitID, calendar.AddDays(first, 1), "manual")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
		}, guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Dates are not available")
		assert.Zero(t, dbtest.CountRows(t, s.DB, "bookings", "unit_id = $1", unitID))
	})

	s.Run("Error case: back-to-back stays are allowed but overlaps are not", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(20, 3)

		code, _ := s.createBooking(t, guestToken, request.CreateBookingRequest{UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 1}, nil)
		require.Equal(t, http.StatusCreated, code)

		nextIn, nextOut := stay(23, 2)
		code, _ = s.createBooking(t, guestToken, request.CreateBookingRequest{UnitID: unitID, CheckIn: nextIn, CheckOut: nextOut, Guests: 1}, nil)
		assert.Equal(t, http.StatusCreated, code)

		overlapIn, overlapOut := stay(22, 2)
		code, _ = s.createBooking(t, guestToken, request.CreateBookingRequest{UnitID: unitID, CheckIn: overlapIn, CheckOut: overlapOut, Guests: 1}, nil)
		assert.Equal(t, http.StatusConflict, code)
	})

	s.Run("Concurrency: exactly one of many identical requests wins", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(40, 4)

		const attempts = 10
		tokens := make([]string, attempts)
		for i := range tokens {
			_, tokens[i] = s.jwt.NewActor(t, user.RoleGuest)
		}

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
					UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
				}, tokens[i])
				codes[i] = w.Code
			}(i)
		}
		close(start)
		wg.Wait()

		counts := map[int]int{}
		for _, c := range codes {
			counts[c]++
		}
		assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: attempts - 1}, counts)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "unit_id = $1", unitID))
	})
}

func (s *BookingSuite) TestBookingAgainstManualBlocks() {
	s.Run("Concurrency: a manual block and a booking never share a night", func() {
		t := s.T()

		ownerID, ownerToken := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		checkIn, checkOut := stay(70, 3)
		first, err := calendar.ParseDay(checkIn)
		require.NoError(t, err)
		middle := calendar.Key(calendar.AddDays(first, 1))

		const rounds = 15
		for round := range rounds {
			unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))

			var (
				wg          sync.WaitGroup
				bookingCode int
				blockCode   int
				blocked     response.DatesAffectedResponse
				decodeErr   error
			)
			start := make(chan struct{})
			wg.Add(2)
			go func() {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
					UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
				}, guestToken)
				bookingCode = w.Code
			}()
			go func() {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(blockedDatesURL, unitID),
					request.BlockDatesRequest{Dates: []string{middle}}, ownerToken)
				blockCode = w.Code
				decodeErr = json.Unmarshal(w.Body.Bytes(), &blocked)
			}()
			close(start)
			wg.Wait()

			require.Equal(t, http.StatusOK, blockCode, "round %d", round)
			require.NoError(t, decodeErr)
			switch bookingCode {
			case http.StatusCreated:
				assert.Zero(t, blocked.Affected, "round %d: day blocked under a new booking", round)
			case http.StatusConflict:
				assert.Equal(t, 1, blocked.Affected, "round %d", round)
			default:
				t.Fatalf("round %d: unexpected booking status %d", round, bookingCode)
			}

			overlapping := dbtest.CountRows(t, s.DB,
				"blocked_dates bd JOIN bookings b ON b.unit_id = bd.unit_id",
				"bd.unit_id = $1 AND b.status IN ('pending', 'confirmed', 'paid') AND bd.blocked_date >= b.check_in AND bd.blocked_date < b.check_out",
				unitID)
			assert.Zero(t, overlapping, "round %d", round)
		}
	})
}

// =============================================================================
// TestIdempotentCreate - Idempotency-Key replay semantics
// =============================================================================

func (s *BookingSuite) TestIdempotentCreate() {
	s.Run("Normal case: same key and body replays the booking", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(12, 2)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		req := request.CreateBookingRequest{UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2}

		code, first := s.createBooking(t, guestToken, req, headers)
		require.Equal(t, http.StatusCreated, code)

		code, second := s.createBooking(t, guestToken, req, headers)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "unit_id = $1", unitID))
	})

	s.Run("Concurrency: parallel requests with one key create one booking", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(80, 2)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		req := request.CreateBookingRequest{UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2}

		const attempts = 6
		codes := make([]int, attempts)
		ids := make([]uuid.UUID, attempts)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, req, guestToken, headers)
				codes[i] = w.Code
				var res response.BookingResponse
				if json.Unmarshal(w.Body.Bytes(), &res) == nil {
					ids[i] = res.ID
				}
			}(i)
		}
		close(start)
		wg.Wait()

		counts := map[int]int{}
		for _, c := range codes {
			counts[c]++
		}
		assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusOK: attempts - 1}, counts)
		for _, id := range ids[1:] {
			assert.Equal(t, ids[0], id)
		}
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "unit_id = $1", unitID))
	})

	s.Run("Error case: same key with a different body", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		checkIn, checkOut := stay(12, 2)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		code, _ := s.createBooking(t, guestToken, request.CreateBookingRequest{UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2}, headers)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 3}, guestToken, headers)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Idempotency key reused")
	})

	s.Run("Error case: malformed key", func() {
		t := s.T()
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		checkIn, checkOut := stay(12, 2)
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{UnitID: uuid.New(), CheckIn: checkIn, CheckOut: checkOut, Guests: 2},
			guestToken, map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})
}

// =============================================================================
// TestPromoCodes - promo discount and usage limits
// =============================================================================

func (s *BookingSuite) TestPromoCodes() {
	s.Run("Normal case: promo applies once and then runs out", func() {
		t := s.T()

		ownerID, _ := s.jwt.NewActor(t, user.RoleOwner)
		_, guestToken := s.jwt.NewActor(t, user.RoleGuest)
		unitID := dbtest.CreateTestUnit(t, s.DB, dbtest.DefaultUnit(ownerID))
		limit := 1
		promoID := dbtest.CreateTestPromo(t, s.DB, "WELCOME10", 10, &limit)
		code := "welcome10"

		checkIn, checkOut := stay(50, 3)
		status, created := s.createBooking(t, guestToken, request.CreateBookingRequest{
			UnitID: unitID, CheckIn: checkIn, CheckOut: checkOut, Guests: 2, PromoCode: &code,
		}, nil)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, int64(30), created.PromoDiscount)
		assert.Equal(t, int64(270), created.TotalPrice)
		require.NotNil(t, created.PromoCodeID)
		assert.Equal(t, promoID, *created.PromoCodeID)

		nextIn, nextOut := stay(60, 3)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			UnitID: unitID, CheckIn: nextIn, CheckOut: nextOut, Guests: 2, PromoCode: &code,
		}, guestToken)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "unit_id = $1", unitID))
	})
}
