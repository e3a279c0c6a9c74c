package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinema-reservation/internal/adaptor"
	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/internal/usecase/mocks"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminKey = "let-me-in"

type services struct {
	showtime   *mocks.ShowtimeService
	hold       *mocks.HoldService
	booking    *mocks.BookingService
	settlement *mocks.SettlementService
}

func newTestRouter(t *testing.T) (http.Handler, *services) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	require.NoError(t, err)

	s := &services{
		showtime:   mocks.NewShowtimeService(t),
		hold:       mocks.NewHoldService(t),
		booking:    mocks.NewBookingService(t),
		settlement: mocks.NewSettlementService(t),
	}
	handler := adaptor.NewHandler(&usecase.Service{
		Showtime:   s.showtime,
		Hold:       s.hold,
		Booking:    s.booking,
		Settlement: s.settlement,
	}, zap.NewNop())

	config := &utils.Config{
		App:   utils.AppConfig{RequestTimeout: 5 * time.Second},
		Admin: utils.AdminConfig{KeyHash: string(hash)},
	}
	return setupRouter(handler, config, zap.NewNop()), s
}

func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := serve(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateHold_PassesHolder(t *testing.T) {
	router, s := newTestRouter(t)
	holder := uuid.New()
	showtimeID := uuid.NewString()
	seatID := uuid.NewString()

	s.hold.On("Hold", mock.Anything, showtimeID, &holder, &request.CreateHoldRequest{SeatIDs: []string{seatID}}).
		Return(&response.HoldResponse{HoldToken: "tok", SeatIDs: []string{seatID}}, nil)

	rec := serve(router, http.MethodPost, "/api/showtimes/"+showtimeID+"/holds",
		fmt.Sprintf(`{"seat_ids":[%q]}`, seatID),
		map[string]string{middleware.HeaderUserID: holder.String()})

	require.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec).Data.(map[string]any)
	assert.Equal(t, "tok", data["hold_token"])
}

func TestCreateHold_Anonymous(t *testing.T) {
	router, s := newTestRouter(t)
	showtimeID := uuid.NewString()

	s.hold.On("Hold", mock.Anything, showtimeID, (*uuid.UUID)(nil), mock.Anything).
		Return(&response.HoldResponse{HoldToken: "tok"}, nil)

	rec := serve(router, http.MethodPost, "/api/showtimes/"+showtimeID+"/holds",
		fmt.Sprintf(`{"seat_ids":[%q]}`, uuid.NewString()), nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateHold_BadInput(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		headers map[string]string
	}{
		{"invalid json", `{`, nil},
		{"empty selection", `{"seat_ids":[]}`, nil},
		{"bad holder header", fmt.Sprintf(`{"seat_ids":[%q]}`, uuid.NewString()),
			map[string]string{middleware.HeaderUserID: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, "/api/showtimes/"+uuid.NewString()+"/holds", tt.body, tt.headers)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestReleaseHold_AlwaysNoContent(t *testing.T) {
	router, s := newTestRouter(t)
	s.hold.On("Release", mock.Anything, mock.Anything, "tok", (*uuid.UUID)(nil)).Return(errors.New("db down"))

	rec := serve(router, http.MethodDelete, "/api/showtimes/"+uuid.NewString()+"/holds/tok", "", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: bad", entity.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: hold", entity.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: hold", entity.ErrExpired), http.StatusGone},
		{fmt.Errorf("%w: seat", entity.ErrConflict), http.StatusConflict},
		{fmt.Errorf("lock seats: %w", errors.Join(entity.ErrConflict, errors.New("55P03"))), http.StatusConflict},
		{fmt.Errorf("%w: down", entity.ErrProvider), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			router, s := newTestRouter(t)
			s.booking.On("Book", mock.Anything, (*uuid.UUID)(nil), mock.Anything).Return(nil, tt.err)

			rec := serve(router, http.MethodPost, "/api/bookings",
				`{"hold_token":"tok","payment_method":"cash"}`, nil)

			assert.Equal(t, tt.code, rec.Code)
			assert.False(t, decode(t, rec).Status)
		})
	}
}

func TestUserBookings_RequiresHolder(t *testing.T) {
	router, s := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api/user/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	holder := uuid.New()
	s.booking.On("ListByHolder", mock.Anything, holder, &request.PaginatedRequest{Page: 2, PerPage: 5}).
		Return(response.NewPaginatedResponse([]response.BookingResponse{}, 2, 5, 0), nil)

	rec = serve(router, http.MethodGet, "/api/user/bookings?page=2&per_page=5", "",
		map[string]string{middleware.HeaderUserID: holder.String()})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	router, s := newTestRouter(t)
	bookingID := uuid.NewString()

	rec := serve(router, http.MethodPut, "/api/admin/bookings/"+bookingID+"/cancel", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(router, http.MethodPut, "/api/admin/bookings/"+bookingID+"/cancel", "",
		map[string]string{middleware.HeaderAdminKey: "guess"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	s.booking.On("Cancel", mock.Anything, bookingID, (*uuid.UUID)(nil), true).Return(nil)
	rec = serve(router, http.MethodPut, "/api/admin/bookings/"+bookingID+"/cancel", "",
		map[string]string{middleware.HeaderAdminKey: adminKey})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicCancel_IsNotStaff(t *testing.T) {
	router, s := newTestRouter(t)
	holder := uuid.New()
	bookingID := uuid.NewString()

	s.booking.On("Cancel", mock.Anything, bookingID, &holder, false).
		Return(fmt.Errorf("%w: paid", entity.ErrValidation))

	rec := serve(router, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", "",
		map[string]string{middleware.HeaderUserID: holder.String()})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeatMap(t *testing.T) {
	router, s := newTestRouter(t)
	showtimeID := uuid.NewString()
	s.showtime.On("GetSeatMap", mock.Anything, showtimeID).Return(&response.SeatMapResponse{
		ShowtimeID: showtimeID,
		Seats: []response.SeatMapSeat{
			{ID: uuid.NewString(), Row: "H", Number: 1, Type: entity.SeatTypeCouple, Status: entity.SeatStatusHeld, PairID: "H-1"},
		},
	}, nil)

	rec := serve(router, http.MethodGet, "/api/showtimes/"+showtimeID+"/seats", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pair_id":"H-1"`)
	assert.Contains(t, rec.Body.String(), `"status":"HELD"`)
}

func TestWebhook(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"applied", nil, http.StatusOK},
		{"malformed", fmt.Errorf("%w: json", entity.ErrValidation), http.StatusBadRequest},
		{"not applicable", fmt.Errorf("%w: amount", entity.ErrSettlement), http.StatusOK},
		{"internal", errors.New("db down"), http.StatusServiceUnavailable},
		{"lock timeout", fmt.Errorf("%w: lock timeout", entity.ErrConflict), http.StatusServiceUnavailable},
		{"status check down", fmt.Errorf("%w: status check failed", entity.ErrProvider), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, s := newTestRouter(t)
			body := `{"code":"00","data":{"orderCode":1}}`
			s.settlement.On("Settle", mock.Anything, []byte(body), usecase.WebhookHeaders{
				ClientID: "client-1",
				APIKey:   "secret",
			}).Return(tt.err)

			rec := serve(router, http.MethodPost, "/api/payments/webhook", body, map[string]string{
				"x-client-id": "client-1",
				"x-api-key":   "secret",
			})

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
