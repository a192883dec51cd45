package auctions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
)

func NewMock(t *testing.T) (*AuctionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(method, id, body string) *http.Request {
	r := httptest.NewRequest(method, "/api/auctions/"+id+"/bids", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(context.Background(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, 7)
	return r.WithContext(ctx)
}

func TestPlaceBidHandler(t *testing.T) {
	auctionID := uuid.New()
	bidID := uuid.New()
	powerUpID := uuid.New()
	end := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Accepted",
			id:   auctionID.String(),
			body: `{"amount":130,"expected_version":1,"power_ups":["` + powerUpID.String() + `"]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBid(gomock.Any(), auctionservice.PlaceBidRequest{
					AuctionID:       auctionID,
					BidderID:        7,
					Amount:          130,
					ExpectedVersion: 1,
					PowerUpIDs:      []uuid.UUID{powerUpID},
				}).Return(&auctionservice.BidResult{
					BidID:   bidID,
					Price:   130,
					Charged: 117,
					Version: 2,
					EndTime: end,
					Effects: []domain.Effect{domain.Discount{Percent: 10, ChargedAmount: 117}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"bid_id":"` + bidID.String() + `","price":130,"charged":117,"version":2,"end_time":"2026-10-16T12:00:00Z","effects":[{"type":"discount","percent":10,"charged":117}]}`,
		},
		{
			name: "Version read when omitted",
			id:   auctionID.String(),
			body: `{"amount":130}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetAuctionState(gomock.Any(), auctionID).Return(&auctionservice.AuctionState{ID: auctionID, Version: 4}, nil)
				service.EXPECT().PlaceBid(gomock.Any(), auctionservice.PlaceBidRequest{
					AuctionID:       auctionID,
					BidderID:        7,
					Amount:          130,
					ExpectedVersion: 4,
					PowerUpIDs:      []uuid.UUID{},
				}).Return(&auctionservice.BidResult{BidID: bidID, Price: 130, Charged: 130, Version: 5, EndTime: end}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid auction id",
			id:           "abc",
			body:         `{"amount":130}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			id:           auctionID.String(),
			body:         `{"amount":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-positive amount",
			id:           auctionID.String(),
			body:         `{"amount":0,"expected_version":1}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"amount must be greater than 0"}`,
		},
		{
			name:         "Malformed power-up id",
			id:           auctionID.String(),
			body:         `{"amount":10,"expected_version":1,"power_ups":["nope"]}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Stale",
			id:   auctionID.String(),
			body: `{"amount":115,"expected_version":0}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, &domain.StaleBidError{CurrentPrice: 120, Version: 1})
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"stale bid","price":120,"version":1}`,
		},
		{
			name: "Blocked",
			id:   auctionID.String(),
			body: `{"amount":130,"expected_version":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, &domain.BidBlockedError{Effect: domain.PowerUpPriceFreeze, OwnerID: 3, Until: end})
			},
			expectedCode: http.StatusLocked,
			expectedBody: `{"error":"bid blocked by price_freeze of user 3 until 2026-10-16T12:00:00Z","effect":"price_freeze","owner_id":3,"until":"2026-10-16T12:00:00Z"}`,
		},
		{
			name: "Too low",
			id:   auctionID.String(),
			body: `{"amount":100,"expected_version":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, domain.ErrBidTooLow)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Not active",
			id:   auctionID.String(),
			body: `{"amount":200,"expected_version":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, &domain.AuctionNotActiveError{Status: domain.StatusEnded})
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown auction",
			id:   auctionID.String(),
			body: `{"amount":200}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetAuctionState(gomock.Any(), auctionID).Return(nil, domain.ErrAuctionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Power-up expired",
			id:   auctionID.String(),
			body: `{"amount":200,"expected_version":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPowerUpExpired)
			},
			expectedCode: http.StatusGone,
		},
		{
			name: "Internal error",
			id:   auctionID.String(),
			body: `{"amount":200,"expected_version":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.PlaceBid(w, request(http.MethodPost, tt.id, tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetAuctionHandler(t *testing.T) {
	auctionID := uuid.New()
	leader := 7
	start := time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetAuctionState(gomock.Any(), auctionID).Return(&auctionservice.AuctionState{
			ID:                   auctionID,
			Status:               domain.StatusActive,
			CurrentPrice:         120,
			CurrentHighestBidder: &leader,
			StartTime:            start,
			EndTime:              start.Add(time.Hour),
			Version:              1,
		}, nil)

		w := httptest.NewRecorder()
		handler.GetAuction(w, request(http.MethodGet, auctionID.String(), ""))

		require.Equal(t, http.StatusOK, w.Code)
		var body dto.AuctionResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "active", body.Status)
		assert.Equal(t, int64(120), body.CurrentPrice)
		assert.Equal(t, &leader, body.CurrentHighestBidder)
		assert.Equal(t, int64(1), body.Version)
	})

	t.Run("Not found", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetAuctionState(gomock.Any(), auctionID).Return(nil, domain.ErrAuctionNotFound)

		w := httptest.NewRecorder()
		handler.GetAuction(w, request(http.MethodGet, auctionID.String(), ""))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBidsHandler(t *testing.T) {
	auctionID := uuid.New()
	handler, service := NewMock(t)
	accepted := time.Date(2026, 10, 16, 11, 30, 0, 0, time.UTC)
	service.EXPECT().ListBids(gomock.Any(), auctionID).Return([]domain.Bid{
		{ID: uuid.New(), BidderID: 1, Amount: 120, AcceptedAt: accepted, ResultingVersion: 1},
		{ID: uuid.New(), BidderID: 2, Amount: 130, AcceptedAt: accepted, ResultingVersion: 2},
	}, nil)

	w := httptest.NewRecorder()
	handler.ListBids(w, request(http.MethodGet, auctionID.String(), ""))

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.BidResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, int64(130), body[1].Amount)
	assert.Equal(t, int64(2), body[1].Version)
}
