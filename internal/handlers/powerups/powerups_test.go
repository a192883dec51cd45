package powerups

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
)

func NewMock(t *testing.T) (*PowerUpHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(method, target, id, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(context.Background(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, 7)
	return r.WithContext(ctx)
}

func TestActivateHandler(t *testing.T) {
	powerUpID := uuid.New()
	auctionID := uuid.New()
	until := time.Date(2026, 10, 16, 12, 0, 10, 0, time.UTC)
	body := `{"auction_id":"` + auctionID.String() + `"}`

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Freeze activated",
			id:   powerUpID.String(),
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), powerUpID, 7, auctionID).
					Return(domain.PriceFreeze{Until: until}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"type":"price_freeze","until":"2026-10-16T12:00:10Z"}`,
		},
		{
			name:         "Bad power-up id",
			id:           "nope",
			body:         body,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid power-up id"}`,
		},
		{
			name:         "Malformed body",
			id:           powerUpID.String(),
			body:         `{`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Auction id missing",
			id:           powerUpID.String(),
			body:         `{}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"auction_id is required"}`,
		},
		{
			name: "Not owned",
			id:   powerUpID.String(),
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), powerUpID, 7, auctionID).
					Return(nil, domain.ErrPowerUpNotOwned)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Expired",
			id:   powerUpID.String(),
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), powerUpID, 7, auctionID).
					Return(nil, domain.ErrPowerUpExpired)
			},
			expectedCode: http.StatusGone,
		},
		{
			name: "Not applicable",
			id:   powerUpID.String(),
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), powerUpID, 7, auctionID).
					Return(nil, domain.ErrEffectNotApplicable)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Activate(w, request(http.MethodPost, "/api/powerups/"+tt.id+"/activate", tt.id, tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestListOwnedHandler(t *testing.T) {
	powerUpID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Listed",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListOwned(gomock.Any(), 7).Return([]domain.PowerUp{
					{ID: powerUpID, OwnerID: 7, Type: domain.PowerUpDiscount, UsesLeft: 2},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":"` + powerUpID.String() + `","type":"discount","uses_left":2,"is_used":false}]`,
		},
		{
			name: "Empty list",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListOwned(gomock.Any(), 7).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "Store error",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListOwned(gomock.Any(), 7).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.ListOwned(w, request(http.MethodGet, "/api/user/powerups", "", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
