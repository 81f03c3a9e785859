package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

type fakeRenewalUsecase struct {
	expiring func(ctx context.Context, ownerID string, asOf time.Time, lookaheadDays int) ([]domain.ExpiringItem, error)
}

func (f *fakeRenewalUsecase) Expiring(ctx context.Context, ownerID string, asOf time.Time, lookaheadDays int) ([]domain.ExpiringItem, error) {
	return f.expiring(ctx, ownerID, asOf, lookaheadDays)
}

func newRenewalEngine(uc *fakeRenewalUsecase, userID string) *gin.Engine {
	h := handler.NewRenewalHandler(uc, testLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", userID) })
	r.GET("/renewals", h.List)
	return r
}

func TestRenewalsList_ReturnsClassifiedItems(t *testing.T) {
	uc := &fakeRenewalUsecase{
		expiring: func(_ context.Context, ownerID string, _ time.Time, _ int) ([]domain.ExpiringItem, error) {
			if ownerID != "owner-1" {
				t.Errorf("ownerID = %q, want owner-1", ownerID)
			}
			return []domain.ExpiringItem{
				{
					SourceID:    "h1",
					Kind:        domain.KindHosting,
					DisplayName: "prod box",
					ExpiryDate:  time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
					DaysLeft:    3,
					Tier:        domain.TierCritical,
				},
			}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/renewals", nil)
	newRenewalEngine(uc, "owner-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Renewals []struct {
			SourceID   string `json:"source_id"`
			Kind       string `json:"kind"`
			ExpiryDate string `json:"expiry_date"`
			DaysLeft   int    `json:"days_left"`
			Tier       string `json:"tier"`
		} `json:"renewals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Renewals) != 1 {
		t.Fatalf("got %d renewals, want 1", len(body.Renewals))
	}
	item := body.Renewals[0]
	if item.Tier != "critical" || item.DaysLeft != 3 {
		t.Errorf("item = %+v, want critical/3", item)
	}
	if item.ExpiryDate != "2024-01-04" {
		t.Errorf("expiry_date = %q, want calendar-date format", item.ExpiryDate)
	}
}

func TestRenewalsList_LookaheadQueryForwarded(t *testing.T) {
	var gotLookahead int
	uc := &fakeRenewalUsecase{
		expiring: func(_ context.Context, _ string, _ time.Time, lookaheadDays int) ([]domain.ExpiringItem, error) {
			gotLookahead = lookaheadDays
			return nil, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/renewals?lookahead_days=7", nil)
	newRenewalEngine(uc, "owner-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotLookahead != 7 {
		t.Errorf("lookahead = %d, want 7", gotLookahead)
	}
}

func TestRenewalsList_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeRenewalUsecase{
		expiring: func(context.Context, string, time.Time, int) ([]domain.ExpiringItem, error) {
			return nil, errors.New("db down")
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/renewals", nil)
	newRenewalEngine(uc, "owner-1").ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
