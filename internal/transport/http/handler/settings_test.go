package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/transport/http/handler"
	"github.com/agencydesk/agencydesk/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeSettingsUsecase struct {
	getOrCreate func(ctx context.Context, ownerID string) (*domain.ReminderSettings, error)
	update      func(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.ReminderSettings, error)
}

func (f *fakeSettingsUsecase) GetOrCreate(ctx context.Context, ownerID string) (*domain.ReminderSettings, error) {
	return f.getOrCreate(ctx, ownerID)
}

func (f *fakeSettingsUsecase) Update(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.ReminderSettings, error) {
	return f.update(ctx, input)
}

// newSettingsEngine wires the handler behind a stub identity middleware so
// the handler sees the same "userID" key the real Auth middleware sets.
func newSettingsEngine(uc *fakeSettingsUsecase, userID string) *gin.Engine {
	h := handler.NewSettingsHandler(uc, testLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", userID) })
	r.GET("/settings/reminders", h.Get)
	r.PUT("/settings/reminders", h.Update)
	return r
}

func TestSettingsGet_FirstAccessReturnsDefaults(t *testing.T) {
	uc := &fakeSettingsUsecase{
		getOrCreate: func(_ context.Context, ownerID string) (*domain.ReminderSettings, error) {
			return domain.DefaultReminderSettings(ownerID), nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/settings/reminders", nil)
	newSettingsEngine(uc, "owner-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, field := range []string{"email_enabled", "one_month", "two_weeks", "three_days", "on_expiry_day"} {
		if !body[field] {
			t.Errorf("%s = false, want true on first access", field)
		}
	}
}

func TestSettingsUpdate_MissingField_Returns400(t *testing.T) {
	uc := &fakeSettingsUsecase{
		update: func(context.Context, usecase.UpdateSettingsInput) (*domain.ReminderSettings, error) {
			t.Fatal("update must not run on a partial payload")
			return nil, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings/reminders",
		strings.NewReader(`{"email_enabled":true,"one_month":true}`))
	req.Header.Set("Content-Type", "application/json")
	newSettingsEngine(uc, "owner-1").ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSettingsUpdate_ExplicitFalseAccepted(t *testing.T) {
	var gotInput usecase.UpdateSettingsInput
	uc := &fakeSettingsUsecase{
		update: func(_ context.Context, input usecase.UpdateSettingsInput) (*domain.ReminderSettings, error) {
			gotInput = input
			return &domain.ReminderSettings{
				OwnerID:      input.OwnerID,
				EmailEnabled: input.EmailEnabled,
				OneMonth:     input.OneMonth,
				TwoWeeks:     input.TwoWeeks,
				ThreeDays:    input.ThreeDays,
				OnExpiryDay:  input.OnExpiryDay,
			}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings/reminders",
		strings.NewReader(`{"email_enabled":true,"one_month":false,"two_weeks":true,"three_days":false,"on_expiry_day":true}`))
	req.Header.Set("Content-Type", "application/json")
	newSettingsEngine(uc, "owner-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotInput.OwnerID != "owner-1" {
		t.Errorf("owner = %q, want owner-1", gotInput.OwnerID)
	}
	if gotInput.OneMonth || gotInput.ThreeDays {
		t.Errorf("explicit false flags were not carried through: %+v", gotInput)
	}
	if !gotInput.EmailEnabled || !gotInput.TwoWeeks || !gotInput.OnExpiryDay {
		t.Errorf("true flags were lost: %+v", gotInput)
	}
}
