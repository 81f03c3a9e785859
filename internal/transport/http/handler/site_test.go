package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/transport/http/handler"
	"github.com/agencydesk/agencydesk/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeSiteRepo struct {
	create  func(ctx context.Context, s *domain.Site) (*domain.Site, error)
	getByID func(ctx context.Context, id, ownerID string) (*domain.Site, error)
}

func (r *fakeSiteRepo) Create(ctx context.Context, s *domain.Site) (*domain.Site, error) {
	return r.create(ctx, s)
}
func (r *fakeSiteRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.Site, error) {
	return r.getByID(ctx, id, ownerID)
}
func (r *fakeSiteRepo) List(context.Context, string) ([]*domain.Site, error) { return nil, nil }
func (r *fakeSiteRepo) ListExpiring(context.Context, string, time.Time) ([]*domain.Site, error) {
	return nil, nil
}
func (r *fakeSiteRepo) Update(ctx context.Context, s *domain.Site) (*domain.Site, error) {
	return s, nil
}
func (r *fakeSiteRepo) Delete(context.Context, string, string) error { return nil }

type fakeHostingRepo struct {
	getByID func(ctx context.Context, id, ownerID string) (*domain.HostingAccount, error)
}

func (r *fakeHostingRepo) Create(context.Context, *domain.HostingAccount) (*domain.HostingAccount, error) {
	return nil, nil
}
func (r *fakeHostingRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.HostingAccount, error) {
	return r.getByID(ctx, id, ownerID)
}
func (r *fakeHostingRepo) List(context.Context, string) ([]*domain.HostingAccount, error) {
	return nil, nil
}
func (r *fakeHostingRepo) ListExpiring(context.Context, string, time.Time) ([]*domain.HostingAccount, error) {
	return nil, nil
}
func (r *fakeHostingRepo) Update(context.Context, *domain.HostingAccount) (*domain.HostingAccount, error) {
	return nil, nil
}
func (r *fakeHostingRepo) Delete(context.Context, string, string) error { return nil }

func newSiteEngine(sites *fakeSiteRepo, hosting *fakeHostingRepo, userID string) *gin.Engine {
	uc := usecase.NewSiteUsecase(sites, hosting)
	h := handler.NewSiteHandler(uc, testLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", userID) })
	r.POST("/sites", h.Create)
	r.GET("/sites/:id", h.GetByID)
	return r
}

func TestSiteCreate_BadExpiryDate_Returns400(t *testing.T) {
	r := newSiteEngine(&fakeSiteRepo{}, &fakeHostingRepo{}, "owner-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sites",
		strings.NewReader(`{"domain":"example.com","expiry_date":"31/12/2024"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSiteCreate_DanglingHostingRef_Returns400(t *testing.T) {
	hosting := &fakeHostingRepo{
		getByID: func(context.Context, string, string) (*domain.HostingAccount, error) {
			return nil, domain.ErrHostingAccountNotFound
		},
	}
	r := newSiteEngine(&fakeSiteRepo{}, hosting, "owner-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sites",
		strings.NewReader(`{"domain":"example.com","expiry_date":"2024-12-31","hosting_account_id":"gone"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSiteCreate_ReturnsHostNameAndCalendarDate(t *testing.T) {
	sites := &fakeSiteRepo{
		create: func(_ context.Context, s *domain.Site) (*domain.Site, error) {
			s.ID = "site-1"
			return s, nil
		},
	}
	hosting := &fakeHostingRepo{
		getByID: func(_ context.Context, id, _ string) (*domain.HostingAccount, error) {
			return &domain.HostingAccount{ID: id, Name: "Hetzner box"}, nil
		},
	}
	r := newSiteEngine(sites, hosting, "owner-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sites",
		strings.NewReader(`{"domain":"example.com","expiry_date":"2024-12-31","hosting_account_id":"host-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var body struct {
		HostName   string `json:"host_name"`
		ExpiryDate string `json:"expiry_date"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.HostName != "Hetzner box" {
		t.Errorf("host_name = %q, want the hosting account's name", body.HostName)
	}
	if body.ExpiryDate != "2024-12-31" {
		t.Errorf("expiry_date = %q, want 2024-12-31", body.ExpiryDate)
	}
}

func TestSiteGetByID_NotFound_Returns404(t *testing.T) {
	sites := &fakeSiteRepo{
		getByID: func(context.Context, string, string) (*domain.Site, error) {
			return nil, domain.ErrSiteNotFound
		},
	}
	r := newSiteEngine(sites, &fakeHostingRepo{}, "owner-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sites/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
