package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/handlers"
	"github.com/garagehub/marketplace-api/internal/models"
	booking "github.com/garagehub/marketplace-api/internal/usecase/booking"
)

// stubRepo serves the availability endpoint only; everything else is a miss.
type stubRepo struct {
	offering *models.VendorService
	items    []models.BookingItem
}

var _ domain.Repository = (*stubRepo)(nil)

func (s *stubRepo) GetOffering(_ context.Context, vendorID, serviceID uuid.UUID) (*models.VendorService, error) {
	if s.offering != nil && s.offering.VendorID == vendorID && s.offering.ServiceID == serviceID {
		return s.offering, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) ListItemsForVendorDay(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]models.BookingItem, error) {
	return s.items, nil
}

func (s *stubRepo) GetCustomerByUser(context.Context, uuid.UUID) (*models.Customer, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRepo) GetVendorByUser(context.Context, uuid.UUID) (*models.Vendor, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRepo) ListCartItems(context.Context, uuid.UUID) ([]models.CartItem, error) {
	return nil, nil
}
func (s *stubRepo) CreateCheckout(context.Context, *models.BookingGroup, *models.Payment) error {
	return nil
}
func (s *stubRepo) GetItemForVendor(context.Context, uuid.UUID, uuid.UUID) (*models.BookingItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRepo) GetItemForCustomer(context.Context, uuid.UUID, uuid.UUID) (*models.BookingItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRepo) UpdateItem(context.Context, *models.BookingItem) error { return nil }
func (s *stubRepo) ListItemsForVendorPeriod(context.Context, uuid.UUID, time.Time, time.Time) ([]models.BookingItem, error) {
	return nil, nil
}
func (s *stubRepo) ListItemsForCustomer(context.Context, uuid.UUID) ([]models.BookingItem, error) {
	return nil, nil
}
func (s *stubRepo) ListItemsForVendor(context.Context, uuid.UUID) ([]models.BookingItem, error) {
	return nil, nil
}

func slotsRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := booking.NewComputeSlots(repo, domain.DefaultCalendar(), time.UTC)
	h := handlers.NewAvailabilityHandler(uc)

	r := gin.New()
	r.GET("/api/availability/slots", h.Slots)
	return r
}

func get(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSlotsMissingParams(t *testing.T) {
	r := slotsRouter(&stubRepo{})

	w := get(t, r, "/api/availability/slots?vendor_id="+uuid.NewString())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["error_code"] != "missing_parameters" {
		t.Fatalf("error_code = %q, want missing_parameters", body["error_code"])
	}
}

func TestSlotsUnknownPairIs404(t *testing.T) {
	r := slotsRouter(&stubRepo{})

	url := "/api/availability/slots?vendor_id=" + uuid.NewString() +
		"&service_id=" + uuid.NewString() + "&date=2026-09-07"
	w := get(t, r, url)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSlotsWeekendReturnsEmptyList(t *testing.T) {
	// No offering seeded: on a weekend the lookup never happens.
	r := slotsRouter(&stubRepo{})

	url := "/api/availability/slots?vendor_id=" + uuid.NewString() +
		"&service_id=" + uuid.NewString() + "&date=2026-09-05"
	w := get(t, r, url)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Date  string `json:"date"`
		Slots []any  `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Slots == nil || len(body.Slots) != 0 {
		t.Fatalf("slots = %v, want an empty array", body.Slots)
	}
}

func TestSlotsResponseContract(t *testing.T) {
	vendorID := uuid.New()
	serviceID := uuid.New()

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	start := day.Add(10 * time.Hour)
	end := day.Add(11 * time.Hour)

	repo := &stubRepo{
		offering: &models.VendorService{
			VendorID:    vendorID,
			ServiceID:   serviceID,
			Service:     models.Service{Name: "Oil Change", Active: true},
			DurationMin: 60,
			Active:      true,
		},
		items: []models.BookingItem{
			{VendorID: vendorID, StartTime: &start, EndTime: &end, Status: "processing"},
		},
	}

	r := slotsRouter(repo)
	url := "/api/availability/slots?vendor_id=" + vendorID.String() +
		"&service_id=" + serviceID.String() + "&date=2026-09-07"
	w := get(t, r, url)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body struct {
		VendorID  string `json:"vendor_id"`
		ServiceID string `json:"service_id"`
		Date      string `json:"date"`
		Slots     []struct {
			Time        string `json:"time"`
			IsAvailable bool   `json:"is_available"`
		} `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	if body.VendorID != vendorID.String() || body.ServiceID != serviceID.String() || body.Date != "2026-09-07" {
		t.Fatalf("echo fields wrong: %+v", body)
	}
	if len(body.Slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(body.Slots))
	}

	for _, s := range body.Slots {
		switch s.Time {
		case "10:00":
			if s.IsAvailable {
				t.Fatal("10:00 should be booked")
			}
		default:
			if !s.IsAvailable {
				t.Fatalf("slot %s should be free", s.Time)
			}
		}
	}
}
