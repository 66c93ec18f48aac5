package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/weiyuzhang/dealerhub/internal/domain"
	"github.com/weiyuzhang/dealerhub/internal/transport/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// fakeCarCatalog implements the unexported carCatalog interface via method matching.
type fakeCarCatalog struct {
	getCar       func(ctx context.Context, id string) (*domain.Car, error)
	getCarDealer func(ctx context.Context, carID string) (*domain.Dealer, error)
}

func (f *fakeCarCatalog) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	return f.getCar(ctx, id)
}

func (f *fakeCarCatalog) GetCarDealer(ctx context.Context, carID string) (*domain.Dealer, error) {
	return f.getCarDealer(ctx, carID)
}

func newCarEngine(catalog *fakeCarCatalog) *gin.Engine {
	h := handler.NewCarHandler(catalog, testLogger())

	r := gin.New()
	r.GET("/api/cars/:carId", h.GetByID)
	r.GET("/api/cars/:carId/dealer", h.GetDealer)
	return r
}

func strptr(s string) *string { return &s }

func bodyKeys(t *testing.T, body []byte) []string {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func errMessage(t *testing.T, body []byte) string {
	t.Helper()
	var m struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return m.Error
}

// The car used across the happy-path tests. Extra domain fields (status,
// dealer linkage, timestamps) must never reach the response.
var testCar = &domain.Car{
	ID:           "car-1",
	Name:         "曜影 Pro",
	BasePrice:    289800,
	Description:  strptr("旗舰轿跑"),
	Thumbnail:    strptr("https://cdn.example.com/yaoying-pro.jpg"),
	DefaultColor: strptr("曜石黑"),
	Status:       domain.CarStatusActive,
	DealerID:     strptr("dealer-1"),
}

// ---- GetByID ----

func TestGetCar_Found_ReturnsExactlySixFields(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCar: func(_ context.Context, id string) (*domain.Car, error) {
			if id != testCar.ID {
				return nil, domain.ErrCarNotFound
			}
			return testCar, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/car-1", nil)
	newCarEngine(catalog).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	want := []string{"basePrice", "defaultColor", "description", "id", "name", "thumbnail"}
	got := bodyKeys(t, w.Body.Bytes())
	if len(got) != len(want) {
		t.Fatalf("response keys = %v, want exactly %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("response keys = %v, want exactly %v", got, want)
		}
	}
}

func TestGetCar_NotFound_Returns404WithMessage(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCar: func(_ context.Context, _ string) (*domain.Car, error) {
			return nil, domain.ErrCarNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/missing", nil)
	newCarEngine(catalog).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if msg := errMessage(t, w.Body.Bytes()); msg != "车型不存在" {
		t.Errorf("error = %q, want %q", msg, "车型不存在")
	}
}

func TestGetCar_RepoFailure_Returns500Generic(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCar: func(_ context.Context, _ string) (*domain.Car, error) {
			return nil, errors.New("pq: connection reset")
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/car-1", nil)
	newCarEngine(catalog).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	msg := errMessage(t, w.Body.Bytes())
	if msg != "服务器内部错误" {
		t.Errorf("error = %q, want generic message (no internal detail)", msg)
	}
}

func TestGetCar_Repeated_ReturnsByteIdenticalBody(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCar: func(_ context.Context, _ string) (*domain.Car, error) {
			return testCar, nil
		},
	}
	engine := newCarEngine(catalog)

	first := httptest.NewRecorder()
	engine.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/cars/car-1", nil))
	second := httptest.NewRecorder()
	engine.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/cars/car-1", nil))

	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Errorf("repeated GET bodies differ:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

// ---- GetDealer ----

var testDealer = &domain.Dealer{
	ID:            "dealer-1",
	Name:          "星辰汽车",
	BusinessName:  strptr("上海星辰汽车销售有限公司"),
	Logo:          strptr("https://cdn.example.com/xingchen.png"),
	Address:       strptr("浦东新区世纪大道100号"),
	City:          strptr("上海"),
	Province:      strptr("上海"),
	PostalCode:    strptr("200120"), // must not leak
	BusinessHours: strptr("周一至周日 9:00-18:00"),
	Description:   strptr("内部备注"), // must not leak
	Phone:         "021-55550001",
}

func TestGetCarDealer_Found_ReturnsExactlyNineFields(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCarDealer: func(_ context.Context, _ string) (*domain.Dealer, error) {
			return testDealer, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/car-1/dealer", nil)
	newCarEngine(catalog).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	want := []string{
		"address", "businessHours", "businessName", "city",
		"id", "logo", "name", "phone", "province",
	}
	got := bodyKeys(t, w.Body.Bytes())
	if len(got) != len(want) {
		t.Fatalf("response keys = %v, want exactly %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("response keys = %v, want exactly %v", got, want)
		}
	}
}

func TestGetCarDealer_CarMissing_Returns404CarMessage(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCarDealer: func(_ context.Context, _ string) (*domain.Dealer, error) {
			return nil, domain.ErrCarNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/missing/dealer", nil)
	newCarEngine(catalog).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if msg := errMessage(t, w.Body.Bytes()); msg != "车型不存在" {
		t.Errorf("error = %q, want %q", msg, "车型不存在")
	}
}

func TestGetCarDealer_NoDealer_Returns404DistinctMessage(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCarDealer: func(_ context.Context, _ string) (*domain.Dealer, error) {
			return nil, domain.ErrCarNoDealer
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/car-5/dealer", nil)
	newCarEngine(catalog).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	msg := errMessage(t, w.Body.Bytes())
	if msg != "该车型没有关联经销商" {
		t.Errorf("error = %q, want %q", msg, "该车型没有关联经销商")
	}
	if msg == "车型不存在" {
		t.Error("no-dealer case must not reuse the car-not-found message")
	}
}

func TestGetCarDealer_RepoFailure_Returns500Generic(t *testing.T) {
	catalog := &fakeCarCatalog{
		getCarDealer: func(_ context.Context, _ string) (*domain.Dealer, error) {
			return nil, errors.New("pq: connection reset")
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/car-1/dealer", nil)
	newCarEngine(catalog).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if msg := errMessage(t, w.Body.Bytes()); msg != "服务器内部错误" {
		t.Errorf("error = %q, want generic message", msg)
	}
}
