package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "dashboard/internal/config"
	"dashboard/internal/domain"
	"dashboard/internal/repositories"
	"dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type testServer struct {
	engine *gin.Engine
	admin  string
	staff  string
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed, err := repositories.LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed error: %v", err)
	}
	admin, err := services.NewUser("1", "Administrator", "admin", "admin123", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser error: %v", err)
	}
	staff, err := services.NewUser("2", "Cashier", "cashier", "cashier123", domain.RoleStaff)
	if err != nil {
		t.Fatalf("NewUser error: %v", err)
	}
	auth := services.AuthService{
		Users:  services.NewMemoryUserStore(admin, staff),
		Secret: []byte("router-test"),
		TTL:    time.Hour,
	}
	env := intconfig.Env{DefaultPageSize: 8, CORSAllowedOrigins: []string{"http://localhost:3000"}}
	r := NewRouter(env, services.Registry{Sources: repositories.SeedSources(seed)}, auth)

	srv := testServer{engine: r}
	srv.admin = srv.login(t, "admin", "admin123")
	srv.staff = srv.login(t, "cashier", "cashier123")
	return srv
}

func (s testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s testServer) login(t *testing.T, user, pass string) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": user, "password": pass})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", user, w.Code, w.Body.String())
	}
	var res struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Token == "" {
		t.Fatalf("login %s: no token in %s", user, w.Body.String())
	}
	return res.Token
}

type listBody struct {
	Items       []map[string]any   `json:"items"`
	TotalItems  int                `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Summaries   map[string]float64 `json:"summaries"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listBody {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var out listBody
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return out
}

func TestHealthIsPublic(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func TestCollectionsRequireToken(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/api/courses", "/api/invoices", "/api/dashboard"} {
		if w := srv.do(http.MethodGet, path, "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
	if w := srv.do(http.MethodGet, "/api/courses", "not-a-jwt", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestListCoursesWithFilters(t *testing.T) {
	srv := newTestServer(t)
	body := decodeList(t, srv.do(http.MethodGet, "/api/courses?status=ongoing&page=1&pageSize=1", srv.staff, nil))
	if body.TotalItems != 2 || body.TotalPages != 2 || len(body.Items) != 1 {
		t.Fatalf("unexpected page: %+v", body)
	}
	if body.Items[0]["id"] != "CRS-003" {
		t.Fatalf("expected newest ongoing course first, got %v", body.Items[0]["id"])
	}
	if body.Summaries["ongoing"] != 2 {
		t.Fatalf("unexpected summaries: %v", body.Summaries)
	}
}

func TestListPastLastPageIsEmpty(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/api/invoices?page=99", srv.staff, nil)
	body := decodeList(t, w)
	if body.Items == nil || len(body.Items) != 0 || body.TotalItems != 12 || body.CurrentPage != 99 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Fatalf("items must serialize as an empty array: %s", w.Body.String())
	}
}

func TestListBadPageParamsFallBack(t *testing.T) {
	srv := newTestServer(t)
	body := decodeList(t, srv.do(http.MethodGet, "/api/projects?page=abc&pageSize=-3", srv.staff, nil))
	if body.CurrentPage != 1 || len(body.Items) != 5 {
		t.Fatalf("unexpected fallback paging: %+v", body)
	}
}

func TestCreateReturnsValidationDetails(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodPost, "/api/invoices", srv.staff, gin.H{"type": "gift", "amount": 10})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"field":"type"`) {
		t.Fatalf("expected field detail for type: %s", w.Body.String())
	}

	w = srv.do(http.MethodPost, "/api/invoices", srv.staff, gin.H{
		"date": "2024-03-01", "type": "income", "amount": 150, "category": "course",
	})
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteUnknownIsNotFound(t *testing.T) {
	srv := newTestServer(t)
	if w := srv.do(http.MethodDelete, "/api/contracts/CNT-404", srv.staff, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInvoiceExportPDF(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/api/invoices/export.pdf?type=outcome", srv.staff, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	srv := newTestServer(t)
	if w := srv.do(http.MethodGet, "/api/admin/overview", srv.staff, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff, got %d", w.Code)
	}
	w := srv.do(http.MethodGet, "/api/admin/overview", srv.admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
	var ov services.FundOverview
	if err := json.Unmarshal(w.Body.Bytes(), &ov); err != nil {
		t.Fatalf("decode overview: %v", err)
	}
	if ov.TotalBalance != 81000 || ov.UnreadNotifications != 3 {
		t.Fatalf("unexpected overview: %+v", ov)
	}
}

func TestAdminFundTransactionsAndTransfer(t *testing.T) {
	srv := newTestServer(t)
	body := decodeList(t, srv.do(http.MethodGet, "/api/admin/funds/F3/transactions", srv.admin, nil))
	if body.TotalItems != 2 || body.Summaries["totalIncome"] != 29000 {
		t.Fatalf("unexpected ledger: %+v", body)
	}
	if w := srv.do(http.MethodGet, "/api/admin/funds/F9/transactions", srv.admin, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown fund, got %d", w.Code)
	}

	w := srv.do(http.MethodPost, "/api/admin/transfers", srv.admin, gin.H{"fromFundId": "F6", "toFundId": "F5", "amount": 100000})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestShiftAndDashboard(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/api/shifts/current", srv.staff, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"shift_2"`) {
		t.Fatalf("unexpected current shift: %d %s", w.Code, w.Body.String())
	}
	w = srv.do(http.MethodGet, "/api/dashboard", srv.staff, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var ov services.Overview
	if err := json.Unmarshal(w.Body.Bytes(), &ov); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if ov.Invoices["totalInvoices"] != 12 {
		t.Fatalf("unexpected dashboard: %+v", ov)
	}
}

func TestLoginFailures(t *testing.T) {
	srv := newTestServer(t)
	if w := srv.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "wrongpass"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if w := srv.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "ad"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListHugePagingParams(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/api/invoices?page=2305843009213693951", srv.staff, nil)
	body := decodeList(t, w)
	if len(body.Items) != 0 || body.TotalItems != 12 || body.TotalPages != 2 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}

	body = decodeList(t, srv.do(http.MethodGet, "/api/invoices?pageSize=9223372036854775807", srv.staff, nil))
	if len(body.Items) != 12 || body.TotalPages != 1 {
		t.Fatalf("unexpected single page: %+v", body)
	}
}

func TestShiftOpenAndClose(t *testing.T) {
	srv := newTestServer(t)
	if w := srv.do(http.MethodPost, "/api/shifts", srv.staff, nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while a shift is open, got %d: %s", w.Code, w.Body.String())
	}
	w := srv.do(http.MethodPost, "/api/shifts/current/close", srv.staff, nil)
	if w.Code != http.StatusAccepted || !strings.Contains(w.Body.String(), `"status":"closed"`) {
		t.Fatalf("unexpected close response: %d %s", w.Code, w.Body.String())
	}
}

func TestPersonalPageIsScopedToCaller(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/api/personal?userId=1", srv.staff, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"userId":"2"`) || strings.Contains(w.Body.String(), `"userId":"1"`) {
		t.Fatalf("staff must only see their own page: %d %s", w.Code, w.Body.String())
	}

	body := decodeList(t, srv.do(http.MethodGet, "/api/personal/internal-tasks?userId=1", srv.admin, nil))
	if body.TotalItems != 3 || body.Summaries["earnedBonus"] != 50 {
		t.Fatalf("unexpected internal tasks for admin: %+v", body)
	}

	body = decodeList(t, srv.do(http.MethodGet, "/api/personal/tasks?status=in_progress", srv.staff, nil))
	if body.TotalItems != 1 || body.Items[0]["id"] != "T4" {
		t.Fatalf("unexpected staff tasks: %+v", body)
	}
}

func TestPDFFilenameIsSanitized(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/api/admin/funds/report.pdf", srv.admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, `inline; filename="FUNDS_`) || strings.ContainsAny(strings.TrimPrefix(cd, "inline; filename="), ` /:`) {
		t.Fatalf("unexpected Content-Disposition %q", cd)
	}
}
