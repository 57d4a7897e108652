package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turagency/backoffice/internal/chat"
	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/services"
	"github.com/turagency/backoffice/internal/store"
	"github.com/turagency/backoffice/internal/utils"
)

type testEnv struct {
	server     *httptest.Server
	storage    *store.Store
	uploadsDir string
}

func newTestEnv(t *testing.T) *testEnv {
	storage, err := store.New(t.TempDir())
	require.NoError(t, err)

	authService := services.NewAuthService(storage)
	require.NoError(t, authService.EnsureAdmin(context.Background(), "admin", "secret"))

	uploadsDir := t.TempDir()
	r := New(
		Config{UploadsDir: uploadsDir},
		authService,
		services.NewJWTService("test-key"),
		services.NewFinanceService(storage),
		services.NewRentacarService(storage),
		services.NewRecycleBinService(storage),
		services.NewPartnerService(storage),
		services.NewBookkeepingService(storage),
		services.NewAuditLogService(storage, nil),
		services.NewImgurUploadService("", storage),
		chat.NewHub(storage),
	)

	server := httptest.NewServer(r.get())
	t.Cleanup(server.Close)

	return &testEnv{server: server, storage: storage, uploadsDir: uploadsDir}
}

// login performs the login flow and returns headers carrying the session
// cookie for subsequent requests.
func (e *testEnv) login(t *testing.T) map[string]string {
	resp, _ := utils.TestRequest(t, e.server, "POST", "/login",
		map[string]string{"Content-Type": "application/json"},
		strings.NewReader(`{"username":"admin","password":"secret"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session" {
			return map[string]string{
				"Content-Type": "application/json",
				"Cookie":       "session=" + cookie.Value,
			}
		}
	}
	t.Fatal("login response carries no session cookie")
	return nil
}

func TestLoginRoute(t *testing.T) {
	env := newTestEnv(t)

	testCases := []struct {
		testName     string
		body         string
		expectedCode int
	}{
		{"valid credentials", `{"username":"admin","password":"secret"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"wrong"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"ghost","password":"secret"}`, http.StatusUnauthorized},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			resp, body := utils.TestRequest(t, env.server, "POST", "/login",
				map[string]string{"Content-Type": "application/json"},
				strings.NewReader(tc.body))
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			if tc.expectedCode == http.StatusOK {
				var user models.PublicUser
				require.NoError(t, json.Unmarshal([]byte(body), &user))
				assert.Equal(t, "admin", user.Username)
				assert.Equal(t, models.RoleOwner, user.Role)
			}
		})
	}
}

func TestRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{
		"/api/dashboard/summary",
		"/api/rentacar/reservations",
		"/api/partners/",
		"/api/orders/",
	} {
		resp, _ := utils.TestRequest(t, env.server, "GET", path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestReservationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	resp, body := utils.TestRequest(t, env.server, "POST", "/api/rentacar/reservations", headers,
		strings.NewReader(`{
			"carPlate": "10-AA-123",
			"customerName": "Anar",
			"phone": "+994501234567",
			"pickupDate": "2099-01-01",
			"returnDate": "2099-01-04"
		}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	var created models.Reservation
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, 3, created.Days)
	assert.Equal(t, models.StatusOnHold, created.Status)
	assert.Equal(t, "admin", created.CreatedBy)

	resp, body = utils.TestRequest(t, env.server, "GET", "/api/rentacar/reservations?q=anar", headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []models.Reservation
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	require.Len(t, listed, 1)

	resp, body = utils.TestRequest(t, env.server, "PUT", "/api/rentacar/reservations/"+created.ID, headers,
		strings.NewReader(`{"status":"Götürülüb"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var updated models.Reservation
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, models.StatusPickedUp, updated.Status)

	resp, _ = utils.TestRequest(t, env.server, "DELETE", "/api/rentacar/reservations/"+created.ID, headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = utils.TestRequest(t, env.server, "DELETE", "/api/rentacar/reservations/"+created.ID, headers, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateReservationMultipartWithIDImage(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("carPlate", "10-AA-123"))
	require.NoError(t, form.WriteField("customerName", "Anar"))
	require.NoError(t, form.WriteField("phone", "+994501234567"))
	require.NoError(t, form.WriteField("pickupDate", "2099-01-01"))
	require.NoError(t, form.WriteField("returnDate", "2099-01-02"))
	file, err := form.CreateFormFile("idImage", "passport.jpg")
	require.NoError(t, err)
	_, err = io.WriteString(file, "fake image bytes")
	require.NoError(t, err)
	require.NoError(t, form.Close())

	headers["Content-Type"] = form.FormDataContentType()
	resp, body := utils.TestRequest(t, env.server, "POST", "/api/rentacar/reservations", headers, &buf)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	var created models.Reservation
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.True(t, strings.HasPrefix(created.IDImagePath, "/uploads/id_images/"), created.IDImagePath)

	stored := filepath.Join(env.uploadsDir, "id_images", filepath.Base(created.IDImagePath))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestCarRoutes(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	resp, body := utils.TestRequest(t, env.server, "POST", "/api/rentacar/cars", headers,
		strings.NewReader(`{"plate":"10-AA-123","brand":"Kia"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, _ = utils.TestRequest(t, env.server, "POST", "/api/rentacar/cars", headers,
		strings.NewReader(`{"plate":"10-AA-123","brand":"Hyundai"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = utils.TestRequest(t, env.server, "POST", "/api/rentacar/cars", headers,
		strings.NewReader(`{"brand":"Kia"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderSoftDeleteAndRestore(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	resp, body := utils.TestRequest(t, env.server, "POST", "/api/orders/", headers,
		strings.NewReader(`{"satisNo":"1001","satish":{"amount":500,"currency":"AZN"}}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, _ = utils.TestRequest(t, env.server, "DELETE", "/api/orders/1001", headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = utils.TestRequest(t, env.server, "GET", "/api/recycle-bin/", headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items models.DeletedItems
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items.DeletedOrders, 1)

	resp, _ = utils.TestRequest(t, env.server, "POST", "/api/recycle-bin/orders/1001/restore", headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = utils.TestRequest(t, env.server, "POST", "/api/recycle-bin/orders/1001/restore", headers, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	orders, err := env.storage.GetOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestDashboardRoutes(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	resp, _ := utils.TestRequest(t, env.server, "POST", "/api/dashboard/capital", headers,
		strings.NewReader(`{"currency":"AZN"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := utils.TestRequest(t, env.server, "POST", "/api/dashboard/capital", headers,
		strings.NewReader(`{"amount":1000,"currency":"USD"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	resp, body = utils.TestRequest(t, env.server, "GET", "/api/dashboard/summary", headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary models.FinanceSummary
	require.NoError(t, json.Unmarshal([]byte(body), &summary))
	assert.Equal(t, 1000.0, summary.FinalBalance[models.CurrencyUSD])
	assert.Equal(t, 0.0, summary.FinalBalance[models.CurrencyAZN])

	// Updating the capital is audited.
	resp, body = utils.TestRequest(t, env.server, "GET", "/api/audit", headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []models.AuditEntry
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "UPDATE_CAPITAL", entries[0].Action)
	assert.Equal(t, "admin", entries[0].User)
}

func TestPartnerRoutes(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	resp, body := utils.TestRequest(t, env.server, "POST", "/api/partners/", headers,
		strings.NewReader(`{"companyName":"Sunrise Travel","country":"Turkey"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	var created models.Partner
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	resp, _ = utils.TestRequest(t, env.server, "PUT", "/api/partners/"+created.ID, headers,
		strings.NewReader(`{"phone":"+905551112233"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = utils.TestRequest(t, env.server, "GET", "/api/partners/", headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var partners []models.Partner
	require.NoError(t, json.Unmarshal([]byte(body), &partners))
	require.Len(t, partners, 1)
	assert.Equal(t, "+905551112233", partners[0].Phone)

	resp, _ = utils.TestRequest(t, env.server, "DELETE", "/api/partners/"+created.ID, headers, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = utils.TestRequest(t, env.server, "DELETE", "/api/partners/"+created.ID, headers, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadWithoutHosterConfigured(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	file, err := form.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = io.WriteString(file, "fake image bytes")
	require.NoError(t, err)
	require.NoError(t, form.Close())

	headers["Content-Type"] = form.FormDataContentType()
	resp, _ := utils.TestRequest(t, env.server, "POST", "/api/upload", headers, &buf)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
