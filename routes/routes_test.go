package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"sbitm-backend/content"
	"sbitm-backend/controllers"
	"sbitm-backend/models"
	"sbitm-backend/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        ":memory:",
		Conn:       sqlDB,
	}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Enquiry{},
		&models.Application{},
		&models.NewsletterSubscription{},
	))
	t.Cleanup(func() { _ = sqlDB.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("sbitm@2024"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{Username: "admin", PasswordHash: string(hash)}).Error)

	catalog := content.NewCatalog()
	submissionSvc := services.NewSubmissionService(db)
	authSvc := services.NewAuthService(db)
	adminSvc := services.NewAdminService(db)

	router := SetupRouter(
		controllers.NewSubmissionController(submissionSvc),
		controllers.NewAuthController(authSvc),
		controllers.NewAdminController(adminSvc),
		controllers.NewContentController(catalog, adminSvc),
	)
	return router, db
}

func doJSON(router *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestContactEndpoint(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/contact",
		`{"name":"Asha","email":"asha@x.com","message":"Hostel fees?"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Regexp(t, `^ENQ\d{14}$`, body["reference"])

	var count int64
	require.NoError(t, db.Model(&models.Enquiry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestContactEndpointMissingFields(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/contact", `{"name":"Asha"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])

	var count int64
	require.NoError(t, db.Model(&models.Enquiry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/apply",
		`{"first_name":"Ravi","last_name":"Kumar","email":"ravi@x.com","phone":"9999911111","program":"CSE","percentage":82.5}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Regexp(t, `^APP\d{14}$`, body["application_id"])
	assert.NotEmpty(t, body["next_steps"])

	w = doJSON(router, http.MethodPost, "/api/apply", `{"first_name":"Ravi"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Last Name is required", body["message"])
}

func TestNewsletterEndpointIdempotent(t *testing.T) {
	router, db := newTestRouter(t)

	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodPost, "/api/newsletter", `{"email":"asha@x.com"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var subs []models.NewsletterSubscription
	require.NoError(t, db.Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.True(t, subs[0].Active)
}

func TestCatalogEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/college", "/api/programs", "/api/placements", "/api/facilities",
		"/api/faculty", "/api/departments", "/api/gallery", "/api/stats",
	} {
		w := doJSON(router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"], path)
	}
}

func TestAdminSessionLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	// Anonymous sessions are refused.
	w := doJSON(router, http.MethodGet, "/api/admin/dashboard", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong password and unknown username are indistinguishable.
	wrongPass := doJSON(router, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"nope"}`, nil)
	unknownUser := doJSON(router, http.MethodPost, "/api/admin/login",
		`{"username":"nobody","password":"sbitm@2024"}`, nil)
	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknownUser.Body.String())

	// Login with the seeded credential.
	w = doJSON(router, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"sbitm@2024"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = doJSON(router, http.MethodGet, "/api/admin/session", "", cookies)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, "admin", body["username"])

	w = doJSON(router, http.MethodGet, "/api/admin/dashboard", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/admin/enquiries", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// Logout invalidates the session for protected routes.
	w = doJSON(router, http.MethodGet, "/api/admin/logout", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	loggedOut := w.Result().Cookies()

	w = doJSON(router, http.MethodGet, "/api/admin/dashboard", "", loggedOut)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAcceptsFormBody(t *testing.T) {
	router, _ := newTestRouter(t)

	form := "username=admin&password=sbitm%402024"
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
}
