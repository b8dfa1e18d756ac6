package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Aakash2700/sih-project/ml"
	"github.com/Aakash2700/sih-project/models"
	"github.com/Aakash2700/sih-project/utils"
	"github.com/Aakash2700/sih-project/ws"
)

// debouncedSensorID is enrolled in the test debounce policy.
const debouncedSensorID = "SEN-DEBOUNCED"

func newTestController(t *testing.T) (*Controller, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := MigrateModels(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := New(
		db,
		ws.NewHub(),
		ml.NewPredictor(t.TempDir()),
		[]byte("test-secret"),
		utils.NewDebouncePolicy([]string{debouncedSensorID}, time.Minute),
	)

	r := gin.New()
	RegisterRoutes(r, ctl)
	return ctl, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// createUser inserts a user row directly, bypassing the signup handler so
// tests can create non-admin roles.
func createUser(t *testing.T, ctl *Controller, username, password, role string, village *string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: username, Password: string(hashed), Role: role, Village: village}
	if err := ctl.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func loginToken(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}

	var token models.Token
	if err := json.Unmarshal(w.Body.Bytes(), &token); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	return token.AccessToken
}

func strPtr(s string) *string { return &s }
