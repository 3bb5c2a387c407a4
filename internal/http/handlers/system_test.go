package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	intconfig "turisflow/internal/config"
	"turisflow/internal/http/middleware"
)

func withMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	return mock, func() {
		intconfig.DB = prev
		db.Close()
	}
}

func expectTable(mock sqlmock.Sqlmock, table string, present bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if present {
		rows.AddRow(table)
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs(table).WillReturnRows(rows)
}

func expectColumn(mock sqlmock.Sqlmock, table, column string, present bool) {
	rows := sqlmock.NewRows([]string{"column_name"})
	if present {
		rows.AddRow(column)
	}
	mock.ExpectQuery("information_schema\\.columns").WithArgs(table, column).WillReturnRows(rows)
}

func TestDBCheckFlagsMissingCoordinateColumns(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, done := withMockDB(t)
	defer done()

	for _, tbl := range coreTables {
		expectTable(mock, tbl, true)
	}
	expectColumn(mock, "passengers", "boarding_lat", true)
	expectColumn(mock, "passengers", "boarding_lng", true)
	expectColumn(mock, "company_profile", "address_lat", false)
	expectColumn(mock, "company_profile", "address_lng", false)

	r := gin.New()
	r.GET("/db-check", DBCheck)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/db-check", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"setup_required"`) || !strings.Contains(body, "company_profile.address_lat") {
		t.Fatalf("body = %s, want missing column report", body)
	}
	if strings.Contains(body, "passengers.boarding_lat") {
		t.Fatalf("body = %s, present columns must not be listed", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, done := withMockDB(t)
	defer done()

	expectTable(mock, "users", true)
	mock.ExpectQuery("FROM users WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow(7, "Ana", "ana@turisflow.com", "operator"))

	claims := jwt.MapClaims{
		"sub": "7",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	r := gin.New()
	r.GET("/me", middleware.Auth("segredo"), Me)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "ana@turisflow.com") {
		t.Fatalf("body = %s, want the stored account", w.Body.String())
	}
}

func TestMeRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", Me)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
