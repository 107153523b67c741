package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus/config"
	"campus/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedDemo(db))
	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test"},
		Session: config.SessionConfig{TokenTTL: time.Hour},
		Stream:  config.StreamConfig{HeartbeatInterval: time.Second},
	}
	return Setup(cfg, db)
}

func login(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := postJSON(t, r, "/api/login", "", gin.H{"username": username, "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func postJSON(t *testing.T, r *gin.Engine, path, token string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGradeWriteAllowedForTeacher(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "teacher")

	w := postJSON(t, r, "/api/grades", token, gin.H{
		"teacherId":    "teacher-1",
		"sectionId":    "section-1",
		"studentId":    "student-1",
		"assignmentId": "assignment-1",
		"points":       95,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestDisciplineWriteForbiddenForTeacher(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "teacher")

	w := postJSON(t, r, "/api/discipline", token, gin.H{
		"adminId":    "admin-1",
		"studentId":  "student-1",
		"actionType": "detention",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", w.Body.String())
}

func TestDisciplineWriteAllowedForAdministrator(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "admin")

	w := postJSON(t, r, "/api/discipline", token, gin.H{
		"adminId":    "admin-1",
		"studentId":  "student-1",
		"actionType": "detention",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestNurseVisitWriteAllowedForNurse(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "nurse")

	w := postJSON(t, r, "/api/nurse-visits", token, gin.H{
		"nurseId":   "nurse-1",
		"studentId": "student-1",
		"notes":     "headache",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestGradeWriteRequiresAuth(t *testing.T) {
	r := newTestEngine(t)

	w := postJSON(t, r, "/api/grades", "", gin.H{
		"teacherId":    "teacher-1",
		"sectionId":    "section-1",
		"studentId":    "student-1",
		"assignmentId": "assignment-1",
		"points":       95,
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
