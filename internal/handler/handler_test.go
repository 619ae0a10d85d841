package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/REVSSPACE/mclp-backend/internal/database"
	"github.com/REVSSPACE/mclp-backend/internal/middleware"
	"github.com/REVSSPACE/mclp-backend/internal/models"
	"github.com/REVSSPACE/mclp-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	uploadDir string
	tokenA    string
	tokenB    string
}

// newTestEnv wires the handlers against an in-memory store and two
// registered users.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &testEnv{db: db, uploadDir: t.TempDir()}
	env.tokenA = env.newUser(t, "usera")
	env.tokenB = env.newUser(t, "userb")

	r := gin.New()
	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.Auth(testSecret, db))

	accountHandler := NewAccountHandler(db)
	protected.GET("/accounts", accountHandler.List)
	protected.GET("/accounts/stats/summary", accountHandler.Summary)
	protected.GET("/accounts/:id", accountHandler.Get)
	protected.POST("/accounts", accountHandler.Create)
	protected.PUT("/accounts/:id", accountHandler.Update)
	protected.DELETE("/accounts/:id", accountHandler.Delete)

	fileHandler := NewFileHandler(db)
	protected.GET("/files", fileHandler.List)
	protected.GET("/files/stats/dashboard", fileHandler.Dashboard)
	protected.GET("/files/:id", fileHandler.Get)
	protected.POST("/files", fileHandler.Create)
	protected.PUT("/files/:id", fileHandler.Update)
	protected.PUT("/files/:id/status", fileHandler.UpdateStatus)
	protected.PUT("/files/:id/handling-status", fileHandler.UpdateHandlingStatus)
	protected.DELETE("/files/:id", fileHandler.Delete)

	documentHandler := NewDocumentHandler(db, env.uploadDir, 1<<20)
	protected.GET("/documents", documentHandler.List)
	protected.GET("/documents/download/:id", documentHandler.Download)
	protected.GET("/documents/:id", documentHandler.Get)
	protected.POST("/documents/upload", documentHandler.Upload)
	protected.DELETE("/documents/:id", documentHandler.Delete)

	env.router = r
	return env
}

func (env *testEnv) newUser(t *testing.T, username string) string {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x"}
	if err := env.db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	token, err := util.GenerateToken(testSecret, user.ID, time.Hour)
	if err != nil {
		t.Fatalf("token for %s: %v", username, err)
	}
	return token
}

func (env *testEnv) do(t *testing.T, token, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) doMultipart(t *testing.T, token, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// uploadBody builds a multipart body with a small PDF part and,
// optionally, a category field.
func uploadBody(t *testing.T, category string, withCategory bool) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="deed.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 test content")); err != nil {
		t.Fatalf("write part: %v", err)
	}

	if withCategory {
		if err := mw.WriteField("category", category); err != nil {
			t.Fatalf("write category: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}
