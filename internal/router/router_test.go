package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skarchitects/internal/auth"
	"skarchitects/internal/cache"
	"skarchitects/internal/config"
	"skarchitects/internal/handler"
	"skarchitects/internal/model"
	"skarchitects/internal/repository"
	"skarchitects/internal/service"
)

// countingUploader fakes the image host and records how often it is hit.
type countingUploader struct {
	calls int
	url   string
	err   error
}

func (u *countingUploader) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

type testAPI struct {
	e        *echo.Echo
	db       *gorm.DB
	jwt      *auth.JWTService
	uploader *countingUploader
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()

	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Project{}, &model.ContactLead{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	uploader := &countingUploader{url: "https://res.cloudinary.com/demo/image/upload/v1/sk_architects_portfolio/test.jpg"}

	authHandler := handler.NewAuthHandler(service.NewAuthService(repository.NewUserRepository(db), jwtService))
	projectHandler := handler.NewProjectHandler(service.NewProjectService(repository.NewProjectRepository(db), &cache.Client{}))
	contactHandler := handler.NewContactHandler(service.NewContactService(repository.NewContactRepository(db)))
	uploadHandler := handler.NewUploadHandler(service.NewUploadService(uploader))

	e := echo.New()
	Register(e, cfg, authHandler, projectHandler, contactHandler, uploadHandler)

	return &testAPI{e: e, db: db, jwt: jwtService, uploader: uploader}
}

func (a *testAPI) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(payload))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.e.ServeHTTP(w, req)
	return w
}

func (a *testAPI) adminToken(t *testing.T) string {
	t.Helper()
	token, err := a.jwt.GenerateToken(uuid.NewString(), model.RoleAdmin)
	if err != nil {
		t.Fatalf("admin token: %v", err)
	}
	return token
}

func (a *testAPI) employeeToken(t *testing.T) string {
	t.Helper()
	token, err := a.jwt.GenerateToken(uuid.NewString(), model.RoleEmployee)
	if err != nil {
		t.Fatalf("employee token: %v", err)
	}
	return token
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return payload
}

func TestRegisterDuplicateEmail(t *testing.T) {
	api := setupTestAPI(t)
	body := map[string]any{"name": "Jane", "email": "jane@example.com", "password": "secret123"}

	w := api.request(t, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	if payload := decodeEnvelope(t, w); payload["token"] == "" {
		t.Fatal("expected a token in register response")
	}

	w2 := api.request(t, http.MethodPost, "/api/auth/register", "", body)
	if w2.Code != http.StatusConflict {
		t.Fatalf("second register: expected 409 got %d", w2.Code)
	}
	payload := decodeEnvelope(t, w2)
	if payload["success"] != false {
		t.Fatalf("expected success=false, got %v", payload["success"])
	}
}

func TestLoginUniformFailureMessage(t *testing.T) {
	api := setupTestAPI(t)
	api.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Jane", "email": "jane@example.com", "password": "secret123",
	})

	wrongPass := api.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "jane@example.com", "password": "wrong-password",
	})
	unknownEmail := api.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ghost@example.com", "password": "secret123",
	})

	if wrongPass.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknownEmail.Code)
	}
	if wrongPass.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("login failures must be indistinguishable: %q vs %q",
			wrongPass.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginReturnsRoleAndName(t *testing.T) {
	api := setupTestAPI(t)
	api.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Site Admin", "email": "admin@example.com", "password": "secret123", "role": "admin",
	})

	w := api.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "admin@example.com", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	payload := decodeEnvelope(t, w)
	if payload["role"] != "admin" || payload["name"] != "Site Admin" {
		t.Fatalf("expected role/name in login response, got %v", payload)
	}
	if payload["token"] == nil || payload["token"] == "" {
		t.Fatal("expected a token in login response")
	}
}

func TestProjectRoundTrip(t *testing.T) {
	api := setupTestAPI(t)
	token := api.adminToken(t)

	create := api.request(t, http.MethodPost, "/api/projects", token, map[string]any{
		"title":       "Harbor House",
		"category":    "Residential",
		"image":       "https://img.example/harbor.jpg",
		"location":    "Seattle, WA",
		"year":        "2024",
		"sustainable": true,
	})
	if create.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d (%s)", create.Code, create.Body.String())
	}
	created := decodeEnvelope(t, create)["data"].(map[string]any)
	if created["id"] == nil || created["id"] == "" {
		t.Fatal("expected a server-assigned id")
	}
	if created["created_at"] == nil {
		t.Fatal("expected a creation timestamp")
	}

	list := api.request(t, http.MethodGet, "/api/projects", "", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", list.Code)
	}
	projects := decodeEnvelope(t, list)["data"].([]any)
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	got := projects[0].(map[string]any)
	for field, want := range map[string]any{
		"title":       "Harbor House",
		"category":    "Residential",
		"image":       "https://img.example/harbor.jpg",
		"location":    "Seattle, WA",
		"year":        "2024",
		"sustainable": true,
	} {
		if got[field] != want {
			t.Fatalf("field %s: expected %v got %v", field, want, got[field])
		}
	}
}

func TestProjectListNewestFirst(t *testing.T) {
	api := setupTestAPI(t)
	token := api.adminToken(t)

	for i, title := range []string{"First", "Second", "Third"} {
		w := api.request(t, http.MethodPost, "/api/projects", token, map[string]any{
			"title": title, "category": "Public", "image": fmt.Sprintf("https://img.example/%d.jpg", i),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %s: got %d", title, w.Code)
		}
		time.Sleep(20 * time.Millisecond)
	}

	list := api.request(t, http.MethodGet, "/api/projects", "", nil)
	projects := decodeEnvelope(t, list)["data"].([]any)
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	if first := projects[0].(map[string]any)["title"]; first != "Third" {
		t.Fatalf("expected newest first, got %v", first)
	}
}

func TestProjectUpdate(t *testing.T) {
	api := setupTestAPI(t)
	token := api.adminToken(t)

	create := api.request(t, http.MethodPost, "/api/projects", token, map[string]any{
		"title": "Old", "category": "Residential", "image": "https://img.example/a.jpg",
	})
	id := decodeEnvelope(t, create)["data"].(map[string]any)["id"].(string)

	update := api.request(t, http.MethodPut, "/api/projects/"+id, token, map[string]any{
		"title": "New", "category": "Commercial", "image": "https://img.example/b.jpg",
	})
	if update.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d (%s)", update.Code, update.Body.String())
	}
	data := decodeEnvelope(t, update)["data"].(map[string]any)
	if data["title"] != "New" || data["category"] != "Commercial" {
		t.Fatalf("update not applied: %v", data)
	}

	missing := api.request(t, http.MethodPut, "/api/projects/"+uuid.NewString(), token, map[string]any{
		"title": "X", "category": "Y", "image": "https://img.example/z.jpg",
	})
	if missing.Code != http.StatusNotFound {
		t.Fatalf("update missing: expected 404 got %d", missing.Code)
	}
}

// Deleting a non-existent project still reports success; the delete is
// unconditional by design.
func TestProjectDeleteAbsentStillSucceeds(t *testing.T) {
	api := setupTestAPI(t)
	token := api.adminToken(t)

	w := api.request(t, http.MethodDelete, "/api/projects/"+uuid.NewString(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if payload := decodeEnvelope(t, w); payload["success"] != true {
		t.Fatalf("expected success=true, got %v", payload)
	}
}

func TestProjectValidation(t *testing.T) {
	api := setupTestAPI(t)
	token := api.adminToken(t)

	w := api.request(t, http.MethodPost, "/api/projects", token, map[string]any{
		"category": "Residential", "image": "https://img.example/a.jpg",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if payload := decodeEnvelope(t, w); payload["success"] != false {
		t.Fatalf("expected success=false, got %v", payload)
	}
}

func TestMutatingRoutesRequireAdmin(t *testing.T) {
	api := setupTestAPI(t)
	employee := api.employeeToken(t)
	body := map[string]any{"title": "T", "category": "C", "image": "https://img.example/i.jpg"}

	if w := api.request(t, http.MethodPost, "/api/projects", "", body); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401 got %d", w.Code)
	}
	if w := api.request(t, http.MethodPost, "/api/projects", employee, body); w.Code != http.StatusForbidden {
		t.Fatalf("employee token: expected 403 got %d", w.Code)
	}
	if w := api.request(t, http.MethodGet, "/api/contact", employee, nil); w.Code != http.StatusForbidden {
		t.Fatalf("employee lead list: expected 403 got %d", w.Code)
	}
	if w := api.request(t, http.MethodGet, "/api/auth/users", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous user list: expected 401 got %d", w.Code)
	}
}

func TestContactSubmitAndList(t *testing.T) {
	api := setupTestAPI(t)

	for _, first := range []string{"Alice", "Bob"} {
		w := api.request(t, http.MethodPost, "/api/contact", "", map[string]any{
			"firstName":   first,
			"lastName":    "Client",
			"email":       strings.ToLower(first) + "@example.com",
			"projectType": "Residential",
			"message":     "We would like a quote.",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("submit %s: expected 201 got %d (%s)", first, w.Code, w.Body.String())
		}
		if payload := decodeEnvelope(t, w); payload["message"] != "Message sent successfully!" {
			t.Fatalf("unexpected message: %v", payload["message"])
		}
		time.Sleep(20 * time.Millisecond)
	}

	list := api.request(t, http.MethodGet, "/api/contact", api.adminToken(t), nil)
	if list.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", list.Code)
	}
	payload := decodeEnvelope(t, list)
	if payload["count"] != float64(2) {
		t.Fatalf("expected count=2, got %v", payload["count"])
	}
	leads := payload["data"].([]any)
	if first := leads[0].(map[string]any)["firstName"]; first != "Bob" {
		t.Fatalf("expected newest lead first, got %v", first)
	}
}

func TestContactValidation(t *testing.T) {
	api := setupTestAPI(t)

	w := api.request(t, http.MethodPost, "/api/contact", "", map[string]any{
		"firstName": "NoMessage",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestEmployeeListExcludesPasswordAndAdmins(t *testing.T) {
	api := setupTestAPI(t)
	api.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Worker", "email": "worker@example.com", "password": "secret123",
	})
	api.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Boss", "email": "boss@example.com", "password": "secret123", "role": "admin",
	})

	w := api.request(t, http.MethodGet, "/api/auth/users", api.adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	users := decodeEnvelope(t, w)["data"].([]any)
	if len(users) != 1 {
		t.Fatalf("expected only the employee, got %d users", len(users))
	}
	if name := users[0].(map[string]any)["name"]; name != "Worker" {
		t.Fatalf("expected Worker, got %v", name)
	}
	if body := w.Body.String(); strings.Contains(body, "password") {
		t.Fatalf("password material leaked: %s", body)
	}
}

func TestDeleteUser(t *testing.T) {
	api := setupTestAPI(t)
	token := api.adminToken(t)

	api.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Worker", "email": "worker@example.com", "password": "secret123",
	})

	var user model.User
	if err := api.db.Where("email = ?", "worker@example.com").First(&user).Error; err != nil {
		t.Fatalf("lookup user: %v", err)
	}

	w := api.request(t, http.MethodDelete, "/api/auth/users/"+user.ID.String(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	// Deleting the same id again is still a success.
	w2 := api.request(t, http.MethodDelete, "/api/auth/users/"+user.ID.String(), token, nil)
	if w2.Code != http.StatusOK {
		t.Fatalf("repeat delete: expected 200 got %d", w2.Code)
	}

	var count int64
	api.db.Model(&model.User{}).Where("email = ?", "worker@example.com").Count(&count)
	if count != 0 {
		t.Fatalf("user still present after delete")
	}
}

func TestUploadNoFile(t *testing.T) {
	api := setupTestAPI(t)

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+api.adminToken(t))
	w := httptest.NewRecorder()
	api.e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if api.uploader.calls != 0 {
		t.Fatalf("provider must not be called without a file, got %d calls", api.uploader.calls)
	}
}

func TestUploadReturnsHostedURL(t *testing.T) {
	api := setupTestAPI(t)

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("image", "render.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("fake-jpeg-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+api.adminToken(t))
	w := httptest.NewRecorder()
	api.e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	payload := decodeEnvelope(t, w)
	if payload["imageUrl"] != api.uploader.url {
		t.Fatalf("expected hosted url, got %v", payload["imageUrl"])
	}
	if api.uploader.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", api.uploader.calls)
	}
}

func TestHealthz(t *testing.T) {
	api := setupTestAPI(t)
	w := api.request(t, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}
