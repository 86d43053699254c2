package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adminapi/internal/model"
	"adminapi/internal/service"
	serviceMocks "adminapi/internal/service/mocks"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Admin Dashboard API is running", body["message"])
}

func TestHealthEndpoints(t *testing.T) {
	app := fiber.New()
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/login", Login(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.LoginResult{
			AccessToken: "tok",
			TokenType:   "bearer",
			User:        model.User{ID: 1, Email: "admin@example.com", Role: model.RoleAdmin},
		}
		mockSvc.On("Login", mock.Anything, "admin@example.com", "password123").Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, map[string]string{"email": "admin@example.com", "password": "password123"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body service.LoginResult
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "tok", body.AccessToken)
		assert.Equal(t, "bearer", body.TokenType)
		assert.Equal(t, 1, body.User.ID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "admin@example.com", "nope").
			Return(nil, service.ErrInvalidCredentials).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, map[string]string{"email": "admin@example.com", "password": "nope"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{")))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestListUsers(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Get("/users/", ListUsers(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.User{
			{ID: 1, Name: "Alice Johnson", Role: model.RoleAdmin},
			{ID: 2, Name: "Bob Smith", Role: model.RoleEditor},
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []model.User
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Len(t, body, 2)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestCreateUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/users/", CreateUser(mockSvc))

	t.Run("created", func(t *testing.T) {
		submitted := model.User{Name: "Kate Nguyen", Email: "user11@example.com", Role: model.RoleViewer}
		mockSvc.On("Create", mock.Anything, submitted).
			Return(model.User{ID: 11, Name: "Kate Nguyen", Email: "user11@example.com", Role: model.RoleViewer}, nil).Once()

		// the password field is accepted but never stored or echoed
		payload := map[string]any{"name": "Kate Nguyen", "email": "user11@example.com", "role": "viewer", "password": "secret"}
		req := httptest.NewRequest(http.MethodPost, "/users/", jsonBody(t, payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body model.User
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 11, body.ID)
	})

	t.Run("missing email", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(model.User{}, service.ErrEmailRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/users/", jsonBody(t, map[string]string{"name": "No Email"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestGetFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Get("/files/:id", GetFile(mockSvc))

	t.Run("found with content", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 1).
			Return(model.FileRecord{ID: 1, Name: "readme.txt", ContentBase64: "aGVsbG8="}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/1", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body model.FileRecord
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "aGVsbG8=", body.ContentBase64)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 42).
			Return(model.FileRecord{}, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/42", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/abc", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestDeleteFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Delete("/files/:id", DeleteFile(mockSvc))

	mockSvc.On("Delete", mock.Anything, 3).Return(nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/files/3", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestSaveShapes(t *testing.T) {
	mockSvc := new(serviceMocks.MockMapService)
	app := fiber.New()
	app.Post("/maps/shapes", SaveShapes(mockSvc))

	t.Run("appends drafts", func(t *testing.T) {
		mockSvc.On("SaveShapes", mock.Anything, mock.MatchedBy(func(shapes []model.Shape) bool {
			return len(shapes) == 1 && shapes[0].ID == 0 && shapes[0].Geometry.Kind() == model.ShapeCircle
		})).Return([]model.Shape{
			{ID: 1, Geometry: model.MarkerGeometry{Position: model.LatLng{Lat: 1, Lng: 2}}},
			{ID: 2, Geometry: model.CircleGeometry{Center: model.LatLng{Lat: 3, Lng: 4}, Radius: 50}},
		}, nil).Once()

		payload := []map[string]any{{"type": "circle", "lat": 3.0, "lng": 4.0, "radius": 50.0}}
		req := httptest.NewRequest(http.MethodPost, "/maps/shapes", jsonBody(t, payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []model.Shape
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Len(t, body, 2)
	})

	t.Run("unknown shape kind rejected", func(t *testing.T) {
		payload := []map[string]any{{"type": "blob", "lat": 1.0}}
		req := httptest.NewRequest(http.MethodPost, "/maps/shapes", jsonBody(t, payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}
