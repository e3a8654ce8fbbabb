package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andreamorim18/helpdesk/internal/audit"
	"github.com/andreamorim18/helpdesk/internal/config"
	infraRepo "github.com/andreamorim18/helpdesk/internal/infra/repository"
	"github.com/andreamorim18/helpdesk/internal/middleware"
	"github.com/andreamorim18/helpdesk/internal/models"
	ucCall "github.com/andreamorim18/helpdesk/internal/usecase/call"
)

const testSecret = "test-secret"

type callTestEnv struct {
	router *gin.Engine
	db     *gorm.DB

	client     models.User
	technician models.User
	admin      models.User
	services   []models.Service
}

func newCallTestEnv(t *testing.T) *callTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Call{},
		&models.CallService{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	env := &callTestEnv{db: db}

	env.client = models.User{Name: "Cliente", Email: "client@example.com", PasswordHash: "x", Role: models.RoleClient, Availability: []string{}}
	env.technician = models.User{Name: "Técnico", Email: "tech@example.com", PasswordHash: "x", Role: models.RoleTechnician, Availability: []string{"08:00"}}
	env.admin = models.User{Name: "Admin", Email: "admin@example.com", PasswordHash: "x", Role: models.RoleAdmin, Availability: []string{}}
	for _, u := range []*models.User{&env.client, &env.technician, &env.admin} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	env.services = []models.Service{
		{Name: "svcA", Price: 100, IsActive: true},
		{Name: "svcB", Price: 50, IsActive: true},
	}
	for i := range env.services {
		if err := db.Create(&env.services[i]).Error; err != nil {
			t.Fatalf("failed to seed service: %v", err)
		}
	}

	cfg := &config.Config{JWTSecret: testSecret}

	repo := infraRepo.NewCallGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	handler := NewCallHandler(
		ucCall.NewCreateCall(repo, dispatcher),
		ucCall.NewListCalls(repo),
		ucCall.NewGetCall(repo),
		ucCall.NewUpdateCall(repo, dispatcher),
		ucCall.NewDeleteCall(repo, dispatcher),
	)

	r := gin.New()
	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/calls", middleware.RequireRoles(models.RoleClient), handler.Create)
		secured.GET("/calls", handler.List)
		secured.GET("/calls/:id", handler.Get)
		secured.PUT("/calls/:id", handler.Update)
		secured.DELETE("/calls/:id", handler.Delete)
	}

	env.router = r
	return env
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func (env *callTestEnv) do(t *testing.T, user models.User, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *callTestEnv) createCall(t *testing.T) models.Call {
	t.Helper()

	w := env.do(t, env.client, http.MethodPost, "/api/calls", gin.H{
		"title":         "Notebook não liga",
		"technician_id": env.technician.ID,
		"service_ids":   []uint{env.services[0].ID, env.services[1].ID},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Call
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return created
}

func TestCreateCall_AsClient(t *testing.T) {
	env := newCallTestEnv(t)

	created := env.createCall(t)

	if created.TotalValue != 150 {
		t.Fatalf("expected total 150, got %v", created.TotalValue)
	}
	if created.Status != "ABERTO" {
		t.Fatalf("expected status ABERTO, got %q", created.Status)
	}
	if created.ClientID != env.client.ID {
		t.Fatalf("expected call owned by requester, got client %d", created.ClientID)
	}
	if len(created.Services) != 2 {
		t.Fatalf("expected 2 service rows, got %d", len(created.Services))
	}
}

func TestCreateCall_RejectsNonClients(t *testing.T) {
	env := newCallTestEnv(t)

	for _, user := range []models.User{env.technician, env.admin} {
		w := env.do(t, user, http.MethodPost, "/api/calls", gin.H{
			"title":         "x",
			"technician_id": env.technician.ID,
			"service_ids":   []uint{env.services[0].ID},
		})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for role %s, got %d", user.Role, w.Code)
		}
	}
}

func TestCreateCall_DuplicateServiceIDs(t *testing.T) {
	env := newCallTestEnv(t)

	w := env.do(t, env.client, http.MethodPost, "/api/calls", gin.H{
		"title":         "x",
		"technician_id": env.technician.ID,
		"service_ids":   []uint{env.services[0].ID, env.services[0].ID},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error_code"] != "invalid_services" {
		t.Fatalf("expected invalid_services, got %q", body["error_code"])
	}
}

func TestCreateCall_EmptyServiceList(t *testing.T) {
	env := newCallTestEnv(t)

	w := env.do(t, env.client, http.MethodPost, "/api/calls", gin.H{
		"title":         "x",
		"technician_id": env.technician.ID,
		"service_ids":   []uint{},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from binding, got %d", w.Code)
	}
}

func TestGetCall_NotFound(t *testing.T) {
	env := newCallTestEnv(t)

	w := env.do(t, env.admin, http.MethodGet, "/api/calls/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateCall_ClientForbidden(t *testing.T) {
	env := newCallTestEnv(t)
	created := env.createCall(t)

	// Even the call's own client may not update it.
	w := env.do(t, env.client, http.MethodPut, fmt.Sprintf("/api/calls/%d", created.ID), gin.H{
		"status": "ENCERRADO",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateCall_AssignedTechnician(t *testing.T) {
	env := newCallTestEnv(t)
	created := env.createCall(t)

	w := env.do(t, env.technician, http.MethodPut, fmt.Sprintf("/api/calls/%d", created.ID), gin.H{
		"status": "EM_ATENDIMENTO",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Call
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.Status != "EM_ATENDIMENTO" {
		t.Fatalf("expected status EM_ATENDIMENTO, got %q", updated.Status)
	}
}

func TestUpdateCall_UnassignedTechnicianForbidden(t *testing.T) {
	env := newCallTestEnv(t)
	created := env.createCall(t)

	other := models.User{Name: "Outro", Email: "other@example.com", PasswordHash: "x", Role: models.RoleTechnician, Availability: []string{}}
	if err := env.db.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	w := env.do(t, other, http.MethodPut, fmt.Sprintf("/api/calls/%d", created.ID), gin.H{
		"status": "ENCERRADO",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestUpdateCall_AdminReplacesServices(t *testing.T) {
	env := newCallTestEnv(t)
	created := env.createCall(t)

	w := env.do(t, env.admin, http.MethodPut, fmt.Sprintf("/api/calls/%d", created.ID), gin.H{
		"service_ids": []uint{env.services[1].ID},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Call
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.TotalValue != 50 {
		t.Fatalf("expected total 50 after replacement, got %v", updated.TotalValue)
	}
	if len(updated.Services) != 1 {
		t.Fatalf("expected 1 service row, got %d", len(updated.Services))
	}
}

func TestUpdateCall_UnknownStatus(t *testing.T) {
	env := newCallTestEnv(t)
	created := env.createCall(t)

	w := env.do(t, env.admin, http.MethodPut, fmt.Sprintf("/api/calls/%d", created.ID), gin.H{
		"status": "PENDENTE",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteCall(t *testing.T) {
	env := newCallTestEnv(t)

	t.Run("technician forbidden", func(t *testing.T) {
		created := env.createCall(t)
		w := env.do(t, env.technician, http.MethodDelete, fmt.Sprintf("/api/calls/%d", created.ID), nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		created := env.createCall(t)
		w := env.do(t, env.client, http.MethodDelete, fmt.Sprintf("/api/calls/%d", created.ID), nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("admin deletes any", func(t *testing.T) {
		created := env.createCall(t)
		w := env.do(t, env.admin, http.MethodDelete, fmt.Sprintf("/api/calls/%d", created.ID), nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}

		w = env.do(t, env.admin, http.MethodGet, fmt.Sprintf("/api/calls/%d", created.ID), nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", w.Code)
		}
	})
}

func TestListCalls_Visibility(t *testing.T) {
	env := newCallTestEnv(t)
	env.createCall(t)

	otherClient := models.User{Name: "Outra", Email: "other-client@example.com", PasswordHash: "x", Role: models.RoleClient, Availability: []string{}}
	if err := env.db.Create(&otherClient).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	w := env.do(t, env.client, http.MethodGet, "/api/calls", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data  []models.Call `json:"data"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Total != 1 {
		t.Fatalf("expected owner to see 1 call, got %d", body.Total)
	}

	w = env.do(t, otherClient, http.MethodGet, "/api/calls", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Total != 0 {
		t.Fatalf("expected other client to see 0 calls, got %d", body.Total)
	}
}

func TestCalls_RequireToken(t *testing.T) {
	env := newCallTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calls", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
