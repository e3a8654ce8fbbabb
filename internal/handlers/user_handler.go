package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/andreamorim18/helpdesk/internal/httperr"
	"github.com/andreamorim18/helpdesk/internal/httpresp"
	"github.com/andreamorim18/helpdesk/internal/middleware"
	"github.com/andreamorim18/helpdesk/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

var defaultAvailability = []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

type CreateTechnicianRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=6"`
	Availability []string `json:"availability"`
}

// UpdateUserRequest is shared by the technician, client and profile update
// paths. Role is deliberately absent: it is fixed at creation.
type UpdateUserRequest struct {
	Name         *string  `json:"name,omitempty"`
	Email        *string  `json:"email,omitempty" binding:"omitempty,email"`
	Password     *string  `json:"password,omitempty" binding:"omitempty,min=6"`
	Availability []string `json:"availability,omitempty"`
}

// --------- Technicians (admin) ---------

func (h *UserHandler) CreateTechnician(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	availability := req.Availability
	if len(availability) == 0 {
		availability = defaultAvailability
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleTechnician,
		Availability: availability,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar técnico.")
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) ListTechnicians(c *gin.Context) {
	var technicians []models.User
	if err := h.db.
		Where("role = ?", models.RoleTechnician).
		Order("id ASC").
		Find(&technicians).Error; err != nil {
		httperr.Internal(c, "failed_to_list_technicians", "Erro ao listar técnicos.")
		return
	}

	httpresp.List(c, technicians)
}

func (h *UserHandler) UpdateTechnician(c *gin.Context) {
	h.updateByRole(c, models.RoleTechnician)
}

// --------- Clients (admin) ---------

func (h *UserHandler) ListClients(c *gin.Context) {
	var clients []models.User
	if err := h.db.
		Where("role = ?", models.RoleClient).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *UserHandler) UpdateClient(c *gin.Context) {
	h.updateByRole(c, models.RoleClient)
}

func (h *UserHandler) DeleteClient(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, models.RoleClient).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar cliente.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao remover cliente.")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Profile (any authenticated user) ---------

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	h.applyUpdate(c, &user)
}

// --------- Helpers ---------

func (h *UserHandler) updateByRole(c *gin.Context, role string) {
	id := c.Param("id")

	var user models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, role).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar usuário.")
		return
	}

	h.applyUpdate(c, &user)
}

func (h *UserHandler) applyUpdate(c *gin.Context, user *models.User) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.Availability != nil {
		user.Availability = req.Availability
	}

	if err := h.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	httpresp.OK(c, user)
}
