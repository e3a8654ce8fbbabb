package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/andreamorim18/helpdesk/internal/avatar"
	"github.com/andreamorim18/helpdesk/internal/httperr"
	"github.com/andreamorim18/helpdesk/internal/httpresp"
	"github.com/andreamorim18/helpdesk/internal/middleware"
	"github.com/andreamorim18/helpdesk/internal/models"
)

type UploadHandler struct {
	db        *gorm.DB
	processor *avatar.Processor
}

func NewUploadHandler(db *gorm.DB, processor *avatar.Processor) *UploadHandler {
	return &UploadHandler{db: db, processor: processor}
}

func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Nenhuma imagem enviada.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	_, url, err := h.processor.Store(c.Request.Context(), file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", err.Error())
		return
	}

	old := avatar.ObjectPath(user.Avatar)

	user.Avatar = url
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar avatar.")
		return
	}

	// Replaced objects are best-effort cleanup; the row already points at
	// the new one.
	_ = h.processor.Remove(c.Request.Context(), old)

	httpresp.OK(c, gin.H{"user": user})
}

func (h *UploadHandler) DeleteAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	old := avatar.ObjectPath(user.Avatar)

	user.Avatar = ""
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao remover avatar.")
		return
	}

	_ = h.processor.Remove(c.Request.Context(), old)

	httpresp.OK(c, gin.H{"user": user})
}
