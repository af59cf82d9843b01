package handlers

import (
	"net/http"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BranchHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBranchHandler(db *gorm.DB, log *zap.Logger) *BranchHandler {
	return &BranchHandler{db: db, log: log}
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	var branches []models.Branch
	if err := h.db.WithContext(r.Context()).Order("name").Find(&branches).Error; err != nil {
		h.log.Error("list branches", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_branches", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": branches})
}
