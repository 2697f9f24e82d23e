// internal/controller/advocate_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/model"
	"github.com/unclebandit/advocates-backend/internal/service"
)

type AdvocateController struct {
	AdvocateService *service.AdvocateService
	Log             *zap.Logger
}

type advocatesResponse struct {
	Data []model.Advocate `json:"data"`
}

// ListAdvocates always answers 200 with the full list; the service already
// substitutes seed data when the store fails.
func (c *AdvocateController) ListAdvocates(w http.ResponseWriter, r *http.Request) {
	advocates := c.AdvocateService.ListAdvocates(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(advocatesResponse{Data: advocates}); err != nil {
		c.Log.Warn("failed to write advocates response", zap.Error(err))
	}
}

// Health handler for monitoring
func (c *AdvocateController) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
