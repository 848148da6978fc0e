package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipeview/backend/internal/domain"
)

// ViewBuilder assembles the full recipe view for a URL.
type ViewBuilder interface {
	BuildView(ctx context.Context, recipeURL string) (*domain.RecipeView, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	views ViewBuilder
}

// NewHandler creates a new HTTP handler
func NewHandler(views ViewBuilder) *Handler {
	return &Handler{views: views}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "recipeview-backend",
		"version": "1.0.0",
	})
}

// viewRequest is the page-load trigger: one recipe URL.
type viewRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// ViewRecipe fetches the recipe behind the posted URL and returns everything
// the page renders: the recipe, nutrition facts, cost estimate, equipment,
// step amounts and health narrative. Model-call failures arrive inside the
// body's errors map; only a fetch failure fails the request itself.
func (h *Handler) ViewRecipe(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A valid recipe URL is required",
		})
		return
	}

	view, err := h.views.BuildView(c.Request.Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A valid recipe URL is required",
			})
		case errors.Is(err, domain.ErrFetchFailure):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to fetch recipe. Please check the URL and try again.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to build recipe view",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
