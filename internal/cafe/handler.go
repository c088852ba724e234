package cafe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /cafes
// --------------------------------------------------
func (h *Handler) CreateCafe(c *gin.Context) {
	var form Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cafe, err := h.service.CreateCafe(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cafe)
}

// --------------------------------------------------
// GET /cafes
// --------------------------------------------------
func (h *Handler) ListCafes(c *gin.Context) {
	cafes, err := h.service.ListCafes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cafes"})
		return
	}
	if cafes == nil {
		cafes = []*Cafe{}
	}
	c.JSON(http.StatusOK, cafes)
}

// --------------------------------------------------
// GET /cafes/:id
// --------------------------------------------------
func (h *Handler) GetCafe(c *gin.Context) {
	cafe, totals, err := h.service.GetCafe(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cafe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cafe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cafe":   cafe,
		"totals": totals,
	})
}

// --------------------------------------------------
// PUT /cafes/:id
// --------------------------------------------------
func (h *Handler) UpdateCafe(c *gin.Context) {
	var form Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cafe, err := h.service.UpdateCafe(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cafe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, cafe)
}

// --------------------------------------------------
// DELETE /cafes/:id
// --------------------------------------------------
func (h *Handler) DeleteCafe(c *gin.Context) {
	if err := h.service.DeleteCafe(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cafe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cafe deleted"})
}
