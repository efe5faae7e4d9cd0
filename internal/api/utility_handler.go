package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/typed-helpers/internal/validation"
	"github.com/typed-helpers/pkg/formatters"
	"github.com/typed-helpers/pkg/geometry"
)

// UtilityHandler handles area, status color and string formatting endpoints
type UtilityHandler struct {
	log zerolog.Logger
}

// NewUtilityHandler creates a new UtilityHandler
func NewUtilityHandler(log zerolog.Logger) *UtilityHandler {
	return &UtilityHandler{
		log: log.With().Str("handler", "utility").Logger(),
	}
}

// FormatRequest is the body of the string formatting endpoints
type FormatRequest struct {
	Text      *string `json:"text" binding:"required"`
	Uppercase bool    `json:"uppercase"`
}

// CalculateArea handles GET /v1/area?shape=circle|square&value=<number>
func (h *UtilityHandler) CalculateArea(c *gin.Context) {
	kind, err := validation.ParseShapeKind(c.Query("shape"))
	if err != nil {
		badRequest(c, err.Error(), nil)
		return
	}

	raw := c.Query("value")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		badRequest(c, "value must be a finite number", []validation.ValidationError{
			{Field: "value", Message: "invalid number", Value: raw},
		})
		return
	}

	area := geometry.CalculateArea(kind, value)
	h.log.Debug().Str("shape", string(kind)).Float64("value", value).Float64("area", area).Msg("Area calculated")

	c.JSON(http.StatusOK, gin.H{
		"shape": kind,
		"value": value,
		"area":  area,
	})
}

// GetStatusColor handles GET /v1/status/:status/color
func (h *UtilityHandler) GetStatusColor(c *gin.Context) {
	status, err := validation.ParseStatus(c.Param("status"))
	if err != nil {
		badRequest(c, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"color":  status.Color(),
	})
}

// CapitalizeFirstLetter handles POST /v1/format/capitalize
func (h *UtilityHandler) CapitalizeFirstLetter(c *gin.Context) {
	h.format(c, formatters.CapitalizeFirstLetter)
}

// TrimAndUppercase handles POST /v1/format/trim
func (h *UtilityHandler) TrimAndUppercase(c *gin.Context) {
	h.format(c, formatters.TrimAndUppercase)
}

func (h *UtilityHandler) format(c *gin.Context, formatter formatters.StringFormatter) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "text is required", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": formatter(*req.Text, req.Uppercase),
	})
}
