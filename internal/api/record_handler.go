package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/typed-helpers/internal/validation"
	"github.com/typed-helpers/pkg/models"
)

// RecordHandler handles user and book construction endpoints
type RecordHandler struct {
	validator *validation.Validator
	log       zerolog.Logger
}

// NewRecordHandler creates a new RecordHandler
func NewRecordHandler(validator *validation.Validator, log zerolog.Logger) *RecordHandler {
	return &RecordHandler{
		validator: validator,
		log:       log.With().Str("handler", "record").Logger(),
	}
}

// CreateUser handles POST /v1/users
func (h *RecordHandler) CreateUser(c *gin.Context) {
	var in validation.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid JSON body: "+err.Error(), nil)
		return
	}

	if errs := h.validator.ValidateUser(&in); len(errs) > 0 {
		h.log.Debug().Int("error_count", len(errs)).Msg("Rejected user")
		badRequest(c, "validation failed", errs)
		return
	}

	user := in.ToUser()
	h.log.Debug().Int("user_id", user.ID).Bool("active", user.IsActive).Msg("User created")
	c.JSON(http.StatusCreated, user)
}

// CreateBook handles POST /v1/books
func (h *RecordHandler) CreateBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		badRequest(c, "invalid JSON body: "+err.Error(), nil)
		return
	}

	if errs := h.validator.ValidateBook(&book); len(errs) > 0 {
		h.log.Debug().Int("error_count", len(errs)).Msg("Rejected book")
		badRequest(c, "validation failed", errs)
		return
	}

	c.JSON(http.StatusCreated, models.NewBook(book))
}
