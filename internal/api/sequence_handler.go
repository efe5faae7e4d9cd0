package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/typed-helpers/pkg/collections"
)

// SequenceHandler handles first-element and find-by-id endpoints
type SequenceHandler struct {
	log zerolog.Logger
}

// NewSequenceHandler creates a new SequenceHandler
func NewSequenceHandler(log zerolog.Logger) *SequenceHandler {
	return &SequenceHandler{
		log: log.With().Str("handler", "sequence").Logger(),
	}
}

// FirstRequest is the body of POST /v1/sequences/first
type FirstRequest struct {
	Items []json.RawMessage `json:"items" binding:"required"`
}

// FindRequest is the body of POST /v1/sequences/find
type FindRequest struct {
	Items []identifiedItem `json:"items" binding:"required"`
	ID    *int             `json:"id" binding:"required"`
}

// identifiedItem is an arbitrary JSON object with an integer "id" member.
// The raw object is kept so matches are returned verbatim.
type identifiedItem struct {
	id  int
	raw json.RawMessage
}

var errMissingID = errors.New("each item must have an integer id")

func (i *identifiedItem) UnmarshalJSON(data []byte) error {
	var fields struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return errMissingID
	}
	// only a bare integer literal that fits in an int counts as an id
	id, err := strconv.ParseInt(string(fields.ID), 10, strconv.IntSize)
	if err != nil {
		return errMissingID
	}
	i.id = int(id)
	i.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (i identifiedItem) GetID() int { return i.id }

// GetFirstElement handles POST /v1/sequences/first
func (h *SequenceHandler) GetFirstElement(c *gin.Context) {
	var req FirstRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "items array is required", nil)
		return
	}

	item, found := collections.FirstElement(req.Items)
	respondLookup(c, item, found)
}

// FindByID handles POST /v1/sequences/find
func (h *SequenceHandler) FindByID(c *gin.Context) {
	var req FindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, errMissingID) {
			badRequest(c, errMissingID.Error(), nil)
			return
		}
		badRequest(c, "items array and integer id are required", nil)
		return
	}

	item, found := collections.FindByID(req.Items, *req.ID)
	h.log.Debug().Int("id", *req.ID).Int("items", len(req.Items)).Bool("found", found).Msg("Lookup by id")
	respondLookup(c, item.raw, found)
}

func respondLookup(c *gin.Context, item json.RawMessage, found bool) {
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "item": item})
}
