package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tilawahub/tilawa/internal/database/recitations"
)

type RecitationsController struct {
	store          RecitationStore
	mostLikedLimit int
}

func NewRecitationsController(store RecitationStore, mostLikedLimit int) *RecitationsController {
	return &RecitationsController{
		store:          store,
		mostLikedLimit: mostLikedLimit,
	}
}

type createRecitationRequest struct {
	URL         string `json:"url" binding:"required"`
	ReciterName string `json:"reciter_name" binding:"required"`
	SurahID     *uint  `json:"surah_id"`
	JuzID       *int   `json:"juz_id"` // a Juz number, not a surrogate key
}

// Create submits a new recitation attached to either a Surah or a Juz.
func (controller *RecitationsController) Create(c *gin.Context) {
	var request createRecitationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recitation, err := controller.store.Create(recitations.CreateInput{
		URL:         request.URL,
		ReciterName: request.ReciterName,
		SurahID:     request.SurahID,
		JuzID:       request.JuzID,
	})
	if err != nil {
		switch {
		case errors.Is(err, recitations.ErrMissingTarget),
			errors.Is(err, recitations.ErrAmbiguousTarget):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, recitations.ErrSurahNotFound),
			errors.Is(err, recitations.ErrJuzNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, recitations.ErrDuplicateURL):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, recitation)
}

// MostLiked returns the top recitations by like count. The cap defaults to
// the configured limit and may be overridden with ?limit=.
func (controller *RecitationsController) MostLiked(c *gin.Context) {
	limit := controller.mostLikedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	result, err := controller.store.MostLiked(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Like increments the like counter of a recitation by one.
func (controller *RecitationsController) Like(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recitation id"})
		return
	}

	recitation, err := controller.store.Like(uint(id))
	if err != nil {
		if errors.Is(err, recitations.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recitation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recitation)
}

// Search matches recitations by reciter name, url, or linked Surah names.
func (controller *RecitationsController) Search(c *gin.Context) {
	result, err := controller.store.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Random returns one recitation chosen uniformly from the whole catalog.
func (controller *RecitationsController) Random(c *gin.Context) {
	recitation, err := controller.store.Random()
	if err != nil {
		if errors.Is(err, recitations.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No recitations found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recitation)
}
