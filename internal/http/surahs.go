package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tilawahub/tilawa/internal/database/surahs"
)

type SurahsController struct {
	store SurahStore
}

func NewSurahsController(store SurahStore) *SurahsController {
	return &SurahsController{store: store}
}

// List returns every Surah ordered by chapter number, lightweight projection.
func (controller *SurahsController) List(c *gin.Context) {
	items, err := controller.store.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Detail returns the full Surah view with its recitations.
func (controller *SurahsController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid surah id"})
		return
	}

	detail, err := controller.store.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, surahs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Surah not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}
