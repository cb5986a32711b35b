package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tilawahub/tilawa/internal/database/juzs"
)

type JuzsController struct {
	store JuzStore
}

func NewJuzsController(store JuzStore) *JuzsController {
	return &JuzsController{store: store}
}

// Detail returns the Surahs belonging to a Juz and the recitations attached
// directly to it. The path parameter is the Juz number, not a surrogate key.
func (controller *JuzsController) Detail(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid juz number"})
		return
	}

	detail, err := controller.store.GetByNumber(number)
	if err != nil {
		if errors.Is(err, juzs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Juz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}
