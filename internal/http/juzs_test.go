package http

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilawahub/tilawa/internal/database"
	"github.com/tilawahub/tilawa/internal/database/juzs"
	"github.com/tilawahub/tilawa/internal/entities"
)

func setupJuzsTest(t *testing.T) (*database.Database, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_juzs_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	controller := NewJuzsController(juzs.NewRepository(db.DB))
	router := gin.New()
	router.GET("/juz/:number", controller.Detail)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, router, cleanup
}

func TestJuzsController_Detail(t *testing.T) {
	t.Run("returns 404 when no juz has the number", func(t *testing.T) {
		_, router, cleanup := setupJuzsTest(t)
		defer cleanup()

		w := getJSON(router, "/juz/12")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for a non-numeric number", func(t *testing.T) {
		_, router, cleanup := setupJuzsTest(t)
		defer cleanup()

		w := getJSON(router, "/juz/amma")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns member surahs and attached recitations", func(t *testing.T) {
		db, router, cleanup := setupJuzsTest(t)
		defer cleanup()

		juz := entities.Juz{Number: 30}
		require.NoError(t, db.DB.Create(&juz).Error)

		surah := entities.Surah{Number: 78, Name: "An-Naba", NameArabic: "النبأ", Juzs: []entities.Juz{juz}}
		require.NoError(t, db.DB.Omit("Juzs.*").Create(&surah).Error)
		require.NoError(t, db.DB.Create(&entities.Recitation{
			URL:         "https://example.com/juz30.mp3",
			ReciterName: "Saad Al-Ghamdi",
			JuzID:       &juz.ID,
		}).Error)

		w := getJSON(router, "/juz/30")
		assert.Equal(t, http.StatusOK, w.Code)

		var detail juzs.Detail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.Len(t, detail.Surahs, 1)
		assert.Equal(t, "An-Naba", detail.Surahs[0].Name)
		require.Len(t, detail.Recitations, 1)
		assert.Equal(t, "Saad Al-Ghamdi", detail.Recitations[0].ReciterName)
	})
}
