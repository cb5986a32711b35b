package recitations

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tilawahub/tilawa/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_recitations_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Juz{},
		&entities.Surah{},
		&entities.Recitation{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestSurah(t *testing.T, db *gorm.DB, number int, name, nameArabic string) *entities.Surah {
	surah := &entities.Surah{
		Number:     number,
		Name:       name,
		NameArabic: nameArabic,
	}
	err := db.Create(surah).Error
	require.NoError(t, err)
	return surah
}

func createTestJuz(t *testing.T, db *gorm.DB, number int) *entities.Juz {
	juz := &entities.Juz{Number: number}
	err := db.Create(juz).Error
	require.NoError(t, err)
	return juz
}

func uintPtr(v uint) *uint {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func recitationCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	err := db.Model(&entities.Recitation{}).Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestRepository_Create(t *testing.T) {
	t.Run("attaches to a surah by surrogate key", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		surah := createTestSurah(t, db, 1, "Al-Fatiha", "الفاتحة")

		rec, err := repo.Create(CreateInput{
			URL:         "https://example.com/fatiha.mp3",
			ReciterName: "Mishary Alafasy",
			SurahID:     uintPtr(surah.ID),
		})
		require.NoError(t, err)

		assert.Equal(t, 0, rec.Likes)
		require.NotNil(t, rec.SurahID)
		assert.Equal(t, surah.ID, *rec.SurahID)
		assert.Nil(t, rec.JuzID)
		require.NotNil(t, rec.Surah)
		assert.Equal(t, "Al-Fatiha", rec.Surah.Name)
	})

	t.Run("resolves juz target by number, not surrogate key", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		// Surrogate keys diverge from numbers once earlier rows exist
		createTestJuz(t, db, 11)
		juz := createTestJuz(t, db, 5)

		rec, err := repo.Create(CreateInput{
			URL:         "https://example.com/juz5.mp3",
			ReciterName: "Saad Al-Ghamdi",
			JuzID:       intPtr(5),
		})
		require.NoError(t, err)

		require.NotNil(t, rec.JuzID)
		assert.Equal(t, juz.ID, *rec.JuzID)
		assert.Nil(t, rec.SurahID)
	})

	t.Run("fails with missing target when neither id is given", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.Create(CreateInput{
			URL:         "https://example.com/none.mp3",
			ReciterName: "Someone",
		})
		assert.ErrorIs(t, err, ErrMissingTarget)
		assert.Equal(t, int64(0), recitationCount(t, db))
	})

	t.Run("fails with ambiguous target when both ids are given", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		surah := createTestSurah(t, db, 1, "Al-Fatiha", "الفاتحة")
		createTestJuz(t, db, 1)

		_, err := repo.Create(CreateInput{
			URL:         "https://example.com/both.mp3",
			ReciterName: "Someone",
			SurahID:     uintPtr(surah.ID),
			JuzID:       intPtr(1),
		})
		assert.ErrorIs(t, err, ErrAmbiguousTarget)
		assert.Equal(t, int64(0), recitationCount(t, db))
	})

	t.Run("fails when the target surah does not exist", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.Create(CreateInput{
			URL:         "https://example.com/missing.mp3",
			ReciterName: "Someone",
			SurahID:     uintPtr(999),
		})
		assert.ErrorIs(t, err, ErrSurahNotFound)
	})

	t.Run("fails when no juz has the given number", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		createTestJuz(t, db, 1)

		_, err := repo.Create(CreateInput{
			URL:         "https://example.com/missing.mp3",
			ReciterName: "Someone",
			JuzID:       intPtr(31),
		})
		assert.ErrorIs(t, err, ErrJuzNotFound)
	})

	t.Run("rejects a duplicate url without altering the store", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		surah := createTestSurah(t, db, 1, "Al-Fatiha", "الفاتحة")

		_, err := repo.Create(CreateInput{
			URL:         "https://example.com/dup.mp3",
			ReciterName: "First",
			SurahID:     uintPtr(surah.ID),
		})
		require.NoError(t, err)

		_, err = repo.Create(CreateInput{
			URL:         "https://example.com/dup.mp3",
			ReciterName: "Second",
			SurahID:     uintPtr(surah.ID),
		})
		assert.ErrorIs(t, err, ErrDuplicateURL)
		assert.Equal(t, int64(1), recitationCount(t, db))
	})
}

func TestRepository_Like(t *testing.T) {
	t.Run("sequential likes accumulate exactly", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		surah := createTestSurah(t, db, 1, "Al-Fatiha", "الفاتحة")
		rec, err := repo.Create(CreateInput{
			URL:         "https://example.com/like.mp3",
			ReciterName: "Someone",
			SurahID:     uintPtr(surah.ID),
		})
		require.NoError(t, err)

		var updated *entities.Recitation
		for i := 0; i < 5; i++ {
			updated, err = repo.Like(rec.ID)
			require.NoError(t, err)
		}
		assert.Equal(t, 5, updated.Likes)
	})

	t.Run("returns the record with its links resolved", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		createTestJuz(t, db, 3)
		rec, err := repo.Create(CreateInput{
			URL:         "https://example.com/juz3.mp3",
			ReciterName: "Someone",
			JuzID:       intPtr(3),
		})
		require.NoError(t, err)

		updated, err := repo.Like(rec.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.Juz)
		assert.Equal(t, 3, updated.Juz.Number)
		assert.Nil(t, updated.Surah)
	})

	t.Run("fails with not found for a missing id", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.Like(12345)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_MostLiked(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	surah := createTestSurah(t, db, 1, "Al-Fatiha", "الفاتحة")
	likes := []int{5, 1, 9}
	for i, n := range likes {
		rec := &entities.Recitation{
			URL:         "https://example.com/" + strings.Repeat("x", i+1) + ".mp3",
			ReciterName: "Someone",
			Likes:       n,
			SurahID:     &surah.ID,
		}
		require.NoError(t, db.Create(rec).Error)
	}

	t.Run("orders by likes descending", func(t *testing.T) {
		result, err := repo.MostLiked(50)
		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, 9, result[0].Likes)
		assert.Equal(t, 5, result[1].Likes)
		assert.Equal(t, 1, result[2].Likes)
	})

	t.Run("honors the limit", func(t *testing.T) {
		result, err := repo.MostLiked(2)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, 9, result[0].Likes)
		assert.Equal(t, 5, result[1].Likes)
	})

	t.Run("eager-loads the surah link", func(t *testing.T) {
		result, err := repo.MostLiked(1)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].Surah)
		assert.Equal(t, "Al-Fatiha", result[0].Surah.Name)
	})
}

func TestRepository_Search(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	surah := createTestSurah(t, db, 36, "Ya-Sin", "يس")
	juz := createTestJuz(t, db, 1)

	require.NoError(t, db.Create(&entities.Recitation{
		URL:         "https://example.com/yasin.mp3",
		ReciterName: "Abdul Basit",
		Likes:       3,
		SurahID:     &surah.ID,
	}).Error)
	require.NoError(t, db.Create(&entities.Recitation{
		URL:         "https://example.com/juz-one.mp3",
		ReciterName: "Maher Al-Muaiqly",
		Likes:       7,
		JuzID:       &juz.ID,
	}).Error)

	t.Run("empty query returns an empty list, not all records", func(t *testing.T) {
		result, err := repo.Search("")
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("matches a reciter name substring case-insensitively", func(t *testing.T) {
		result, err := repo.Search("abdul")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Abdul Basit", result[0].ReciterName)
	})

	t.Run("matches by url", func(t *testing.T) {
		result, err := repo.Search("juz-one")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Maher Al-Muaiqly", result[0].ReciterName)
	})

	t.Run("matches by linked surah latin name", func(t *testing.T) {
		result, err := repo.Search("ya-sin")
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].Surah)
		assert.Equal(t, "Ya-Sin", result[0].Surah.Name)
	})

	t.Run("matches by linked surah arabic name", func(t *testing.T) {
		result, err := repo.Search("يس")
		require.NoError(t, err)
		require.Len(t, result, 1)
	})

	t.Run("orders matches by likes descending", func(t *testing.T) {
		result, err := repo.Search("example.com")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, 7, result[0].Likes)
		assert.Equal(t, 3, result[1].Likes)
	})

	t.Run("no match yields an empty list", func(t *testing.T) {
		result, err := repo.Search("nonexistent-reciter")
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestRepository_Random(t *testing.T) {
	t.Run("fails with not found when the store is empty", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.Random()
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("always returns the only recitation", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		surah := createTestSurah(t, db, 1, "Al-Fatiha", "الفاتحة")
		rec, err := repo.Create(CreateInput{
			URL:         "https://example.com/only.mp3",
			ReciterName: "Someone",
			SurahID:     uintPtr(surah.ID),
		})
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			got, err := repo.Random()
			require.NoError(t, err)
			assert.Equal(t, rec.ID, got.ID)
		}
	})

	t.Run("reaches every recitation eventually", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		surah := createTestSurah(t, db, 1, "Al-Fatiha", "الفاتحة")
		for _, url := range []string{"a", "b", "c"} {
			require.NoError(t, db.Create(&entities.Recitation{
				URL:         "https://example.com/" + url + ".mp3",
				ReciterName: "Someone",
				SurahID:     &surah.ID,
			}).Error)
		}

		seen := make(map[uint]bool)
		for i := 0; i < 200; i++ {
			got, err := repo.Random()
			require.NoError(t, err)
			seen[got.ID] = true
		}
		assert.Len(t, seen, 3)
	})
}
