package entities

import "time"

// Juz is one of the 30 fixed reading-sections of the Quran. The full set is
// created once at seed time and never mutated afterwards.
type Juz struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Number      int          `gorm:"uniqueIndex" json:"number"` // 1..30
	Surahs      []Surah      `gorm:"many2many:surah_juz;" json:"surahs,omitempty"`
	Recitations []Recitation `gorm:"foreignKey:JuzID" json:"recitations,omitempty"`
}

// Surah is a chapter. A Surah may span Juz boundaries, so the Juz link is
// many-to-many through the surah_juz association table.
type Surah struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Number        int    `gorm:"uniqueIndex" json:"number"` // chapter number, stable ordering key
	Name          string `gorm:"index;size:128" json:"name"`
	NameArabic    string `gorm:"size:128" json:"name_arabic"`
	TranslationEN string `gorm:"size:256" json:"translation_en,omitempty"`
	VersesCount   int    `json:"verses_count,omitempty"`

	Juzs        []Juz        `gorm:"many2many:surah_juz;" json:"-"`
	Recitations []Recitation `gorm:"foreignKey:SurahID" json:"-"`
}

// Recitation is a single submitted audio recording. It is attached to exactly
// one of a Surah or a Juz: one of SurahID/JuzID is set, never both, never
// neither. The attachment is fixed at creation time.
type Recitation struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	URL         string `gorm:"uniqueIndex;size:2048;not null" json:"url"`
	ReciterName string `gorm:"index;size:256" json:"reciter_name"`
	Likes       int    `gorm:"not null;default:0" json:"likes"`
	SurahID     *uint  `gorm:"index" json:"surah_id"`
	JuzID       *uint  `gorm:"index" json:"juz_id"`

	Surah *Surah `gorm:"foreignKey:SurahID" json:"surah,omitempty"`
	Juz   *Juz   `gorm:"foreignKey:JuzID" json:"juz,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Juz) TableName() string {
	return "juz"
}

func (Surah) TableName() string {
	return "surah"
}

func (Recitation) TableName() string {
	return "recitation"
}
