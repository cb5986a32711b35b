package http

import (
	"github.com/tilawahub/tilawa/internal/database/juzs"
	"github.com/tilawahub/tilawa/internal/database/recitations"
	"github.com/tilawahub/tilawa/internal/database/surahs"
	"github.com/tilawahub/tilawa/internal/entities"
)

// SurahStore is implemented by surahs.Repository.
type SurahStore interface {
	ListAll() ([]surahs.ListItem, error)
	GetDetail(id uint) (*surahs.Detail, error)
}

// JuzStore is implemented by juzs.Repository.
type JuzStore interface {
	GetByNumber(number int) (*juzs.Detail, error)
}

// RecitationStore is implemented by recitations.Repository.
type RecitationStore interface {
	Create(input recitations.CreateInput) (*entities.Recitation, error)
	Like(id uint) (*entities.Recitation, error)
	MostLiked(limit int) ([]entities.Recitation, error)
	Search(query string) ([]entities.Recitation, error)
	Random() (*entities.Recitation, error)
}
