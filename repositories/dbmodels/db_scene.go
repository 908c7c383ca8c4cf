package dbmodels

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type DBScene struct {
	Id        string    `db:"id"`
	ChurchId  string    `db:"church_id"`
	Title     string    `db:"title"`
	ImageKey  string    `db:"image_key"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_SCENES = "virtual_tour_scenes"

var SelectSceneColumns = utils.ColumnList[DBScene]()

func AdaptScene(db DBScene) (models.Scene, error) {
	return models.Scene{
		Id:        db.Id,
		ChurchId:  db.ChurchId,
		Title:     db.Title,
		ImageKey:  db.ImageKey,
		SortOrder: db.SortOrder,
		CreatedAt: db.CreatedAt,
	}, nil
}
