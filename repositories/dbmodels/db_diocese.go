package dbmodels

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type DBDiocese struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	LogoKey   string    `db:"logo_key"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_DIOCESES = "dioceses"

var SelectDioceseColumns = utils.ColumnList[DBDiocese]()

func AdaptDiocese(db DBDiocese) (models.Diocese, error) {
	return models.Diocese{
		Id:        db.Id,
		Name:      db.Name,
		LogoKey:   db.LogoKey,
		CreatedAt: db.CreatedAt,
	}, nil
}
