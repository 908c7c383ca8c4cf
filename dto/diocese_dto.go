package dto

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

type APIDiocese struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	LogoKey   string    `json:"logo_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptDioceseDto(diocese models.Diocese) APIDiocese {
	return APIDiocese{
		Id:        diocese.Id,
		Name:      diocese.Name,
		LogoKey:   diocese.LogoKey,
		CreatedAt: diocese.CreatedAt,
	}
}
