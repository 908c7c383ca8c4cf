package dto

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

type APIScene struct {
	Id        string    `json:"id"`
	ChurchId  string    `json:"church_id"`
	Title     string    `json:"title"`
	ImageKey  string    `json:"image_key"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptSceneDto(scene models.Scene) APIScene {
	return APIScene{
		Id:        scene.Id,
		ChurchId:  scene.ChurchId,
		Title:     scene.Title,
		ImageKey:  scene.ImageKey,
		SortOrder: scene.SortOrder,
		CreatedAt: scene.CreatedAt,
	}
}

type CreateSceneBody struct {
	Title    string `json:"title" binding:"required"`
	ImageKey string `json:"image_key" binding:"required"`
}
