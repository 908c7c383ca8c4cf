package models

import "time"

// Scene is one panorama of a church virtual tour. The scene list is the one
// shared structure mutated under a database transaction, so that two
// concurrent additions do not lose each other's sort order.
type Scene struct {
	Id        string
	ChurchId  string
	Title     string
	ImageKey  string
	SortOrder int
	CreatedAt time.Time
}

type CreateSceneAttributes struct {
	ChurchId string
	Title    string
	ImageKey string
}
