package models

import "time"

// Diocese is the administrative org unit a church record and its actors
// belong to. Reference data, seeded by migration.
type Diocese struct {
	Id        string
	Name      string
	LogoKey   string
	CreatedAt time.Time
}
