package models

import "time"

// Event is a row of the events table.
type Event struct {
	EventID       string    `db:"id"`
	UserID        string    `db:"user_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Date          time.Time `db:"date"`
	Hour          string    `db:"hour"`
	Address       string    `db:"address"`
	Number        string    `db:"number"`
	District      string    `db:"district"`
	City          string    `db:"city"`
	State         string    `db:"state"`
	Local         string    `db:"local"`
	Category      string    `db:"category"`
	ImagePath     *string   `db:"image_path"`
	ImageFilename *string   `db:"image_filename"`

	AuditFields
}
