package models

import "time"

// Class is a subject taught by a tutor at an hourly cost.
type Class struct {
	ID        string    `db:"id" json:"id"`
	Subject   string    `db:"subject" json:"subject"`
	Cost      float64   `db:"cost" json:"cost"`
	TutorID   string    `db:"tutor_id" json:"tutor_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TutorWithClass is the flattened tutor + class row returned by searches.
type TutorWithClass struct {
	ClassID  string  `db:"class_id" json:"class_id"`
	Subject  string  `db:"subject" json:"subject"`
	Cost     float64 `db:"cost" json:"cost"`
	TutorID  string  `db:"tutor_id" json:"tutor_id"`
	Name     string  `db:"name" json:"name"`
	Avatar   string  `db:"avatar" json:"avatar"`
	Whatsapp string  `db:"whatsapp" json:"whatsapp"`
	Bio      string  `db:"bio" json:"bio"`
}
