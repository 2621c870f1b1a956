package domain

import "time"

// Review is an append-only user review of an emergency service. Reviews are
// never updated or deleted.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	ServiceID int64     `json:"service_id" db:"service_id"`
	UserName  string    `json:"user_name" db:"user_name"`
	Rating    int       `json:"rating" db:"rating"`
	Review    string    `json:"review" db:"review"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
