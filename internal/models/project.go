package models

import "time"

// Project groups tasks under a single owner. UserID is the scoping key:
// every read or mutation filters by it.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
}
