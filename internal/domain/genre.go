package domain

import "time"

// Genre is a movie category. Genre names are unique across the catalog.
type Genre struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
