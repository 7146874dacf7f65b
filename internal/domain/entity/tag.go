package entity

import "time"

// Tag etiqueta de producto. El nombre es único a nivel global.
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
