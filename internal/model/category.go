package model

import "time"

// Category represents an entry in the display registry: a category name
// plus presentation metadata. Classification logic only needs the name;
// icon and color exist for UI consumers.
type Category struct {
	CreatedAt time.Time
	Name      string
	Icon      string
	Color     string
	IsActive  bool
}
