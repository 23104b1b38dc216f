// Package model defines the domain entities persisted by the service.
package model

import "time"

// Category classifies an item on the campus board.
type Category string

const (
	CategoryNews         Category = "news"
	CategoryEvent        Category = "event"
	CategoryAnnouncement Category = "announcement"
)

// Categories lists every valid category, in the order they are documented.
func Categories() []Category {
	return []Category{CategoryNews, CategoryEvent, CategoryAnnouncement}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNews, CategoryEvent, CategoryAnnouncement:
		return true
	}
	return false
}

// Item is the single persisted entity: a news post, an event, or an
// announcement.
//
// ID is assigned by the store on creation and never reused. CreatedAt is
// set once at creation; UpdatedAt is refreshed on every successful update,
// so CreatedAt <= UpdatedAt always holds.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
