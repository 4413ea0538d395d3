package models

import "time"

// DefaultItemPriority is applied when a request omits priority.
const DefaultItemPriority = 1

// Item is a single backlog entry stored in the items table.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemRequest is the body of POST /api/items and PUT /api/items/{id}.
// Priority is a pointer so that an omitted value can be told apart from 0.
type ItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Priority    *int   `json:"priority"`
}

// ToItem converts the request into an Item, applying the default priority.
func (r ItemRequest) ToItem() Item {
	priority := DefaultItemPriority
	if r.Priority != nil {
		priority = *r.Priority
	}

	return Item{
		Name:        r.Name,
		Description: r.Description,
		Priority:    priority,
	}
}

// LegacyItemRequest holds the query parameters of the legacy POST /items.
type LegacyItemRequest struct {
	Name *string `json:"name" validate:"required,min=1"`
}

// LegacyItemResponse is returned by the legacy POST /items.
type LegacyItemResponse struct {
	OK   bool   `json:"ok"`
	Name string `json:"name"`
}
