package menu

import "time"

type Location string

const (
	LocationHeader  Location = "header"
	LocationFooter  Location = "footer"
	LocationSidebar Location = "sidebar"
)

func (l Location) Valid() bool {
	switch l {
	case LocationHeader, LocationFooter, LocationSidebar:
		return true
	}
	return false
}

// Item is a node of the navigation tree. Children nest to any depth.
type Item struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Children []Item `json:"children,omitempty"`
}

type Menu struct {
	ID        int64
	Name      string
	Location  Location
	Items     []Item
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Items    []Item `json:"items"`
	IsActive *bool  `json:"isActive"`
}

type UpdateInput struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Items    []Item  `json:"items"`
	IsActive *bool   `json:"isActive"`
}

type ListFilter struct {
	Location   Location
	ActiveOnly bool
}

type View struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  Location  `json:"location"`
	Items     []Item    `json:"items"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
