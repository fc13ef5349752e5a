package domain

// Menu categories offered by the kitchen.
var Categories = []string{"Starters", "Main Course", "Desserts", "Beverages", "Sides"}

// MenuItem is owned by the backend; the client only observes it, except
// through the admin CRUD calls.
type MenuItem struct {
	ID          string  `json:"_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
	Image       string  `json:"image,omitempty"`
}
