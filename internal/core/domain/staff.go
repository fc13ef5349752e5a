package domain

import "time"

// Staff is the record the backend returns on signup. The client never
// stores it; identity comes exclusively from the decoded credential.
type Staff struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Age       int       `json:"age"`
	Work      string    `json:"work"`
	Address   string    `json:"address"`
	Salary    float64   `json:"salary"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
