package model

// Supplier is an external vendor the business orders from. Inactive suppliers
// are kept for history but filtered out of active listings.
type Supplier struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contact_person,omitempty"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Address       string  `json:"address,omitempty"`
	Category      string  `json:"category,omitempty"`
	Rating        float64 `json:"rating"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}
