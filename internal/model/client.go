package model

// Client is a customer who books events. Email is unique across clients.
// A client cannot be deleted while events still reference it.
type Client struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Company     string `json:"company,omitempty"`
	IsCorporate bool   `json:"is_corporate"`
	CreatedAt   string `json:"created_at"`
}
