package product

import "time"

// Product is write-once: fields never change after creation and there are no
// update or delete operations anywhere in the system.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft is what the admin submits; id and created_at are store-assigned.
type Draft struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
}
