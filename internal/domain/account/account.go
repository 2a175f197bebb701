package account

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is keyed by the WhatsApp number, which is unique across the store.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	WhatsApp     string    `json:"whatsapp"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
