package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sherlinsilvia14/MKV-co/internal/domain/account"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/product"
)

func TestNewGuest(t *testing.T) {
	s := NewGuest()

	_, ok := s.User()
	assert.False(t, ok)
	assert.True(t, s.Cart().IsEmpty())
}

func TestLoginLogout(t *testing.T) {
	s := NewGuest()
	s.Cart().AddOrIncrement(product.Product{ID: 1, Name: "Cotton Dhoti", Price: 500}, 2)

	s.Login(account.Account{ID: 5, Name: "Sita", WhatsApp: "9876543210"})
	u, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, "Sita", u.Name)

	s.Logout()
	_, ok = s.User()
	assert.False(t, ok)
	assert.True(t, s.Cart().IsEmpty())
}
