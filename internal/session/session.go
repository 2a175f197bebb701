// Package session owns the per-browsing-session state: who is signed in and
// what is in their cart. It replaces ambient globals with an explicitly
// injected store; carts never leave the session, so there is no cross-session
// ordering to worry about.
//
// This is the contract for client-held session state. The API server itself
// is stateless, so nothing under cmd/ constructs a Session; a UI layer (or
// the package tests) is the intended caller.
package session

import (
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/account"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/cart"
)

type Session struct {
	user *account.Account
	cart *cart.Cart
}

// NewGuest starts a session with no user and an empty cart.
func NewGuest() *Session {
	return &Session{cart: cart.New()}
}

func (s *Session) Login(a account.Account) {
	s.user = &a
}

// Logout tears the session down to guest state: user gone, cart cleared.
func (s *Session) Logout() {
	s.user = nil
	s.cart.Clear()
}

func (s *Session) User() (account.Account, bool) {
	if s.user == nil {
		return account.Account{}, false
	}
	return *s.user, true
}

func (s *Session) Cart() *cart.Cart {
	return s.cart
}
