package accounts

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sherlinsilvia14/MKV-co/internal/auth"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/account"
)

var (
	ErrDuplicateWhatsApp  = errors.New("whatsapp number already registered")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Create inserts a new account. A duplicate WhatsApp number fails atomically
// with ErrDuplicateWhatsApp; the existing row is untouched.
func (r *Repo) Create(ctx context.Context, name, whatsapp, passwordHash, address, role string) (account.Account, error) {
	var a account.Account
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, whatsapp, password_hash, address, role)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, name, whatsapp, password_hash, address, role, created_at
	`, name, whatsapp, passwordHash, address, role).Scan(
		&a.ID, &a.Name, &a.WhatsApp, &a.PasswordHash, &a.Address, &a.Role, &a.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return account.Account{}, ErrDuplicateWhatsApp
	}
	return a, err
}

func (r *Repo) ByWhatsApp(ctx context.Context, whatsapp string) (account.Account, error) {
	var a account.Account
	err := r.db.QueryRow(ctx, `
		SELECT id, name, whatsapp, password_hash, address, role, created_at
		FROM users WHERE whatsapp = $1
	`, whatsapp).Scan(&a.ID, &a.Name, &a.WhatsApp, &a.PasswordHash, &a.Address, &a.Role, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return account.Account{}, ErrNotFound
	}
	return a, err
}

// Verify checks the credentials and returns the account on success. A missing
// account and a wrong password are indistinguishable to the caller.
func (r *Repo) Verify(ctx context.Context, whatsapp, password string) (account.Account, error) {
	a, err := r.ByWhatsApp(ctx, whatsapp)
	if errors.Is(err, ErrNotFound) {
		return account.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return account.Account{}, err
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return account.Account{}, ErrInvalidCredentials
	}
	return a, nil
}
