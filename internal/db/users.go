package db

import (
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SQLite returns CURRENT_TIMESTAMP in the first layout; the driver may hand
// back any of the others.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// CreateUser stores a new user with a bcrypt hash of password.
func CreateUser(login, password string) (*User, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM users WHERE login = ?", login).Scan(&count)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	result, err := DB.Exec(
		"INSERT INTO users (login, password_hash) VALUES (?, ?)",
		login, string(passwordHash),
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           id,
		Login:        login,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}, nil
}

func GetUserByID(id int64) (*User, error) {
	return scanUser(DB.QueryRow(
		"SELECT id, login, password_hash, created_at FROM users WHERE id = ?",
		id,
	))
}

func GetUserByLogin(login string) (*User, error) {
	return scanUser(DB.QueryRow(
		"SELECT id, login, password_hash, created_at FROM users WHERE login = ?",
		login,
	))
}

func scanUser(row *sql.Row) (*User, error) {
	var user User
	var createdAtStr string

	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.CreatedAt = time.Now()
	for _, format := range timestampFormats {
		if t, parseErr := time.Parse(format, createdAtStr); parseErr == nil {
			user.CreatedAt = t
			break
		}
	}

	return &user, nil
}

// AuthenticateUser checks login and password against the stored hash.
func AuthenticateUser(login, password string) (*User, error) {
	user, err := GetUserByLogin(login)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
