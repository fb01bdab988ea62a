package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

const (
	getUserByEmailQuery = `
		SELECT "userId", email, password, "displayName", coalesce("avatarUrl", '')
		FROM users
		WHERE email = $1
	`
	getUserByIDQuery = `
		SELECT "userId", email, "displayName", coalesce("avatarUrl", '')
		FROM users
		WHERE "userId" = $1
	`
	insertUserQuery = `
		INSERT INTO users ("userId", email, password, "displayName", "createdAt")
		VALUES ($1, $2, $3, $4, $5)
	`
)

// PostgresProvider implements Provider against the managed backend's users
// table. Tokens are stateless HS256 JWTs, so SignOut has no remote record to
// delete and always succeeds.
type PostgresProvider struct {
	db     *sql.DB
	secret []byte
}

func NewPostgresProvider(db *sql.DB, secret []byte) *PostgresProvider {
	return &PostgresProvider{db: db, secret: secret}
}

func (p *PostgresProvider) SignInWithPassword(email, password string) (Session, error) {
	var (
		id     Identity
		hashed string
	)
	err := p.db.QueryRow(getUserByEmailQuery, email).Scan(&id.ID, &id.Email, &hashed, &id.DisplayName, &id.AvatarURL)
	if err == sql.ErrNoRows {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("identity provider: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := p.issueToken(id)
	if err != nil {
		return Session{}, err
	}
	return Session{Identity: id, Token: token}, nil
}

func (p *PostgresProvider) SignUp(profile Profile) (Identity, error) {
	if len(profile.Password) < minPasswordLength {
		return Identity{}, ErrWeakPassword
	}

	var existing string
	err := p.db.QueryRow(`SELECT "userId" FROM users WHERE email = $1`, profile.Email).Scan(&existing)
	if err == nil {
		return Identity{}, ErrEmailInUse
	}
	if err != sql.ErrNoRows {
		return Identity{}, fmt.Errorf("identity provider: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, err
	}

	id := Identity{
		ID:          uuid.NewString(),
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := p.db.Exec(insertUserQuery, id.ID, id.Email, string(hashed), id.DisplayName, now); err != nil {
		return Identity{}, fmt.Errorf("identity provider: %w", err)
	}
	return id, nil
}

func (p *PostgresProvider) GetSession(token string) (Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Session{}, ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidCredentials
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return Session{}, ErrInvalidCredentials
	}

	id, err := p.GetProfile(userID)
	if err != nil {
		return Session{}, err
	}
	return Session{Identity: id, Token: token}, nil
}

func (p *PostgresProvider) SignOut(string) error {
	return nil
}

func (p *PostgresProvider) GetProfile(userID string) (Identity, error) {
	var id Identity
	err := p.db.QueryRow(getUserByIDQuery, userID).Scan(&id.ID, &id.Email, &id.DisplayName, &id.AvatarURL)
	if err == sql.ErrNoRows {
		return Identity{}, ErrNotFound
	}
	if err != nil {
		return Identity{}, fmt.Errorf("identity provider: %w", err)
	}
	return id, nil
}

func (p *PostgresProvider) issueToken(id Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id.ID,
		"email":   id.Email,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
