package session

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return string(h)
}

func TestSignInWithPassword_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	rows := sqlmock.NewRows([]string{"userId", "email", "password", "displayName", "avatarUrl"}).
		AddRow("u1", "demo@example.com", hashFor(t, "password123"), "Demo User", "")
	mock.ExpectQuery(`SELECT "userId", email, password`).WithArgs("demo@example.com").WillReturnRows(rows)

	sess, err := p.SignInWithPassword("demo@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Identity.ID != "u1" || sess.Identity.DisplayName != "Demo User" {
		t.Fatalf("unexpected identity %+v", sess.Identity)
	}
	if sess.Token == "" {
		t.Fatalf("expected a session token")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSignInWithPassword_WrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	rows := sqlmock.NewRows([]string{"userId", "email", "password", "displayName", "avatarUrl"}).
		AddRow("u1", "demo@example.com", hashFor(t, "password123"), "Demo User", "")
	mock.ExpectQuery(`SELECT "userId", email, password`).WithArgs("demo@example.com").WillReturnRows(rows)

	if _, err := p.SignInWithPassword("demo@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignInWithPassword_UnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	mock.ExpectQuery(`SELECT "userId", email, password`).WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"userId", "email", "password", "displayName", "avatarUrl"}))

	if _, err := p.SignInWithPassword("ghost@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignUp_WeakPassword(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	if _, err := p.SignUp(Profile{Email: "a@b.com", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestSignUp_EmailInUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	mock.ExpectQuery(`SELECT "userId" FROM users`).WithArgs("demo@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"userId"}).AddRow("u1"))

	if _, err := p.SignUp(Profile{Email: "demo@example.com", Password: "secret1"}); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestSignUp_CreatesAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	mock.ExpectQuery(`SELECT "userId" FROM users`).WithArgs("new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"userId"}))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), "new@example.com", sqlmock.AnyArg(), "New User", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := p.SignUp(Profile{DisplayName: "New User", Email: "new@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.ID == "" {
		t.Fatalf("expected a provider-assigned id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetSession_RoundtripsIssuedToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	signInRows := sqlmock.NewRows([]string{"userId", "email", "password", "displayName", "avatarUrl"}).
		AddRow("u1", "demo@example.com", hashFor(t, "password123"), "Demo User", "")
	mock.ExpectQuery(`SELECT "userId", email, password`).WithArgs("demo@example.com").WillReturnRows(signInRows)

	sess, err := p.SignInWithPassword("demo@example.com", "password123")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	profileRows := sqlmock.NewRows([]string{"userId", "email", "displayName", "avatarUrl"}).
		AddRow("u1", "demo@example.com", "Demo User", "")
	mock.ExpectQuery(`SELECT "userId", email, "displayName"`).WithArgs("u1").WillReturnRows(profileRows)

	got, err := p.GetSession(sess.Token)
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}
	if got.Identity.ID != "u1" {
		t.Fatalf("unexpected identity %+v", got.Identity)
	}
}

func TestGetSession_BadToken(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	p := NewPostgresProvider(db, []byte(testSecret))

	if _, err := p.GetSession("not-a-jwt"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
