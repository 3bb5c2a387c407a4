package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
	"turisflow/internal/repositories"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := AuthService{Secret: "test-secret"}
	token, err := svc.issueToken(models.User{ID: 42, Email: "op@turisflow.com", Role: "operator"})
	if err != nil {
		t.Fatalf("issueToken error: %v", err)
	}
	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if id != 42 {
		t.Fatalf("subject = %d, want 42", id)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := AuthService{Secret: "one"}.issueToken(models.User{ID: 1})
	if err != nil {
		t.Fatalf("issueToken error: %v", err)
	}
	if _, err := (AuthService{Secret: "two"}).ParseToken(token); err == nil {
		t.Fatalf("expected rejection for token signed with another secret")
	}
}

func TestLoginChecksPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	expectTablePresent(mock, "users", 2)
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("FROM users WHERE email").WithArgs("op@turisflow.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
				AddRow(7, "Operadora", "op@turisflow.com", string(hash), "operator"))
	}

	svc := AuthService{UserRepo: repositories.UserRepository{DB: db}, Secret: "s", DB: db}

	if _, _, err := svc.Login("op@turisflow.com", "senha-errada"); !domain.IsValidation(err) {
		t.Fatalf("expected rejection of wrong password, got %v", err)
	}
	token, user, err := svc.Login("OP@turisflow.com", "senha-forte")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != 7 || token == "" {
		t.Fatalf("login = (%q, %+v), want token for user 7", token, user)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectTablePresent(mock, "users", 1)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").WithArgs("op@turisflow.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := AuthService{UserRepo: repositories.UserRepository{DB: db}, Secret: "s", DB: db}
	_, err = svc.Register("Operadora", "op@turisflow.com", "senha-forte")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}
