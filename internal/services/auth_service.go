package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "turisflow/internal/config"
	"turisflow/internal/domain"
	"turisflow/internal/domain/models"
	"turisflow/internal/repositories"
	"turisflow/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthService issues operator sessions as signed JWTs.
type AuthService struct {
	UserRepo  repositories.UserRepository
	Secret    string
	DB        *sql.DB
	RequestID string
}

func (s AuthService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AuthService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s AuthService) Login(email, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", models.User{}, domain.ValidationError{Field: "email", Msg: "credenciais obrigatórias"}
	}

	user, hash, err := s.users().GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, domain.ValidationError{Field: "email", Msg: "credenciais inválidas"}
		}
		return "", models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", models.User{}, domain.ValidationError{Field: "password", Msg: "credenciais inválidas"}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", models.User{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	return token, user, nil
}

func (s AuthService) Register(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "nome obrigatório"}
	}
	if !strings.Contains(email, "@") {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email inválido"}
	}
	if len(password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "senha deve ter ao menos 8 caracteres"}
	}

	exists, err := s.users().EmailExists(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email já cadastrado"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	id, err := s.users().Create(name, email, string(hash))
	if err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", id))
	return models.User{ID: id, Name: name, Email: email, Role: "operator"}, nil
}

// Profile loads the account behind an authenticated session.
func (s AuthService) Profile(userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	return s.users().GetByID(userID)
}

// ParseToken validates a bearer token and returns the subject user id.
func (s AuthService) ParseToken(raw string) (int64, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.Secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	var id int64
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s AuthService) issueToken(u models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", u.ID),
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}
