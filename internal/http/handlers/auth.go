package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/http/middleware"
	"turisflow/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.AuthService{Secret: getJWTSecret(), RequestID: middleware.GetRequestID(c)}
	token, user, err := svc.Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.AuthService{Secret: getJWTSecret(), RequestID: middleware.GetRequestID(c)}
	user, err := svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Me returns the account behind the current token.
func Me(c *gin.Context) {
	id := middleware.GetUserID(c)
	if id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "não autenticado",
			"code":  "unauthorized",
		})
		return
	}
	svc := services.AuthService{Secret: getJWTSecret(), RequestID: middleware.GetRequestID(c)}
	user, err := svc.Profile(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
