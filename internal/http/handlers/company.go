package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/domain/models"
	"turisflow/internal/http/middleware"
	"turisflow/internal/services"
)

func GetCompanyProfile(c *gin.Context) {
	svc := services.CompanyService{RequestID: middleware.GetRequestID(c)}
	profile, err := svc.Get()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": profile})
}

func SaveCompanyProfile(c *gin.Context) {
	var profile models.CompanyProfile
	if !BindJSONOrError(c, &profile) {
		return
	}
	svc := services.CompanyService{RequestID: middleware.GetRequestID(c)}
	saved, err := svc.Save(profile)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": saved})
}
