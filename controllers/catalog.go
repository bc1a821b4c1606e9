package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"technomech-api/models"
)

// GetProducts handles GET /catalog/products
func GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.Products,
		"count":   len(models.Products),
	})
}

// GetServices handles GET /catalog/services
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.Services,
		"count":   len(models.Services),
	})
}

// GetCompanyInfo handles GET /company
func GetCompanyInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    models.CompanyName,
		"address": models.CompanyAddress,
		"phone":   models.CompanyPhone,
		"email":   models.CompanyEmail,
		"website": models.CompanyWebsite,
	})
}
