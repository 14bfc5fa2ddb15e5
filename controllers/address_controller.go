package controllers

import (
	"net/http"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type AddressRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Country        string `json:"country" binding:"required"`
	StreetAddress1 string `json:"street_address_1" binding:"required"`
	StreetAddress2 string `json:"street_address_2"`
	TownCity       string `json:"town_city" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
}

type AddressController struct {
	Addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{Addresses: addresses}
}

// AddAddress appends a shipping address to the authenticated user's
// profile.
func (ac *AddressController) AddAddress(c *gin.Context) {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address payload"})
		return
	}

	address := models.Address{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Country:        req.Country,
		StreetAddress1: req.StreetAddress1,
		StreetAddress2: req.StreetAddress2,
		TownCity:       req.TownCity,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
	}

	if svcErr := ac.Addresses.AddAddress(c.Request.Context(), email, address); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address added successfully"})
}

// GetUserAddress lists the user's addresses, or a marker when there are
// none.
func (ac *AddressController) GetUserAddress(c *gin.Context) {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	addresses, svcErr := ac.Addresses.ListAddresses(c.Request.Context(), email)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if len(addresses) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "User does not have any addresses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}
