package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nithin-dev/bizmate-golang/internal/database"
	"github.com/nithin-dev/bizmate-golang/internal/models"
)

// CustomerInput carries the writable columns of a customer row. The same
// shape serves create and update; customerId comes from the URL on update.
type CustomerInput struct {
	CustomerID     string `json:"customerId"`
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	Country        string `json:"country" binding:"required"`
	PinNumber      string `json:"pinNumber" binding:"required"`
	MobileNumber   string `json:"mobileNumber" binding:"required"`
	EmailID        string `json:"emailId" binding:"required"`
	LandLineNumber string `json:"landLineNumber"`
	SocialHandle   string `json:"socialHandle"`
	ShipToAddress  string `json:"shipToAddress"`
	BillingAddress string `json:"billingAddress"`
	BankDetails    string `json:"bankDetails"`
	PaymentTerms   string `json:"paymentTerms"`
	GSTNumber      string `json:"gstNumber"`
}

// CreateCustomer handles POST /v1/customers.
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil || input.CustomerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}

	query := `
		INSERT INTO customerextra (
			customerId, name, address, city, state, country,
			pinNumber, mobileNumber, landLineNumber, emailId,
			socialHandle, shipToAddress, billingAddress, bankDetails,
			paymentTerms, gstNumber, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query,
		input.CustomerID, input.Name, input.Address, input.City, input.State, input.Country,
		input.PinNumber, input.MobileNumber, input.LandLineNumber, input.EmailID,
		input.SocialHandle, input.ShipToAddress, input.BillingAddress, input.BankDetails,
		input.PaymentTerms, input.GSTNumber, time.Now(),
	)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Customer ID already exists"})
			return
		}
		log.Printf("Error storing customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store customer details"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer details stored successfully"})
}

const customerColumns = `
	id, customerId, name, address, city, state, country,
	pinNumber, mobileNumber, landLineNumber, emailId, socialHandle,
	shipToAddress, billingAddress, bankDetails, paymentTerms, gstNumber, created_at`

func scanCustomers(rows *sql.Rows) ([]models.Customer, error) {
	customers := []models.Customer{}
	for rows.Next() {
		var cust models.Customer
		if err := rows.Scan(
			&cust.ID, &cust.CustomerID, &cust.Name, &cust.Address, &cust.City,
			&cust.State, &cust.Country, &cust.PinNumber, &cust.MobileNumber,
			&cust.LandLineNumber, &cust.EmailID, &cust.SocialHandle,
			&cust.ShipToAddress, &cust.BillingAddress, &cust.BankDetails,
			&cust.PaymentTerms, &cust.GSTNumber, &cust.CreatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, cust)
	}
	return customers, rows.Err()
}

// GetCustomers handles GET /v1/customers. Every row, unfiltered.
func (h *Handlers) GetCustomers(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT` + customerColumns + ` FROM customerextra`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching customers"})
		return
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan customer row"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// SearchCustomers handles GET /v1/customers/search?q=. Case-insensitive
// substring match over name and city; an empty query matches everything.
func (h *Handlers) SearchCustomers(c *gin.Context) {
	keyword := "%" + c.Query("q") + "%"

	query := `SELECT` + customerColumns + `
		FROM customerextra
		WHERE name LIKE ? OR city LIKE ?`

	rows, err := h.DB.Query(query, keyword, keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching customers"})
		return
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan customer row"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// UpdateCustomer handles PUT /v1/customers/:customerId. Full replacement of
// every non-key column; zero matched rows is a 404, not a silent success.
func (h *Handlers) UpdateCustomer(c *gin.Context) {
	customerID := c.Param("customerId")

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}

	query := `
		UPDATE customerextra SET
			name = ?, address = ?, city = ?, state = ?, country = ?,
			pinNumber = ?, mobileNumber = ?, landLineNumber = ?, emailId = ?,
			socialHandle = ?, shipToAddress = ?, billingAddress = ?,
			bankDetails = ?, paymentTerms = ?, gstNumber = ?
		WHERE customerId = ?`

	result, err := h.DB.Exec(query,
		input.Name, input.Address, input.City, input.State, input.Country,
		input.PinNumber, input.MobileNumber, input.LandLineNumber, input.EmailID,
		input.SocialHandle, input.ShipToAddress, input.BillingAddress,
		input.BankDetails, input.PaymentTerms, input.GSTNumber, customerID,
	)
	if err != nil {
		log.Printf("Error updating customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

// DeleteCustomer handles DELETE /v1/customers/:customerId.
func (h *Handlers) DeleteCustomer(c *gin.Context) {
	customerID := c.Param("customerId")

	result, err := h.DB.Exec(`DELETE FROM customerextra WHERE customerId = ?`, customerID)
	if err != nil {
		log.Printf("Error deleting customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting customer"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
