package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nithin-dev/bizmate-golang/internal/models"
)

// OrderInput carries the writable columns of a purchase order. Products
// must be present (an empty list is allowed, a missing field is not);
// specialInstructions and location are optional. A missing location is
// stored as NULL and reads back as the N/A placeholder.
type OrderInput struct {
	CustomerID           string                `json:"customerId" binding:"required"`
	CustomerName         string                `json:"customerName" binding:"required"`
	Products             []models.OrderProduct `json:"products"`
	OrderDate            string                `json:"orderDate" binding:"required"`
	ExpectedDeliveryDate string                `json:"expectedDeliveryDate" binding:"required"`
	PaymentMethod        string                `json:"paymentMethod" binding:"required"`
	SpecialInstructions  string                `json:"specialInstructions"`
	BillingAddress       string                `json:"billingAddress" binding:"required"`
	ShippingAddress      string                `json:"shippingAddress" binding:"required"`
	Location             *models.Location      `json:"location"`
}

// encodedBlobs serializes the order's structured fields for storage.
// The location comes back as *string so a nil can reach the NULL column.
func (in *OrderInput) encodedBlobs() (string, *string, error) {
	productsJSON, err := models.EncodeOrderProducts(in.Products)
	if err != nil {
		return "", nil, err
	}
	if in.Location == nil {
		return productsJSON, nil, nil
	}
	locationJSON, err := models.EncodeLocation(*in.Location)
	if err != nil {
		return "", nil, err
	}
	return productsJSON, &locationJSON, nil
}

// CreateOrder handles POST /v1/purchase-orders.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Products == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}

	productsJSON, locationJSON, err := input.encodedBlobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode order payload"})
		return
	}

	query := `
		INSERT INTO purchaseorderextra (
			customerId, customerName, products, orderDate, expectedDeliveryDate,
			paymentMethod, specialInstructions, billingAddress, shippingAddress, location
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = h.DB.Exec(query,
		input.CustomerID, input.CustomerName, productsJSON, input.OrderDate,
		input.ExpectedDeliveryDate, input.PaymentMethod, input.SpecialInstructions,
		input.BillingAddress, input.ShippingAddress, locationJSON,
	)
	if err != nil {
		log.Printf("Error storing purchase order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store purchase order details"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Purchase order details stored successfully"})
}

// GetOrders handles GET /v1/purchase-orders. The products and location
// columns are decoded per row; a row with a corrupt blob degrades to an
// empty list or the N/A placeholder without affecting its siblings.
func (h *Handlers) GetOrders(c *gin.Context) {
	query := `
		SELECT id, customerId, customerName, products, orderDate,
			expectedDeliveryDate, paymentMethod, specialInstructions,
			billingAddress, shippingAddress, location
		FROM purchaseorderextra`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching purchase orders"})
		return
	}
	defer rows.Close()

	orders := []models.PurchaseOrder{}
	for rows.Next() {
		var order models.PurchaseOrder
		var productsRaw, locationRaw []byte
		if err := rows.Scan(
			&order.ID, &order.CustomerID, &order.CustomerName, &productsRaw,
			&order.OrderDate, &order.ExpectedDeliveryDate, &order.PaymentMethod,
			&order.SpecialInstructions, &order.BillingAddress, &order.ShippingAddress,
			&locationRaw,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan purchase order row"})
			return
		}

		order.Products = models.DecodeOrderProducts(productsRaw)
		order.Location = models.DecodeLocation(locationRaw)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating purchase order rows"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrder handles PUT /v1/purchase-orders/:id. Full replacement of
// every non-key column, re-encoding both blobs.
func (h *Handlers) UpdateOrder(c *gin.Context) {
	orderID := c.Param("id")

	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Products == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}

	productsJSON, locationJSON, err := input.encodedBlobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode order payload"})
		return
	}

	query := `
		UPDATE purchaseorderextra
		SET customerId = ?, customerName = ?, products = ?, orderDate = ?,
			expectedDeliveryDate = ?, paymentMethod = ?, specialInstructions = ?,
			billingAddress = ?, shippingAddress = ?, location = ?
		WHERE id = ?`

	result, err := h.DB.Exec(query,
		input.CustomerID, input.CustomerName, productsJSON, input.OrderDate,
		input.ExpectedDeliveryDate, input.PaymentMethod, input.SpecialInstructions,
		input.BillingAddress, input.ShippingAddress, locationJSON, orderID,
	)
	if err != nil {
		log.Printf("Error updating purchase order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
}

// DeleteOrder handles DELETE /v1/purchase-orders/:id.
func (h *Handlers) DeleteOrder(c *gin.Context) {
	orderID := c.Param("id")

	result, err := h.DB.Exec(`DELETE FROM purchaseorderextra WHERE id = ?`, orderID)
	if err != nil {
		log.Printf("Error deleting purchase order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting purchase order"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase order deleted successfully"})
}
