package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/nithin-dev/bizmate-golang/internal/database"
	"github.com/nithin-dev/bizmate-golang/internal/models"
)

// CreateProduct handles POST /v1/products. The product master screen
// submits a multipart form so an image can ride along with the fields;
// the image is optional and everything else is plain form text.
func (h *Handlers) CreateProduct(c *gin.Context) {
	productID := c.PostForm("productId")
	productName := c.PostForm("productName")
	description := c.PostForm("description")
	unitOfMeasurement := c.PostForm("unitOfMeasurement")
	price := c.PostForm("price")
	currency := c.PostForm("currency")
	productCategory := c.PostForm("productCategory")

	if productID == "" || productName == "" || description == "" ||
		unitOfMeasurement == "" || price == "" || currency == "" || productCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}

	var image *string
	if file, err := c.FormFile("image"); err == nil {
		filename, err := h.saveProductImage(c, file, productName)
		if err != nil {
			log.Printf("Error saving product image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		image = &filename
	}

	query := `
		INSERT INTO productextra (
			productId, productName, description, unitOfMeasurement, price,
			currency, productCategory, expiryDate, batchNumber, status,
			discountAllowed, image, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query,
		productID, productName, description, unitOfMeasurement, price,
		currency, productCategory, c.PostForm("expiryDate"), c.PostForm("batchNumber"),
		c.PostForm("status"), c.PostForm("discountAllowed"), image, time.Now(),
	)
	if err != nil {
		// The row is the source of truth for the image reference; without
		// it the saved file would be orphaned.
		if image != nil {
			os.Remove(filepath.Join(h.Cfg.UploadDir, *image))
		}
		if database.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product ID already exists"})
			return
		}
		log.Printf("Error storing product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store product details"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product details stored successfully"})
}

// saveProductImage writes an uploaded file under the configured upload
// directory with a generated collision-free name and returns the filename.
func (h *Handlers) saveProductImage(c *gin.Context, file *multipart.FileHeader, productName string) (string, error) {
	if err := os.MkdirAll(h.Cfg.UploadDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s-%s%s", slug.Make(productName), uuid.New().String(), ext)

	if err := c.SaveUploadedFile(file, filepath.Join(h.Cfg.UploadDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

const productColumns = `
	id, productId, productName, description, unitOfMeasurement, price,
	currency, productCategory, expiryDate, batchNumber, status,
	discountAllowed, image, created_at`

// GetProducts handles GET /v1/products. Every row, unfiltered.
func (h *Handlers) GetProducts(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT` + productColumns + ` FROM productextra`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		var image sql.NullString
		if err := rows.Scan(
			&p.ID, &p.ProductID, &p.ProductName, &p.Description, &p.UnitOfMeasurement,
			&p.Price, &p.Currency, &p.ProductCategory, &p.ExpiryDate, &p.BatchNumber,
			&p.Status, &p.DiscountAllowed, &image, &p.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row"})
			return
		}
		if image.Valid {
			p.Image = &image.String
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts handles GET /v1/products/search?q=. Case-insensitive
// substring match over name and description; an empty query matches
// everything. Returns the trimmed picker shape, not full rows.
func (h *Handlers) SearchProducts(c *gin.Context) {
	keyword := "%" + c.Query("q") + "%"

	query := `
		SELECT id, productName, description
		FROM productextra
		WHERE productName LIKE ? OR description LIKE ?`

	rows, err := h.DB.Query(query, keyword, keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	defer rows.Close()

	results := []models.ProductSummary{}
	for rows.Next() {
		var s models.ProductSummary
		if err := rows.Scan(&s.ID, &s.ProductName, &s.Description); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row"})
			return
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// ProductUpdateInput carries the non-key columns replaced by an update.
// The image column is only ever written at create time.
type ProductUpdateInput struct {
	ProductName       string `json:"productName" binding:"required"`
	Description       string `json:"description" binding:"required"`
	UnitOfMeasurement string `json:"unitOfMeasurement" binding:"required"`
	Price             string `json:"price" binding:"required"`
	Currency          string `json:"currency" binding:"required"`
	ProductCategory   string `json:"productCategory" binding:"required"`
	ExpiryDate        string `json:"expiryDate"`
	BatchNumber       string `json:"batchNumber"`
	Status            string `json:"status"`
	DiscountAllowed   string `json:"discountAllowed"`
}

// UpdateProduct handles PUT /v1/products/:productId.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	productID := c.Param("productId")

	var input ProductUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}

	query := `
		UPDATE productextra
		SET productName = ?, description = ?, unitOfMeasurement = ?, price = ?,
			currency = ?, productCategory = ?, expiryDate = ?, batchNumber = ?,
			status = ?, discountAllowed = ?
		WHERE productId = ?`

	result, err := h.DB.Exec(query,
		input.ProductName, input.Description, input.UnitOfMeasurement, input.Price,
		input.Currency, input.ProductCategory, input.ExpiryDate, input.BatchNumber,
		input.Status, input.DiscountAllowed, productID,
	)
	if err != nil {
		log.Printf("Error updating product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct handles DELETE /v1/products/:productId.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	productID := c.Param("productId")

	result, err := h.DB.Exec(`DELETE FROM productextra WHERE productId = ?`, productID)
	if err != nil {
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
