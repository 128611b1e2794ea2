package models

import (
	"time"
)

// Product is the model for the 'productextra' table. productId is the
// caller-supplied business key. Price and the other descriptive columns are
// free-form text from the client form, stored as provided. Image holds the
// generated filename of an uploaded picture, nil when none was uploaded.
type Product struct {
	ID                int64     `json:"id" db:"id"`
	ProductID         string    `json:"productId" db:"productId"`
	ProductName       string    `json:"productName" db:"productName"`
	Description       string    `json:"description" db:"description"`
	UnitOfMeasurement string    `json:"unitOfMeasurement" db:"unitOfMeasurement"`
	Price             string    `json:"price" db:"price"`
	Currency          string    `json:"currency" db:"currency"`
	ProductCategory   string    `json:"productCategory" db:"productCategory"`
	ExpiryDate        string    `json:"expiryDate" db:"expiryDate"`
	BatchNumber       string    `json:"batchNumber" db:"batchNumber"`
	Status            string    `json:"status" db:"status"`
	DiscountAllowed   string    `json:"discountAllowed" db:"discountAllowed"`
	Image             *string   `json:"image,omitempty" db:"image"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// ProductSummary is the trimmed shape returned by the product search
// endpoint; the picker screen only needs a name and description.
type ProductSummary struct {
	ID          int64  `json:"id"`
	ProductName string `json:"productName"`
	Description string `json:"description"`
}
