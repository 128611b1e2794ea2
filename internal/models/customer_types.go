package models

import (
	"time"
)

// Customer is the model for the 'customerextra' table. customerId is the
// caller-supplied business key; every other column is stored as provided.
type Customer struct {
	ID             int64     `json:"id" db:"id"`
	CustomerID     string    `json:"customerId" db:"customerId"`
	Name           string    `json:"name" db:"name"`
	Address        string    `json:"address" db:"address"`
	City           string    `json:"city" db:"city"`
	State          string    `json:"state" db:"state"`
	Country        string    `json:"country" db:"country"`
	PinNumber      string    `json:"pinNumber" db:"pinNumber"`
	MobileNumber   string    `json:"mobileNumber" db:"mobileNumber"`
	LandLineNumber string    `json:"landLineNumber" db:"landLineNumber"`
	EmailID        string    `json:"emailId" db:"emailId"`
	SocialHandle   string    `json:"socialHandle" db:"socialHandle"`
	ShipToAddress  string    `json:"shipToAddress" db:"shipToAddress"`
	BillingAddress string    `json:"billingAddress" db:"billingAddress"`
	BankDetails    string    `json:"bankDetails" db:"bankDetails"`
	PaymentTerms   string    `json:"paymentTerms" db:"paymentTerms"`
	GSTNumber      string    `json:"gstNumber" db:"gstNumber"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
