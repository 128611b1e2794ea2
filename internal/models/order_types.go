package models

// PurchaseOrder is the model for the 'purchaseorderextra' table. The
// Products list and Location are stored as JSON text columns; see
// order_payload.go for the encode/decode contract.
type PurchaseOrder struct {
	ID                   int64          `json:"id" db:"id"`
	CustomerID           string         `json:"customerId" db:"customerId"`
	CustomerName         string         `json:"customerName" db:"customerName"`
	Products             []OrderProduct `json:"products" db:"products"`
	OrderDate            string         `json:"orderDate" db:"orderDate"`
	ExpectedDeliveryDate string         `json:"expectedDeliveryDate" db:"expectedDeliveryDate"`
	PaymentMethod        string         `json:"paymentMethod" db:"paymentMethod"`
	SpecialInstructions  string         `json:"specialInstructions" db:"specialInstructions"`
	BillingAddress       string         `json:"billingAddress" db:"billingAddress"`
	ShippingAddress      string         `json:"shippingAddress" db:"shippingAddress"`
	Location             Location       `json:"location" db:"location"`
}

// OrderProduct is one line of an order's product list. Quantity is
// free-form text: it is not validated as numeric at write time, and the
// same product name may appear on several lines without being merged.
type OrderProduct struct {
	ProductName string         `json:"productName"`
	Quantity    StringOrNumber `json:"quantity"`
}

// Location is the geotag captured when an order is placed.
type Location struct {
	Latitude  StringOrNumber `json:"latitude"`
	Longitude StringOrNumber `json:"longitude"`
}
