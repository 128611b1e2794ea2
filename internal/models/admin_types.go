package models

// Admin is the model for the 'adminlogin' table. The hash never serializes.
type Admin struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}
