package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// User is the model for the 'user' table (operational accounts, as opposed
// to the administrators in 'adminlogin'). user_id is the caller-supplied
// business key.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	UserID   string `json:"user_id" db:"user_id"`
	Password string `json:"-" db:"password"`
	EmailID  string `json:"emailid" db:"emailid"`
	MobileNo string `json:"mobile_no" db:"mobile_no"`
	Role     string `json:"role" db:"role"`
	Status   string `json:"status" db:"status"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
