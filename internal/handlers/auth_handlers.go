package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nithin-dev/bizmate-golang/internal/auth"
	"github.com/nithin-dev/bizmate-golang/internal/database"
	"github.com/nithin-dev/bizmate-golang/internal/models"
)

// SignupInput is the payload for admin registration.
type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /v1/signup (admin registration).
// The email is pre-checked explicitly so a repeat signup gets a clear
// conflict; the UNIQUE index still backstops the race.
func (h *Handlers) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required"})
		return
	}

	var existingID int64
	err := h.DB.QueryRow(`SELECT id FROM adminlogin WHERE email = ?`, input.Email).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	_, err = h.DB.Exec(`INSERT INTO adminlogin (name, email, password) VALUES (?, ?, ?)`,
		input.Name, input.Email, password.Hash)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		log.Printf("Error registering admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered"})
}

// LoginInput is the payload for admin login.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /v1/login (admin login by email).
// The same 401 message is returned for an unknown email and a wrong
// password, so the response never reveals whether the account exists.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	var admin models.Admin
	err := h.DB.QueryRow(`SELECT id, name, password FROM adminlogin WHERE email = ?`, input.Email).
		Scan(&admin.ID, &admin.Name, &admin.Password)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	password := models.Password{Hash: admin.Password}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"name":    admin.Name,
		"token":   token,
	})
}

// UserLoginInput is the payload for operational-user login.
type UserLoginInput struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLogin handles POST /v1/user-login, the same contract as Login but
// keyed by user_id against the 'user' table.
func (h *Handlers) UserLogin(c *gin.Context) {
	var input UserLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and password are required"})
		return
	}

	var user models.User
	err := h.DB.QueryRow(`SELECT id, name, password FROM user WHERE user_id = ?`, input.UserID).
		Scan(&user.ID, &user.Name, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	password := models.Password{Hash: user.Password}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"name":    user.Name,
		"token":   token,
	})
}
