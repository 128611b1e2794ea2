package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nithin-dev/bizmate-golang/internal/database"
	"github.com/nithin-dev/bizmate-golang/internal/models"
)

// AddUserInput is the payload for creating an operational user. Role is
// the only optional column.
type AddUserInput struct {
	Name     string `json:"name" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
	EmailID  string `json:"emailid" binding:"required"`
	MobileNo string `json:"mobile_no" binding:"required"`
	Role     string `json:"role"`
	Status   string `json:"status" binding:"required"`
}

// AddUser handles POST /v1/users. The password is hashed before storage;
// the plaintext never touches the database.
func (h *Handlers) AddUser(c *gin.Context) {
	var input AddUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	query := `INSERT INTO user (name, user_id, password, emailid, mobile_no, role, status) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := h.DB.Exec(query,
		input.Name, input.UserID, password.Hash, input.EmailID, input.MobileNo, input.Role, input.Status)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "User ID already exists"})
			return
		}
		log.Printf("Error adding user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User added successfully"})
}

// GetUsers handles GET /v1/users. The password column is never selected.
func (h *Handlers) GetUsers(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, name, user_id, emailid, mobile_no, role, status FROM user`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users"})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.UserID, &u.EmailID, &u.MobileNo, &u.Role, &u.Status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan user row"})
			return
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating user rows"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// SearchUsers handles GET /v1/users/search?q=. Case-insensitive substring
// match over name and emailid; an empty query matches everything.
func (h *Handlers) SearchUsers(c *gin.Context) {
	keyword := "%" + c.Query("q") + "%"

	query := `
		SELECT id, name, user_id, emailid, mobile_no, role, status
		FROM user
		WHERE name LIKE ? OR emailid LIKE ?`

	rows, err := h.DB.Query(query, keyword, keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users"})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.UserID, &u.EmailID, &u.MobileNo, &u.Role, &u.Status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan user row"})
			return
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating user rows"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUserInput carries the non-key columns replaced by an update. The
// password is deliberately absent: changing it means recreating the user.
type UpdateUserInput struct {
	Name     string `json:"name" binding:"required"`
	EmailID  string `json:"emailid" binding:"required"`
	MobileNo string `json:"mobile_no" binding:"required"`
	Role     string `json:"role"`
	Status   string `json:"status" binding:"required"`
}

// UpdateUser handles PUT /v1/users/:user_id.
func (h *Handlers) UpdateUser(c *gin.Context) {
	userID := c.Param("user_id")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	query := `
		UPDATE user
		SET name = ?, emailid = ?, mobile_no = ?, role = ?, status = ?
		WHERE user_id = ?`

	result, err := h.DB.Exec(query, input.Name, input.EmailID, input.MobileNo, input.Role, input.Status, userID)
	if err != nil {
		log.Printf("Error updating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// DeleteUser handles DELETE /v1/users/:user_id.
func (h *Handlers) DeleteUser(c *gin.Context) {
	userID := c.Param("user_id")

	result, err := h.DB.Exec(`DELETE FROM user WHERE user_id = ?`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
