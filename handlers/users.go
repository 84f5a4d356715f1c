package handlers

import (
	"errors"
	"log"
	"net/http"

	"bistro-api/mapper"
	"bistro-api/models"
	"bistro-api/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ListUsers returns every account, newest first (owner only)
func ListUsers(c *gin.Context) {
	users, err := repo.Users(c.Request.Context())
	if err != nil {
		log.Printf("list users failed: %v", err)
		users = []models.User{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
	Phone    string          `json:"phone"`
}

// CreateUser lets the owner create staff and client accounts
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: client, owner, or livreur"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Active:       true,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	created, err := repo.CreateUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": created})
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// UpdateUser merges a partial update into an account (owner only)
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != nil && !models.ValidRole(models.UserRole(*req.Role)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: client, owner, or livreur"})
		return
	}

	patch := mapper.UserPatch{
		Name:   req.Name,
		Phone:  req.Phone,
		Role:   req.Role,
		Active: req.Active,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	updated, err := repo.UpdateUser(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": updated})
}
