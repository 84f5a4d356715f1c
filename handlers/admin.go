package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"bistro-api/mapper"
	"bistro-api/models"
	"bistro-api/repository"

	"github.com/gin-gonic/gin"
)

var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

const maxImageSize = 5 << 20 // 5MB

// saveUpload validates and stores an uploaded menu image, returning its
// asset path.
func saveUpload(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", true // no image supplied
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image size exceeds 5MB limit"})
		return "", false
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type, only JPG/JPEG/PNG/WEBP allowed"})
		return "", false
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return "", false
	}
	defer src.Close()
	path, err := assets.Save("menu", file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return "", false
	}
	return path, true
}

// removeAsset deletes a replaced or orphaned asset. Failures are logged and
// never block the record mutation.
func removeAsset(path *string) {
	if path == nil {
		return
	}
	if err := assets.Remove(*path); err != nil {
		log.Printf("remove asset %s failed: %v", *path, err)
	}
}

// AddMenuItem creates a menu item from a multipart form, image optional
// (owner only)
func AddMenuItem(c *gin.Context) {
	price := c.PostForm("price")
	if _, err := strconv.ParseFloat(price, 64); err != nil || price == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing price"})
		return
	}
	name := c.PostForm("name")
	categoryID := c.PostForm("categoryId")
	if name == "" || categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and categoryId are required"})
		return
	}
	if _, err := repo.Category(c.Request.Context(), categoryID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	item := models.MenuItem{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       mapper.Money(price),
		DeliveryFee: mapper.Money(c.PostForm("deliveryFee")),
		CategoryID:  categoryID,
		Available:   c.DefaultPostForm("available", "true") != "false",
		Popular:     c.PostForm("popular") == "true",
	}

	imagePath, ok := saveUpload(c)
	if !ok {
		return
	}
	if imagePath != "" {
		item.ImageURL = &imagePath
	}

	created, err := repo.CreateMenuItem(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": created})
}

// UpdateMenuItem merges a partial JSON update into a menu item (owner only)
func UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var patch mapper.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := repo.UpdateMenuItem(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": updated})
}

// ReplaceMenuItemImage uploads a new image for a menu item and removes the
// previous asset (owner only)
func ReplaceMenuItemImage(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	existing, err := repo.MenuItem(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	imagePath, ok := saveUpload(c)
	if !ok {
		return
	}
	if imagePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	updated, err := repo.UpdateMenuItem(ctx, id, mapper.MenuItemPatch{ImageURL: &imagePath})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	removeAsset(existing.ImageURL)
	c.JSON(http.StatusOK, gin.H{"message": "Image replaced", "item": updated})
}

// DeleteMenuItem removes a menu item and its image asset (owner only)
func DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	existing, err := repo.MenuItem(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := repo.DeleteMenuItem(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	removeAsset(existing.ImageURL)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "id": id})
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// CreateCategory adds a menu category (owner only)
func CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.Category{Name: req.Name, Order: req.Order}
	if req.Description != "" {
		category.Description = &req.Description
	}
	created, err := repo.CreateCategory(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": created})
}

// UpdateCategory merges a partial update into a category (owner only)
func UpdateCategory(c *gin.Context) {
	var patch mapper.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := repo.UpdateCategory(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": updated})
}

// ListReservations returns all reservations, newest first (owner only)
func ListReservations(c *gin.Context) {
	reservations, err := repo.Reservations(c.Request.Context())
	if err != nil {
		log.Printf("list reservations failed: %v", err)
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        len(reservations),
		"reservations": reservations,
	})
}
