package httpserver

import (
	"net/http"
	"strings"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	"github.com/gin-gonic/gin"
)

func categoriesHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.Categories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// productsHandler serves the category pages (?category=Milk) and search
// (?q=apple). A category query takes precedence when both are supplied.
func productsHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			products []domain.Product
			err      error
		)
		switch {
		case strings.TrimSpace(c.Query("category")) != "":
			products, err = svc.ListByCategoryName(c.Request.Context(), c.Query("category"))
		case strings.TrimSpace(c.Query("q")) != "":
			products, err = svc.Search(c.Request.Context(), c.Query("q"))
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "category or q required"})
			return
		}
		if err != nil {
			writeError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func productDetailHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func favoritesHandler(svc favoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		products, err := svc.ListForUser(c.Request.Context(), user.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"favorites": products})
	}
}

func favoriteToggleHandler(svc favoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		added, err := svc.Toggle(c.Request.Context(), user.ID, c.Param("productId"))
		if err != nil {
			writeError(c, err)
			return
		}
		status := "removed"
		if added {
			status = "added"
		}
		c.JSON(http.StatusOK, gin.H{"status": status})
	}
}
