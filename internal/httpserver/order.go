package httpserver

import (
	"net/http"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	ordersvc "github.com/Bhargavikambam/GreenBag/internal/service/order"
	"github.com/gin-gonic/gin"
)

type paymentConfirmRequest struct {
	Outcome       string `json:"outcome" binding:"required"`
	TransactionID string `json:"transactionId"`
}

func checkoutHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		var req ordersvc.CheckoutInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
			return
		}
		order, payment, err := svc.Checkout(c.Request.Context(), user.ID, currentSession(c), req)
		if err != nil {
			writeError(c, err)
			return
		}
		resp := gin.H{"order": order}
		if payment != nil {
			resp["payment"] = payment
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func ordersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		orders, err := svc.ListForUser(c.Request.Context(), user.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func orderDetailHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		order, err := svc.GetForUser(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func paymentGetHandler(svc paymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		payment, err := svc.Get(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

func paymentConfirmHandler(svc paymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		var req paymentConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "outcome required"})
			return
		}
		payment, err := svc.Confirm(c.Request.Context(), user.ID, c.Param("id"), req.Outcome, req.TransactionID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

func paymentRetryHandler(svc paymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		payment, err := svc.Retry(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, payment)
	}
}
