package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/service"
)

// windowFromQuery reads the optional range/date query parameters.
// An absent or unknown range means the full order history.
func windowFromQuery(c *gin.Context) (service.TimeWindow, error) {
	switch c.Query("range") {
	case "today":
		return service.TimeWindow{Kind: service.WindowToday}, nil
	case "week":
		return service.TimeWindow{Kind: service.WindowWeek}, nil
	case "month":
		return service.TimeWindow{Kind: service.WindowMonth}, nil
	case "date":
		date, err := time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			return service.TimeWindow{}, err
		}
		return service.TimeWindow{Kind: service.WindowDate, Date: date}, nil
	default:
		return service.TimeWindow{Kind: service.WindowAll}, nil
	}
}

func (s *Server) listOrders(c *gin.Context) {
	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	orders, err := s.orders.OrdersWithin(c.Request.Context(), window)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) createOrder(c *gin.Context) {
	var order models.Order
	if err := c.BindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := s.orders.CreateOrder(c.Request.Context(), order)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": created})
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.orders.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type statusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := s.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (s *Server) salesReport(c *gin.Context) {
	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	summary, err := s.orders.Sales(c.Request.Context(), window)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) topItemsReport(c *gin.Context) {
	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	items, err := s.orders.TopItems(c.Request.Context(), window, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
