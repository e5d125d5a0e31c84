package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/munchbox/internal/models"
)

func (s *Server) listMenu(c *gin.Context) {
	items, err := s.menu.Menu(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) addMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := s.menu.AddItem(c.Request.Context(), item)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateMenuItem(c *gin.Context) {
	var patch models.MenuItemPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := s.menu.UpdateItem(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteMenuItem(c *gin.Context) {
	if err := s.menu.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
