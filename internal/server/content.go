package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	contentdomain "github.com/gulfbridge/portal/internal/content/domain"
)

func (s *Server) ListContent(col contentdomain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := s.contentSvc.List(c.Request.Context(), col)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func (s *Server) GetContent(col contentdomain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := s.contentSvc.GetByID(c.Request.Context(), col, c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

func (s *Server) GetContentBySlug(col contentdomain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := s.contentSvc.GetBySlug(c.Request.Context(), col, c.Param("slug"))
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

func (s *Server) CreateContent(col contentdomain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contentdomain.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
		record, err := s.contentSvc.Create(c.Request.Context(), col, req)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

func (s *Server) UpdateContent(col contentdomain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contentdomain.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
		record, err := s.contentSvc.Update(c.Request.Context(), col, c.Param("id"), req)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

func (s *Server) DeleteContent(col contentdomain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.contentSvc.Delete(c.Request.Context(), col, c.Param("id")); err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
