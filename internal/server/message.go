package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	messagedomain "github.com/gulfbridge/portal/internal/message/domain"
)

func (s *Server) SubmitMessage(c *gin.Context) {
	var req messagedomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	msg, err := s.messageSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) ListMessages(c *gin.Context) {
	messages, err := s.messageSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (s *Server) MarkMessageRead(c *gin.Context) {
	msg, err := s.messageSvc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (s *Server) DeleteMessage(c *gin.Context) {
	if err := s.messageSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
