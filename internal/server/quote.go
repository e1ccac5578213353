package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	quotedomain "github.com/gulfbridge/portal/internal/quote/domain"
)

func (s *Server) SubmitQuote(c *gin.Context) {
	var req quotedomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	q, err := s.quoteSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":        q.ID,
		"reference": q.Reference(),
		"status":    q.Status,
	})
}

func (s *Server) ListQuotes(c *gin.Context) {
	filter := quotedomain.ListFilter{
		Status: quotedomain.Status(c.Query("status")),
	}
	quotes, err := s.quoteSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (s *Server) GetQuote(c *gin.Context) {
	q, err := s.quoteSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (s *Server) UpdateQuote(c *gin.Context) {
	var req quotedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	q, err := s.quoteSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (s *Server) DeleteQuote(c *gin.Context) {
	if err := s.quoteSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) DownloadQuotePDF(c *gin.Context) {
	q, err := s.quoteSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, _, err := s.pdfProvider.GenerateQuotation(c.Request.Context(), q, c.Query("lang"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	content, err := io.ReadAll(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("Quotation-%s.pdf", q.Reference())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}
