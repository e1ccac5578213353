package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gulfbridge/portal/internal/cbm"
)

func (s *Server) CalculateCBM(c *gin.Context) {
	var in cbm.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	result, err := cbm.Calculate(in)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
