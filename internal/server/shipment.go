package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	shipmentdomain "github.com/gulfbridge/portal/internal/shipment/domain"
)

func (s *Server) TrackShipment(c *gin.Context) {
	sh, err := s.shipmentSvc.Track(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

func (s *Server) ListShipments(c *gin.Context) {
	shipments, err := s.shipmentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

func (s *Server) UpsertShipment(c *gin.Context) {
	var req shipmentdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	sh, err := s.shipmentSvc.Upsert(c.Request.Context(), c.Param("trackingId"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

func (s *Server) DeleteShipment(c *gin.Context) {
	if err := s.shipmentSvc.Delete(c.Request.Context(), c.Param("trackingId")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
