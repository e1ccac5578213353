package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	settingsdomain "github.com/gulfbridge/portal/internal/settings/domain"
)

func (s *Server) ListSocialLinks(c *gin.Context) {
	links, err := s.settingsSvc.ListSocialLinks(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (s *Server) CreateSocialLink(c *gin.Context) {
	var req settingsdomain.UpsertSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	link, err := s.settingsSvc.CreateSocialLink(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (s *Server) UpdateSocialLink(c *gin.Context) {
	var req settingsdomain.UpsertSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	link, err := s.settingsSvc.UpdateSocialLink(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (s *Server) DeleteSocialLink(c *gin.Context) {
	if err := s.settingsSvc.DeleteSocialLink(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) GetSetting(c *gin.Context) {
	setting, err := s.settingsSvc.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// PutSetting stores the raw request body as the value; anything that is not
// valid JSON is rejected by the service.
func (s *Server) PutSetting(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	setting, err := s.settingsSvc.PutSetting(c.Request.Context(), c.Param("key"), json.RawMessage(body))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (s *Server) DeleteSetting(c *gin.Context) {
	if err := s.settingsSvc.DeleteSetting(c.Request.Context(), c.Param("key")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
