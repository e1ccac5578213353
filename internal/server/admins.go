package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
)

type CreateAdminRequest struct {
	Email       string                    `json:"email"`
	Password    string                    `json:"password"`
	Role        admindomain.Role          `json:"role"`
	Permissions admindomain.PermissionMap `json:"permissions"`
}

type UpdateAdminRequest struct {
	Role        *admindomain.Role         `json:"role"`
	Permissions admindomain.PermissionMap `json:"permissions"`
	Password    string                    `json:"password"`
}

func (s *Server) ListAdmins(c *gin.Context) {
	admins, err := s.adminSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (s *Server) GetAdmin(c *gin.Context) {
	adm, err := s.adminSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, adm)
}

func (s *Server) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	adm, err := s.adminSvc.Create(c.Request.Context(), admindomain.CreateAdminRequest{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adm)
}

func (s *Server) UpdateAdmin(c *gin.Context) {
	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	adm, err := s.adminSvc.Update(c.Request.Context(), admindomain.UpdateAdminRequest{
		ID:          c.Param("id"),
		Role:        req.Role,
		Permissions: req.Permissions,
		Password:    req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, adm)
}

func (s *Server) DeleteAdmin(c *gin.Context) {
	actor, ok := currentAdmin(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	err := s.adminSvc.Delete(c.Request.Context(), admindomain.DeleteAdminRequest{
		ID:      c.Param("id"),
		ActorID: actor.ID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
