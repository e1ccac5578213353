package server

import (
	"github.com/gin-gonic/gin"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
)

const contextAdminKey = "current_admin"

func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		adm, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextAdminKey, adm)
		c.Next()
	}
}

// currentAdmin returns the admin stored by AuthRequired. Routes reaching a
// handler without passing through AuthRequired have no admin; callers must
// treat the false return as unauthorized.
func currentAdmin(c *gin.Context) (*admindomain.Admin, bool) {
	value, ok := c.Get(contextAdminKey)
	if !ok {
		return nil, false
	}
	adm, ok := value.(*admindomain.Admin)
	return adm, ok && adm != nil
}

// RequirePermission gates a route on one cell of the permission grid.
func (s *Server) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adm, ok := currentAdmin(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if !adm.Permissions.Can(resource, action) {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireAnyPermission passes when at least one of the actions is granted
// on the resource. Used where one route covers several grid cells, like the
// shipment upsert which both creates and edits.
func (s *Server) RequireAnyPermission(resource string, actions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adm, ok := currentAdmin(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		for _, action := range actions {
			if adm.Permissions.Can(resource, action) {
				c.Next()
				return
			}
		}
		AbortWithError(c, ErrForbidden)
	}
}

// RateLimitForm throttles a public form per client IP before the handler
// runs. The limiter fails open, so a redis outage never blocks submissions.
func (s *Server) RateLimitForm(form string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.formLimiter.Allow(c.Request.Context(), form, c.ClientIP()) {
			AbortWithError(c, ErrRateLimited)
			return
		}
		c.Next()
	}
}
