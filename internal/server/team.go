package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	teamdomain "github.com/gulfbridge/portal/internal/team/domain"
)

func (s *Server) OrgChart(c *gin.Context) {
	chart, err := s.teamSvc.OrgChart(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (s *Server) ListDepartments(c *gin.Context) {
	departments, err := s.teamSvc.ListDepartments(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (s *Server) CreateDepartment(c *gin.Context) {
	var req teamdomain.UpsertDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	department, err := s.teamSvc.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

func (s *Server) UpdateDepartment(c *gin.Context) {
	var req teamdomain.UpsertDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	department, err := s.teamSvc.UpdateDepartment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (s *Server) DeleteDepartment(c *gin.Context) {
	if err := s.teamSvc.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListSections(c *gin.Context) {
	sections, err := s.teamSvc.ListSections(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (s *Server) CreateSection(c *gin.Context) {
	var req teamdomain.UpsertSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	section, err := s.teamSvc.CreateSection(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (s *Server) UpdateSection(c *gin.Context) {
	var req teamdomain.UpsertSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	section, err := s.teamSvc.UpdateSection(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (s *Server) DeleteSection(c *gin.Context) {
	if err := s.teamSvc.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListTitles(c *gin.Context) {
	titles, err := s.teamSvc.ListTitles(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, titles)
}

func (s *Server) CreateTitle(c *gin.Context) {
	var req teamdomain.UpsertTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	title, err := s.teamSvc.CreateTitle(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, title)
}

func (s *Server) UpdateTitle(c *gin.Context) {
	var req teamdomain.UpsertTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	title, err := s.teamSvc.UpdateTitle(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

func (s *Server) DeleteTitle(c *gin.Context) {
	if err := s.teamSvc.DeleteTitle(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListEmployees(c *gin.Context) {
	employees, err := s.teamSvc.ListEmployees(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (s *Server) CreateEmployee(c *gin.Context) {
	var req teamdomain.UpsertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	employee, err := s.teamSvc.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	var req teamdomain.UpsertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	employee, err := s.teamSvc.UpdateEmployee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (s *Server) DeleteEmployee(c *gin.Context) {
	if err := s.teamSvc.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
