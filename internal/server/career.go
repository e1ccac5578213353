package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	careerdomain "github.com/gulfbridge/portal/internal/career/domain"
)

func (s *Server) ListOpenJobs(c *gin.Context) {
	jobs, err := s.careerSvc.ListOpenJobs(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) ListJobs(c *gin.Context) {
	jobs, err := s.careerSvc.ListJobs(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) GetJob(c *gin.Context) {
	job, err := s.careerSvc.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) CreateJob(c *gin.Context) {
	var req careerdomain.UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	job, err := s.careerSvc.CreateJob(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (s *Server) UpdateJob(c *gin.Context) {
	var req careerdomain.UpsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	job, err := s.careerSvc.UpdateJob(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) DeleteJob(c *gin.Context) {
	if err := s.careerSvc.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ApplyToJob(c *gin.Context) {
	var req careerdomain.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	app, err := s.careerSvc.Apply(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (s *Server) ListApplications(c *gin.Context) {
	apps, err := s.careerSvc.ListApplications(c.Request.Context(), c.Query("jobId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (s *Server) DeleteApplication(c *gin.Context) {
	if err := s.careerSvc.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
