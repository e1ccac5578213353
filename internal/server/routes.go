package server

import (
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	contentdomain "github.com/gulfbridge/portal/internal/content/domain"
)

func (s *Server) registerAuthRoutes() {
	authGroup := s.engine.Group("/auth")
	authGroup.POST("/login", s.Login)
	authGroup.POST("/logout", s.Logout)
	authGroup.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerPublicRoutes() {
	api := s.engine.Group("/api")

	for _, col := range contentdomain.Collections() {
		col := col
		api.GET("/"+string(col), s.ListContent(col))
		if col.HasSlug() {
			api.GET("/"+string(col)+"/:slug", s.GetContentBySlug(col))
		} else {
			api.GET("/"+string(col)+"/:id", s.GetContent(col))
		}
	}

	api.GET("/track/:trackingId", s.TrackShipment)
	api.POST("/contact", s.RateLimitForm("contact"), s.SubmitMessage)
	api.POST("/quotes", s.RateLimitForm("quote"), s.SubmitQuote)
	api.GET("/jobs", s.ListOpenJobs)
	api.GET("/jobs/:id", s.GetJob)
	api.POST("/jobs/:id/applications", s.RateLimitForm("application"), s.ApplyToJob)
	api.POST("/media/cv", s.RateLimitForm("cv-upload"), s.UploadCV)
	api.POST("/cbm", s.CalculateCBM)
	api.GET("/social-links", s.ListSocialLinks)
	api.GET("/settings/:key", s.GetSetting)
	api.GET("/orgchart", s.OrgChart)
}

func (s *Server) registerAdminRoutes() {
	adm := s.engine.Group("/admin", s.AuthRequired())

	for _, col := range contentdomain.Collections() {
		col := col
		resource := string(col)
		group := adm.Group("/" + resource)
		group.GET("", s.RequirePermission(resource, admindomain.ActionView), s.ListContent(col))
		group.GET("/:id", s.RequirePermission(resource, admindomain.ActionView), s.GetContent(col))
		group.POST("", s.RequirePermission(resource, admindomain.ActionAdd), s.CreateContent(col))
		group.PUT("/:id", s.RequirePermission(resource, admindomain.ActionEdit), s.UpdateContent(col))
		group.DELETE("/:id", s.RequirePermission(resource, admindomain.ActionDelete), s.DeleteContent(col))
	}

	shipments := adm.Group("/shipments")
	shipments.GET("", s.RequirePermission(admindomain.ResourceShipments, admindomain.ActionView), s.ListShipments)
	shipments.PUT("/:trackingId", s.RequireAnyPermission(admindomain.ResourceShipments, admindomain.ActionAdd, admindomain.ActionEdit), s.UpsertShipment)
	shipments.DELETE("/:trackingId", s.RequirePermission(admindomain.ResourceShipments, admindomain.ActionDelete), s.DeleteShipment)

	messages := adm.Group("/messages")
	messages.GET("", s.RequirePermission(admindomain.ResourceMessages, admindomain.ActionView), s.ListMessages)
	messages.POST("/:id/read", s.RequirePermission(admindomain.ResourceMessages, admindomain.ActionMarkRead), s.MarkMessageRead)
	messages.DELETE("/:id", s.RequirePermission(admindomain.ResourceMessages, admindomain.ActionDelete), s.DeleteMessage)

	quotes := adm.Group("/quotes")
	quotes.GET("", s.ListQuotes)
	quotes.GET("/:id", s.GetQuote)
	quotes.GET("/:id/pdf", s.DownloadQuotePDF)
	quotes.PATCH("/:id", s.UpdateQuote)
	quotes.DELETE("/:id", s.DeleteQuote)

	jobs := adm.Group("/jobs")
	jobs.GET("", s.ListJobs)
	jobs.GET("/:id", s.GetJob)
	jobs.POST("", s.CreateJob)
	jobs.PUT("/:id", s.UpdateJob)
	jobs.DELETE("/:id", s.DeleteJob)

	applications := adm.Group("/applications")
	applications.GET("", s.ListApplications)
	applications.DELETE("/:id", s.DeleteApplication)

	teamGroup := adm.Group("/team")
	teamGroup.GET("/orgchart", s.OrgChart)
	teamGroup.GET("/departments", s.ListDepartments)
	teamGroup.POST("/departments", s.CreateDepartment)
	teamGroup.PUT("/departments/:id", s.UpdateDepartment)
	teamGroup.DELETE("/departments/:id", s.DeleteDepartment)
	teamGroup.GET("/sections", s.ListSections)
	teamGroup.POST("/sections", s.CreateSection)
	teamGroup.PUT("/sections/:id", s.UpdateSection)
	teamGroup.DELETE("/sections/:id", s.DeleteSection)
	teamGroup.GET("/titles", s.ListTitles)
	teamGroup.POST("/titles", s.CreateTitle)
	teamGroup.PUT("/titles/:id", s.UpdateTitle)
	teamGroup.DELETE("/titles/:id", s.DeleteTitle)
	teamGroup.GET("/employees", s.ListEmployees)
	teamGroup.POST("/employees", s.CreateEmployee)
	teamGroup.PUT("/employees/:id", s.UpdateEmployee)
	teamGroup.DELETE("/employees/:id", s.DeleteEmployee)

	admins := adm.Group("/admins")
	admins.GET("", s.RequirePermission(admindomain.ResourceAdmins, admindomain.ActionView), s.ListAdmins)
	admins.GET("/:id", s.RequirePermission(admindomain.ResourceAdmins, admindomain.ActionView), s.GetAdmin)
	admins.POST("", s.RequirePermission(admindomain.ResourceAdmins, admindomain.ActionAdd), s.CreateAdmin)
	admins.PUT("/:id", s.RequirePermission(admindomain.ResourceAdmins, admindomain.ActionEdit), s.UpdateAdmin)
	admins.DELETE("/:id", s.RequirePermission(admindomain.ResourceAdmins, admindomain.ActionDelete), s.DeleteAdmin)

	adm.POST("/media", s.UploadMedia)
	adm.POST("/media/batch", s.UploadMediaBatch)

	social := adm.Group("/social-links")
	social.GET("", s.ListSocialLinks)
	social.POST("", s.CreateSocialLink)
	social.PUT("/:id", s.UpdateSocialLink)
	social.DELETE("/:id", s.DeleteSocialLink)

	settingsGroup := adm.Group("/settings")
	settingsGroup.GET("/:key", s.GetSetting)
	settingsGroup.PUT("/:key", s.PutSetting)
	settingsGroup.DELETE("/:key", s.DeleteSetting)
}
