package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/gulfbridge/portal/internal/admin"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	"github.com/gulfbridge/portal/internal/auth"
	authdomain "github.com/gulfbridge/portal/internal/auth/domain"
	"github.com/gulfbridge/portal/internal/auth/session"
	"github.com/gulfbridge/portal/internal/career"
	careerdomain "github.com/gulfbridge/portal/internal/career/domain"
	"github.com/gulfbridge/portal/internal/config"
	"github.com/gulfbridge/portal/internal/content"
	contentdomain "github.com/gulfbridge/portal/internal/content/domain"
	"github.com/gulfbridge/portal/internal/logger"
	"github.com/gulfbridge/portal/internal/message"
	messagedomain "github.com/gulfbridge/portal/internal/message/domain"
	"github.com/gulfbridge/portal/internal/metrics"
	"github.com/gulfbridge/portal/internal/providers/pdf"
	"github.com/gulfbridge/portal/internal/providers/storage"
	"github.com/gulfbridge/portal/internal/quote"
	quotedomain "github.com/gulfbridge/portal/internal/quote/domain"
	"github.com/gulfbridge/portal/internal/ratelimit"
	"github.com/gulfbridge/portal/internal/settings"
	settingsdomain "github.com/gulfbridge/portal/internal/settings/domain"
	"github.com/gulfbridge/portal/internal/shipment"
	shipmentdomain "github.com/gulfbridge/portal/internal/shipment/domain"
	"github.com/gulfbridge/portal/internal/team"
	teamdomain "github.com/gulfbridge/portal/internal/team/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	admin.Module,
	content.Module,
	shipment.Module,
	message.Module,
	quote.Module,
	career.Module,
	team.Module,
	settings.Module,
	pdf.Module,
	storage.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))
	r.Use(metrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	sessions    *session.Manager
	genID       *snowflake.Node
	authsvc     authdomain.Service
	adminSvc    admindomain.Service
	contentSvc  contentdomain.Service
	shipmentSvc shipmentdomain.Service
	messageSvc  messagedomain.Service
	quoteSvc    quotedomain.Service
	careerSvc   careerdomain.Service
	teamSvc     teamdomain.Service
	settingsSvc settingsdomain.Service
	pdfProvider pdf.Provider
	uploader    storage.Uploader
	formLimiter *ratelimit.FormLimiter
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Sessions    *session.Manager
	GenID       *snowflake.Node
	Authsvc     authdomain.Service
	AdminSvc    admindomain.Service
	ContentSvc  contentdomain.Service
	ShipmentSvc shipmentdomain.Service
	MessageSvc  messagedomain.Service
	QuoteSvc    quotedomain.Service
	CareerSvc   careerdomain.Service
	TeamSvc     teamdomain.Service
	SettingsSvc settingsdomain.Service
	PDFProvider pdf.Provider
	Uploader    storage.Uploader
	FormLimiter *ratelimit.FormLimiter
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		sessions:    p.Sessions,
		genID:       p.GenID,
		authsvc:     p.Authsvc,
		adminSvc:    p.AdminSvc,
		contentSvc:  p.ContentSvc,
		shipmentSvc: p.ShipmentSvc,
		messageSvc:  p.MessageSvc,
		quoteSvc:    p.QuoteSvc,
		careerSvc:   p.CareerSvc,
		teamSvc:     p.TeamSvc,
		settingsSvc: p.SettingsSvc,
		pdfProvider: p.PDFProvider,
		uploader:    p.Uploader,
		formLimiter: p.FormLimiter,
	}

	svc.registerAuthRoutes()
	svc.registerPublicRoutes()
	svc.registerAdminRoutes()

	return svc
}
