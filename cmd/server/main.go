package main

//	@title			SiteTrack API
//	@version		1.0
//	@description	Restaurant fit-out project tracking API.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT bearer token from /auth/login (e.g., "Bearer eyJ...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buildra-io/sitetrack/internal/bootstrap"
	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/buildra-io/sitetrack/internal/infra/queue"
	"github.com/buildra-io/sitetrack/internal/modules/handler"
	"github.com/buildra-io/sitetrack/internal/router"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		DB:               db,
		Log:              log,
		AuthHandler:      do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler:   do.MustInvoke[*handler.ProjectHandler](inj),
		ItemHandler:      do.MustInvoke[*handler.ItemHandler](inj),
		MilestoneHandler: do.MustInvoke[*handler.MilestoneHandler](inj),
		TaskHandler:      do.MustInvoke[*handler.TaskHandler](inj),
		DocumentHandler:  do.MustInvoke[*handler.DocumentHandler](inj),
		UserHandler:      do.MustInvoke[*handler.UserHandler](inj),
		CompanyHandler:   do.MustInvoke[*handler.CompanyHandler](inj),
		AuditHandler:     do.MustInvoke[*handler.AuditHandler](inj),
		ReportHandler:    do.MustInvoke[*handler.ReportHandler](inj),
		DashboardHandler: do.MustInvoke[*handler.DashboardHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	if pub, err := do.Invoke[*queue.Publisher](inj); err == nil {
		pub.Close()
	}
	log.Sugar().Info("server exited")
}
