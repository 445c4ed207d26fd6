package bootstrap

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/buildra-io/sitetrack/internal/infra/blob"
	"github.com/buildra-io/sitetrack/internal/infra/cache"
	"github.com/buildra-io/sitetrack/internal/infra/db"
	"github.com/buildra-io/sitetrack/internal/infra/logger"
	"github.com/buildra-io/sitetrack/internal/infra/queue"
	"github.com/buildra-io/sitetrack/internal/modules/handler"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/buildra-io/sitetrack/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Company{},
				&model.User{},
				&model.Project{},
				&model.ProjectItem{},
				&model.TimelineMilestone{},
				&model.Task{},
				&model.Document{},
				&model.AuditLog{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.AuditQueue,
			do.MustInvoke[*zap.Logger](i),
		)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ItemRepo, error) {
		return repo.NewItemRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MilestoneRepo, error) {
		return repo.NewMilestoneRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CompanyRepo, error) {
		return repo.NewCompanyRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DocumentRepo, error) {
		return repo.NewDocumentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AuditLogRepo, error) {
		return repo.NewAuditLogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuditService, error) {
		return service.NewAuditService(
			do.MustInvoke[repo.AuditLogRepo](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProgressService, error) {
		return service.NewProgressService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ItemService, error) {
		return service.NewItemService(
			do.MustInvoke[repo.ItemRepo](i),
			do.MustInvoke[service.ProgressService](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MilestoneService, error) {
		return service.NewMilestoneService(
			do.MustInvoke[repo.MilestoneRepo](i),
			do.MustInvoke[service.ProgressService](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DocumentService, error) {
		return service.NewDocumentService(
			do.MustInvoke[repo.DocumentRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CompanyService, error) {
		return service.NewCompanyService(
			do.MustInvoke[repo.CompanyRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReportService, error) {
		return service.NewReportService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ItemRepo](i),
			do.MustInvoke[repo.MilestoneRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DashboardService, error) {
		return service.NewDashboardService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.ProgressService](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ItemHandler, error) {
		return handler.NewItemHandler(do.MustInvoke[service.ItemService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MilestoneHandler, error) {
		return handler.NewMilestoneHandler(do.MustInvoke[service.MilestoneService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DocumentHandler, error) {
		return handler.NewDocumentHandler(do.MustInvoke[service.DocumentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CompanyHandler, error) {
		return handler.NewCompanyHandler(do.MustInvoke[service.CompanyService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AuditHandler, error) {
		return handler.NewAuditHandler(do.MustInvoke[service.AuditService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ReportHandler, error) {
		return handler.NewReportHandler(do.MustInvoke[service.ReportService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DashboardHandler, error) {
		return handler.NewDashboardHandler(do.MustInvoke[service.DashboardService](i)), nil
	})

	return inj
}
