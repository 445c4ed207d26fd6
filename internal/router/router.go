package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/buildra-io/sitetrack/docs"
	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/buildra-io/sitetrack/internal/middleware"
	"github.com/buildra-io/sitetrack/internal/modules/handler"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config           *config.Config
	DB               *gorm.DB
	Log              *zap.Logger
	AuthHandler      *handler.AuthHandler
	ProjectHandler   *handler.ProjectHandler
	ItemHandler      *handler.ItemHandler
	MilestoneHandler *handler.MilestoneHandler
	TaskHandler      *handler.TaskHandler
	DocumentHandler  *handler.DocumentHandler
	UserHandler      *handler.UserHandler
	CompanyHandler   *handler.CompanyHandler
	AuditHandler     *handler.AuditHandler
	ReportHandler    *handler.ReportHandler
	DashboardHandler *handler.DashboardHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.Metrics())

	// health + metrics
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// login is the only unauthenticated API route
	r.POST("/api/v1/auth/login", d.AuthHandler.Login)

	// admin or coordinator
	manage := middleware.RequireRole(model.RoleAdmin, model.RoleCoordinator)
	// any authenticated role, including contractors updating their own scope
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleCoordinator, model.RoleContractor)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.Auth(d.Config, d.DB))

		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		v1.GET("/dashboard", d.DashboardHandler.GetDashboard)

		users := v1.Group("/users")
		{
			users.GET("/me", d.UserHandler.Me)

			users.GET("", adminOnly, d.UserHandler.ListUsers)
			users.POST("", adminOnly, d.UserHandler.CreateUser)
			users.PUT("/:user_id", adminOnly, d.UserHandler.UpdateUser)
		}

		v1.GET("/audit-logs", adminOnly, d.AuditHandler.ListAuditLogs)

		company := v1.Group("/companies")
		{
			company.GET("", d.CompanyHandler.ListCompanies)
			company.POST("", manage, d.CompanyHandler.CreateCompany)
			company.PUT("/:company_id", manage, d.CompanyHandler.UpdateCompany)
			company.DELETE("/:company_id", manage, d.CompanyHandler.DeleteCompany)
		}

		project := v1.Group("/projects")
		{
			project.GET("", d.ProjectHandler.ListProjects)
			project.POST("", manage, d.ProjectHandler.CreateProject)
			project.GET("/:project_id", d.ProjectHandler.GetProject)
			project.PUT("/:project_id", manage, d.ProjectHandler.UpdateProject)
			project.DELETE("/:project_id", adminOnly, d.ProjectHandler.DeleteProject)
			project.PUT("/:project_id/progress", adminOnly, d.ProjectHandler.OverrideProgress)

			project.GET("/:project_id/report", d.ReportHandler.GetProjectReport)

			item := project.Group("/:project_id/items")
			{
				item.GET("", d.ItemHandler.ListItems)
				item.POST("", manage, d.ItemHandler.CreateItem)
				item.PUT("/:item_id", anyRole, d.ItemHandler.UpdateItem)
				item.DELETE("/:item_id", manage, d.ItemHandler.DeleteItem)
			}

			milestone := project.Group("/:project_id/milestones")
			{
				milestone.GET("", d.MilestoneHandler.ListMilestones)
				milestone.POST("", manage, d.MilestoneHandler.CreateMilestone)
				milestone.PUT("/:milestone_id", manage, d.MilestoneHandler.UpdateMilestone)
				milestone.DELETE("/:milestone_id", manage, d.MilestoneHandler.DeleteMilestone)
			}

			task := project.Group("/:project_id/tasks")
			{
				task.GET("", d.TaskHandler.GetBoard)
				task.POST("", anyRole, d.TaskHandler.CreateTask)
				task.PUT("/:task_id", anyRole, d.TaskHandler.UpdateTask)
				task.POST("/:task_id/move", anyRole, d.TaskHandler.MoveTask)
				task.DELETE("/:task_id", manage, d.TaskHandler.DeleteTask)
			}

			document := project.Group("/:project_id/documents")
			{
				document.GET("", d.DocumentHandler.ListDocuments)
				document.POST("", anyRole, d.DocumentHandler.UploadDocument)
				document.GET("/:document_id/url", d.DocumentHandler.GetDocumentURL)
				document.PUT("/:document_id/invoice-status", manage, d.DocumentHandler.SetInvoiceStatus)
				document.DELETE("/:document_id", manage, d.DocumentHandler.DeleteDocument)
			}
		}
	}
	return r
}
