package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"golf-arbitri/backend/config"
	"golf-arbitri/backend/internal/api/handler"
	"golf-arbitri/backend/internal/api/middleware"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/pkg/jwt"
	"golf-arbitri/backend/pkg/redis"
)

// Setup builds the Gin engine with every route wired.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	anyAdmin := middleware.RoleAuth(model.UserTypeAdmin, model.UserTypeNationalAdmin, model.UserTypeSuperAdmin)
	nationalAdmin := middleware.RoleAuth(model.UserTypeNationalAdmin, model.UserTypeSuperAdmin)
	refereeOnly := middleware.RoleAuth(model.UserTypeReferee)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (unauthenticated)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// users
			users := authorized.Group("/users")
			{
				users.GET("/me", h.User.GetCurrentUser)
				users.GET("", anyAdmin, h.User.ListUsers)
				users.GET("/:id", anyAdmin, h.User.GetUser)
				users.POST("", nationalAdmin, h.User.CreateUser)
				users.PUT("/:id", nationalAdmin, h.User.UpdateUser)
			}

			// zones
			zones := authorized.Group("/zones")
			{
				zones.GET("", h.Zone.ListZones)
				zones.GET("/:id", h.Zone.GetZone)
				zones.POST("", nationalAdmin, h.Zone.CreateZone)
				zones.PUT("/:id", nationalAdmin, h.Zone.UpdateZone)
			}

			// clubs
			clubs := authorized.Group("/clubs")
			{
				clubs.GET("", h.Club.ListClubs)
				clubs.GET("/:id", h.Club.GetClub)
				clubs.POST("", anyAdmin, h.Club.CreateClub)
				clubs.PUT("/:id", anyAdmin, h.Club.UpdateClub)
				clubs.DELETE("/:id", nationalAdmin, h.Club.DeleteClub)
			}

			// tournament types
			tournamentTypes := authorized.Group("/tournament-types")
			{
				tournamentTypes.GET("", h.Tournament.ListTournamentTypes)
				tournamentTypes.POST("", nationalAdmin, h.Tournament.CreateTournamentType)
				tournamentTypes.PUT("/:id", nationalAdmin, h.Tournament.UpdateTournamentType)
			}

			// tournaments
			tournaments := authorized.Group("/tournaments")
			{
				tournaments.GET("", h.Tournament.ListTournaments)
				tournaments.GET("/:id", h.Tournament.GetTournament)
				tournaments.POST("", anyAdmin, h.Tournament.CreateTournament)
				tournaments.PUT("/:id", anyAdmin, h.Tournament.UpdateTournament)
				tournaments.PUT("/:id/status", anyAdmin, h.Tournament.UpdateTournamentStatus)
				tournaments.DELETE("/:id", nationalAdmin, h.Tournament.DeleteTournament)

				// assignment workflow per tournament
				tournaments.GET("/:id/pools", anyAdmin, h.Assignment.GetPools)
				tournaments.GET("/:id/assignments", anyAdmin, h.Assignment.ListByTournament)
				tournaments.POST("/:id/assignments", anyAdmin, h.Assignment.Assign)
				tournaments.POST("/:id/convocation", anyAdmin, h.Notification.SendConvocation)
			}

			// availabilities (referee self-service)
			availabilities := authorized.Group("/availabilities")
			{
				availabilities.GET("/me", refereeOnly, h.Availability.ListMine)
				availabilities.POST("", refereeOnly, h.Availability.Declare)
				availabilities.PUT("/batch", refereeOnly, h.Availability.SaveBatch)
				availabilities.DELETE("/:id", refereeOnly, h.Availability.Withdraw)
			}

			// assignments
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("/me", refereeOnly, h.Assignment.ListMine)
				assignments.PUT("/:id/confirm", h.Assignment.Confirm) // referee or admin
				assignments.DELETE("/:id", anyAdmin, h.Assignment.Remove)
			}

			// notifications
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", anyAdmin, h.Notification.List)
			}

			// career archival
			career := authorized.Group("/career")
			{
				career.POST("/archive", nationalAdmin, h.Career.ArchiveYear)
				career.GET("/:userID", h.Career.GetHistory) // referee self or admin (service enforces)
			}

			// exports and calendar feeds
			authorized.GET("/export/assignments", anyAdmin, h.Export.ExportAssignments)
			authorized.GET("/calendar/me.ics", refereeOnly, h.Calendar.MyFeed)
		}
	}

	return r
}
