package router

import (
	"janamat/internal/config"
	"janamat/internal/handlers"
	"janamat/internal/middleware"
	"janamat/internal/services"
	"janamat/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires services, handlers and routes around the injected store
// handle and cache. The returned engine is ready to Run.
func New(conn *gorm.DB, cache *utils.Cache, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// Sessions back both login state and the anonymous voter fingerprint.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("janamat_session", store))
	r.Use(middleware.LoadUser(conn, cfg.JWTSecret))
	r.Use(middleware.ResolveIdentity())

	voteService := services.NewVoteService(conn)
	leaderService := services.NewLeaderService(conn, voteService)
	agendaService := services.NewAgendaService(conn, voteService)
	leaderboardService := services.NewLeaderboardService(conn, voteService)
	commentService := services.NewCommentService(conn)

	leaderHandler := handlers.NewLeaderHandler(leaderService, agendaService, commentService, cache)
	agendaHandler := handlers.NewAgendaHandler(agendaService, commentService, cache)
	voteHandler := handlers.NewVoteHandler(voteService, cache)
	commentHandler := handlers.NewCommentHandler(commentService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, cache)
	searchHandler := handlers.NewSearchHandler(leaderService, agendaService)
	authHandler := handlers.NewAuthHandler(conn, cfg)
	adminHandler := handlers.NewAdminHandler(leaderService, agendaService, cache)

	api := r.Group("/api")
	{
		api.GET("/leaders", leaderHandler.List)
		api.GET("/leaders/:id", leaderHandler.Detail)
		api.GET("/leaders/:id/agendas", leaderHandler.ListAgendas)
		api.GET("/leaders/:id/comments", commentHandler.ListForLeader)
		api.POST("/leaders/:id/comments", commentHandler.CreateForLeader)
		api.POST("/leaders/:id/vote", voteHandler.VoteLeader)

		api.GET("/agendas", agendaHandler.List)
		api.GET("/agendas/:id", agendaHandler.Detail)
		api.GET("/agendas/:id/comments", commentHandler.ListForAgenda)
		api.POST("/agendas/:id/comments", commentHandler.CreateForAgenda)
		api.POST("/agendas/:id/vote", voteHandler.VoteAgenda)

		api.GET("/leaderboard", leaderboardHandler.Top)
		api.GET("/search", searchHandler.Search)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/leaders", adminHandler.CreateLeader)
		admin.POST("/agendas", adminHandler.CreateAgenda)
	}

	return r
}
