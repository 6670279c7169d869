package api

import (
	"log"
	"net/http"
	"time"

	"fitbot/internal/config"
	"fitbot/internal/plan"
	"fitbot/internal/repository"
	"fitbot/internal/service"

	"github.com/gin-gonic/gin"
)

// Server HTTP API для мини-приложения
type Server struct {
	config *config.Config
	repo   *repository.Repository
	svc    *service.DayService
	loc    *time.Location
}

// NewServer создаёт API-сервер
func NewServer(cfg *config.Config, repo *repository.Repository, store *plan.Store) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Предупреждение: таймзона %s не найдена, используется UTC", cfg.Timezone)
		loc = time.UTC
	}
	return &Server{
		config: cfg,
		repo:   repo,
		svc:    service.NewDayService(repo, store),
		loc:    loc,
	}
}

// Router собирает маршруты API
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authorized := router.Group("/api", s.authMiddleware())
	{
		authorized.GET("/today", s.handleToday)
		authorized.GET("/progress", s.handleProgressList)
		authorized.POST("/progress", s.handleProgressAdd)
		authorized.PUT("/progress/:id", s.handleProgressUpdate)
		authorized.DELETE("/progress/:id", s.handleProgressDelete)
	}

	return router
}

// Run запускает HTTP-сервер
func (s *Server) Run() error {
	return s.Router().Run(s.config.APIAddr)
}

const userIDKey = "user_id"

// authMiddleware проверяет initData из заголовка X-Tg-Init-Data
// и кладёт внутренний id пользователя в контекст
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader("X-Tg-Init-Data")
		if initData == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "нет initData"})
			return
		}

		user, err := VerifyInitData(initData, s.config.BotToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		name := user.FirstName
		if user.LastName != "" {
			name += " " + user.LastName
		}
		userID, err := s.repo.User.GetOrCreate(user.ID, name, s.config.Timezone, 0)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "ошибка регистрации"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// today возвращает сегодняшнюю дату в таймзоне сервера
func (s *Server) today() time.Time {
	now := time.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
