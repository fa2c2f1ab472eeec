package server

import (
	"net/http"
	"time"

	"npc-arena/internal/engine"
	"npc-arena/internal/network"
	"npc-arena/internal/version"
	"npc-arena/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server - HTTP поверхность только для чтения: ростер, версия и лента боёв.
// Популяцию не меняет.
type Server struct {
	Game *engine.Game
	Hub  *network.Broadcaster
	Addr string
}

func New(game *engine.Game, hub *network.Broadcaster, addr string) *Server {
	return &Server{
		Game: game,
		Hub:  hub,
		Addr: addr,
	}
}

// Router собирает маршруты. Отдельно от Run, чтобы тестировать через httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), enableCORS())

	r.GET("/health", s.handleHealth)
	r.GET("/version", s.handleVersion)
	r.GET("/npcs", s.handleRoster)
	r.GET("/feed", s.handleFeed)
	return r
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	logger.Log.Infof("Arena feed running on %s", s.Addr)
	return s.Router().Run(s.Addr)
}

func enableCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Разрешаем запросы с фронтенда
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	}
}

// requestLogger пишет каждый запрос в общий logrus
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Log.WithFields(logrus.Fields{
			"component": "http",
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
		}).Debug("Request served.")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, version.Info())
}

// /npcs - снимок популяции
func (s *Server) handleRoster(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": s.Game.Count(),
		"npcs":  s.Game.Roster(),
	})
}

// handleFeed обрабатывает подключение зрителя по WebSocket
func (s *Server) handleFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("Upgrade error")
		return
	}

	client := NewClient(s.Hub, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}
