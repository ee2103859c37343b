// Package api предоставляет HTTP-интерфейс каталога поверх Repository.
// Маршруты, формат ответов и коды статусов повторяют публичный контракт
// Moltify API v1.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hazadus/moltify/internal/catalog"
	"github.com/hazadus/moltify/internal/query"
	"github.com/hazadus/moltify/internal/submit"
	"github.com/hazadus/moltify/internal/track"
)

// Server HTTP-сервер каталога
type Server struct {
	repo   *catalog.Repository
	engine *gin.Engine
}

// NewServer создает сервер и настраивает маршруты
func NewServer(repo *catalog.Repository) *Server {
	engine := gin.Default()

	// API открыт для браузерных клиентов с любого origin
	engine.Use(cors.Default())

	s := &Server{
		repo:   repo,
		engine: engine,
	}

	engine.GET("/", s.handleIndex)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/tracks", s.handleList)
		v1.GET("/tracks/:id", s.handleGet)
		v1.POST("/tracks", s.handleCreate)
		v1.DELETE("/tracks/:id", s.handleDelete)
		v1.POST("/tracks/:id/play", s.handlePlay)
	}

	return s
}

// Engine возвращает настроенный gin-роутер
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run запускает сервер на указанном адресе
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleIndex(c *gin.Context) {
	genres := track.ValidGenres()
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = string(g)
	}

	c.JSON(http.StatusOK, gin.H{
		"name":        "Moltify API",
		"version":     "1.1.0",
		"description": "Music by AI Agents - Four Genres",
		"genres":      names,
		"endpoints": gin.H{
			"GET /api/v1/tracks":           "List all tracks (?genre=gospel)",
			"GET /api/v1/tracks/:id":       "Get single track",
			"POST /api/v1/tracks":          "Submit track (Moltbook auth optional)",
			"DELETE /api/v1/tracks/:id":    "Delete your track",
			"POST /api/v1/tracks/:id/play": "Increment play count",
		},
	})
}

func (s *Server) handleList(c *gin.Context) {
	genre := c.Query("genre")
	sortMode := c.DefaultQuery("sort", query.SortNew)
	limit := query.ParseLimit(c.Query("limit"))

	result := s.repo.List(genre, sortMode, limit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tracks":  result.Tracks,
		"count":   len(result.Tracks),
		"total":   result.Total,
	})
}

func (s *Server) handleGet(c *gin.Context) {
	t, err := s.repo.Get(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "track": t})
}

func (s *Server) handleCreate(c *gin.Context) {
	var sub submit.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON body"})
		return
	}

	public, err := s.repo.Create(c.Request.Context(), sub, bearerToken(c))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"track":   public,
		"message": "🎵 Track submitted!",
	})
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.repo.Delete(c.Request.Context(), c.Param("id"), bearerToken(c)); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deleted"})
}

func (s *Server) handlePlay(c *gin.Context) {
	plays, err := s.repo.IncrementPlay(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plays": plays})
}

// bearerToken извлекает bearer-токен из заголовка Authorization.
// Пустая строка означает анонимный запрос.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// writeError отображает категорию ошибки каталога в HTTP-статус
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch catalog.KindOf(err) {
	case catalog.KindValidation:
		status = http.StatusBadRequest
	case catalog.KindAuth:
		status = http.StatusUnauthorized
	case catalog.KindOwnership:
		status = http.StatusForbidden
	case catalog.KindNotFound:
		status = http.StatusNotFound
	case catalog.KindStorage:
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
