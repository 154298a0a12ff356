// Package server is the in-memory task collection backend the client talks to.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Makepad-fr/tasks/internal/config"
)

type Server struct {
	cfg    config.ServerConfig
	store  *Store
	router *gin.Engine
}

func New(cfg config.ServerConfig, store *Store) *Server {
	return &Server{cfg: cfg, store: store, router: NewRouter(store)}
}

func (s *Server) Router() *gin.Engine { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         "0.0.0.0:" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func NewRouter(store *Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	h := &todoHandler{store: store}
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	api.GET("/todos", h.List)
	api.POST("/todos", h.Create)
	api.DELETE("/todos/:id", h.Delete)
	return r
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "backend"})
}

type todoHandler struct {
	store *Store
}

type createTodoRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *todoHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *todoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.store.Create(req.Title))
}

// Delete answers 200 whether or not the id existed.
func (h *todoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if !h.store.Delete(id) {
		log.Printf("delete todo %d: not found", id)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}
