// Package server exposes the scoring service over HTTP. This is the
// surface an external UI calls; all scoring semantics live in the
// service package.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fraudscope/fraudscope/internal/assemble"
	"github.com/fraudscope/fraudscope/internal/csvio"
	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/scoring"
	"github.com/fraudscope/fraudscope/internal/service"
	"github.com/fraudscope/fraudscope/internal/validate"
)

// DefaultMaxBodyBytes bounds uploaded CSV size; batch memory is the
// practical limit, this is the deployment guard.
const DefaultMaxBodyBytes = 32 << 20

// Config holds the HTTP server settings.
type Config struct {
	Addr         string
	MaxBodyBytes int64
}

// Server wraps the gin router around a scoring service.
type Server struct {
	scorer *service.Scorer
	router *gin.Engine
	cfg    Config
}

// New builds the HTTP server and its routes.
func New(scorer *service.Scorer, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestID())

	s := &Server{scorer: scorer, router: router, cfg: cfg}

	router.GET("/healthz", s.health)
	api := router.Group("/api/v1")
	{
		api.POST("/score", s.scoreOne)
		api.POST("/score/batch", s.scoreBatch)
	}
	return s
}

// Run serves until the listener fails or the process exits.
func (s *Server) Run() error {
	slog.Info("Starting HTTP server", "addr", s.cfg.Addr)
	return s.router.Run(s.cfg.Addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestID tags every request with a UUID for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)

		start := time.Now()
		c.Next()
		slog.Info("Handled request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"features": s.scorer.Schema().Len(),
	})
}

// scoreOne scores a single JSON record: a mapping of the required
// feature names to scalar values.
func (s *Server) scoreOne(c *gin.Context) {
	var rec model.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := s.scorer.ScoreRecord(c.Request.Context(), rec)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// scoreBatch scores an uploaded CSV. With ?format=csv the augmented
// batch comes back as a CSV attachment; otherwise the response is a
// JSON preview of at most the first 50 rows plus the total count.
func (s *Server) scoreBatch(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing file upload",
			"details": err.Error(),
		})
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("Failed to close upload", "error", closeErr)
		}
	}()

	batch, err := csvio.ReadBatch(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid CSV upload",
			"details": err.Error(),
		})
		return
	}

	augmented, err := s.scorer.ScoreBatch(c.Request.Context(), batch)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		data, exportErr := assemble.ExportCSV(augmented)
		if exportErr != nil {
			s.writeError(c, exportErr)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="fraud_predictions.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
		return
	}

	preview := assemble.Preview(augmented)
	c.JSON(http.StatusOK, gin.H{
		"rows":    augmented.Len(),
		"columns": preview.Columns,
		"preview": preview.Rows,
	})
}

// writeError maps the error taxonomy to HTTP statuses: validation
// failures are the client's problem, scoring failures are ours.
func (s *Server) writeError(c *gin.Context, err error) {
	var mismatch *validate.SchemaMismatchError
	if errors.As(err, &mismatch) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "schema mismatch",
			"missing": mismatch.Missing,
		})
		return
	}

	var missing *validate.MissingFieldError
	if errors.As(err, &missing) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "missing fields",
			"missing": missing.Fields,
		})
		return
	}

	var failure *scoring.ScoringFailure
	if errors.As(err, &failure) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "scoring failed",
			"details": failure.Error(),
		})
		return
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "invalid input",
		"details": fmt.Sprintf("%v", err),
	})
}
