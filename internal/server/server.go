// Package server exposes the analysis pipeline over HTTP. It hands back the
// record table and metric summaries as plain JSON; all rendering happens in
// the web client.
package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcflab/vcfstat/internal/analysis"
)

// Server handles analysis requests. Each request stages its upload in its
// own temporary file and builds its own table; nothing is shared or kept
// between requests.
type Server struct {
	analyzer *analysis.Analyzer
	logger   *zap.Logger
	tmpDir   string
}

// New creates a server around an analyzer. tmpDir is where uploads are
// staged; empty means the OS default.
func New(analyzer *analysis.Analyzer, logger *zap.Logger, tmpDir string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{analyzer: analyzer, logger: logger, tmpDir: tmpDir}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/api/analyze", s.handleAnalyze)

	return router
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.Router().Run(addr)
}

// handleAnalyze accepts a multipart VCF upload, stages it in a temporary
// file, runs one analysis pass, and returns the report. The staging file is
// removed on every path, success or failure.
func (s *Server) handleAnalyze(c *gin.Context) {
	upload, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	tmpPath, err := s.stageUpload(upload)
	if err != nil {
		s.logger.Error("staging upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not stage upload"})
		return
	}
	defer os.Remove(tmpPath)

	report, err := s.analyzer.Analyze(tmpPath, upload.Filename)
	if err != nil {
		if errors.Is(err, analysis.ErrNoVariants) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": analysis.ErrNoVariants.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// stageUpload copies the multipart file into a request-scoped temp file and
// returns its path. The caller owns removal.
func (s *Server) stageUpload(upload *multipart.FileHeader) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("vcfstat-%s%s", uuid.New().String(), filepath.Ext(upload.Filename))
	dst, err := os.Create(filepath.Join(s.tempDir(), name))
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write staging file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("close staging file: %w", err)
	}

	return dst.Name(), nil
}

func (s *Server) tempDir() string {
	if s.tmpDir != "" {
		return s.tmpDir
	}
	return os.TempDir()
}
