package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadapter "svw.info/sudokusolve/internal/adapters/http"
	"svw.info/sudokusolve/internal/infrastructure/storage"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("SUDOKU_ADDR", ":8080"), "listen address")
	persist := flag.String("persist-path", envOr("SUDOKU_DATA_DIR", "./data"), "save directory")
	levelStr := flag.String("log-level", envOr("SUDOKU_LOG_LEVEL", "info"), "debug|info|warn|error")
	flag.Parse()

	lvl := zerolog.InfoLevel
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(lvl).
		With().Timestamp().Logger()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(
		solver.NewBacktracking(),
		validator.New(),
		storage.NewFS(*persist),
	)
	h := httpadapter.New(uc)

	e := gin.New()
	e.Use(gin.Recovery(), requestLogger())
	h.Register(e)

	log.Info().Str("addr", *addr).Str("persist", *persist).Msg("listening")
	if err := e.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
