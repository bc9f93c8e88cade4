package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/llm/gemini"
	"resume-optimizer/internal/llm/openai"
	"resume-optimizer/internal/optimize"
	"resume-optimizer/internal/rewrite"
	"resume-optimizer/internal/shared/config"
	"resume-optimizer/internal/shared/server/middleware"
	"resume-optimizer/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	client, err := newLLMClient(cfg)
	if err != nil {
		return nil, err
	}
	svc := optimize.NewService(rewrite.Requester{LLM: client})
	handler := optimize.NewHandler(svc, cfg.MaxUploadBytes)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"message": "Resume optimizer API",
			"docs":    "/docs",
			"api":     "/api/optimize",
		})
	})
	r.GET("/api/v1/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	handler.RegisterRoutes(api)

	return r, nil
}

func newLLMClient(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return gemini.NewClient(cfg.LLMAPIKey, cfg.LLMModel)
	default:
		return openai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
