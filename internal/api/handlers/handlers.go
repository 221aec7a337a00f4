package handlers

import (
	"scamsignals/internal/domain/services"
	"scamsignals/internal/infrastructure/cache"
	"scamsignals/internal/infrastructure/database/repository"
	"scamsignals/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health  *HealthHandler
	Analyze *AnalyzeHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Analysis  *services.AnalysisService
	PhishList *services.PhishListCache
	Cache     *cache.RedisCache
	Repos     *repository.Repositories
	Logger    *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Cache, deps.Repos, deps.PhishList, deps.Logger),
		Analyze: NewAnalyzeHandler(deps.Analysis, deps.Logger),
	}
}
