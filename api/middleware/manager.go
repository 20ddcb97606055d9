package middleware

import (
	"giftingstudio_server/services"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, cacheService *services.CacheService) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		cacheService: cacheService,
	}
}
