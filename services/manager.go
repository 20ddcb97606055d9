package services

import (
	"giftingstudio_server/database"
	"giftingstudio_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	EmailService    *EmailService
	CacheService    *CacheService
	HealthService   *HealthService
	CatalogService  *CatalogService
	CartService     *CartService
	OrderService    *OrderService
	OrderLogService *OrderLogService
	PaymentService  *PaymentService
	ReviewService   *ReviewService
	StorageService  *StorageService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger, db)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	catalogService := NewCatalogService(logger, db, cacheService)
	cartService := NewCartService(logger, db)
	orderLogService := NewOrderLogService(logger, cfg)
	orderService := NewOrderService(logger, cfg, db, cartService, orderLogService, emailService)
	paymentService := NewPaymentService(logger, cfg)
	reviewService := NewReviewService(logger, db)

	storageService, err := NewStorageService(logger, cfg)
	if err != nil {
		// Image upload endpoints check for nil and reject with a clear
		// error; the rest of the API works without object storage.
		logger.Warn("Object storage unavailable", gecho.Field("error", err))
		storageService = nil
	}

	return &ServiceManager{
		AuthService:     authService,
		EmailService:    emailService,
		CacheService:    cacheService,
		HealthService:   healthService,
		CatalogService:  catalogService,
		CartService:     cartService,
		OrderService:    orderService,
		OrderLogService: orderLogService,
		PaymentService:  paymentService,
		ReviewService:   reviewService,
		StorageService:  storageService,
	}
}
