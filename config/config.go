package config

import (
	"giftingstudio_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "GiftingStudio_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "giftingstudio_db"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
				PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 30*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 100*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 2*time.Second),
				ProductTTL:      getEnvAsTimeDuration("CACHE_PRODUCT_TTL", 5*time.Minute),
			},
			Auth: &structs.AuthConfig{
				AccessTokenSecret:  getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				AccessTokenExpiry:  getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 15*time.Minute),
				RefreshTokenSecret: getEnvAsString("AUTH_REFRESH_TOKEN_SECRET", "default_refresh_secret"),
				RefreshTokenExpiry: getEnvAsTimeDuration("AUTH_REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
				OTPExpiry:          getEnvAsTimeDuration("AUTH_OTP_EXPIRY", 10*time.Minute),
				OTPMaxAttempts:     getEnvAsInt("AUTH_OTP_MAX_ATTEMPTS", 5),
				CookieDomain:       getEnvAsString("AUTH_COOKIE_DOMAIN", ""),
			},
			Email: &structs.EmailConfig{
				ApiKey:       getEnvAsString("RESEND_API_KEY", ""),
				From:         getEnvAsString("EMAIL_FROM", "The Gifting Studio <no-reply@giftingstudio.in>"),
				SupportEmail: getEnvAsString("EMAIL_SUPPORT", "hello@giftingstudio.in"),
			},
			Checkout: &structs.CheckoutConfig{
				ShippingFee:   getEnvAsInt64("CHECKOUT_SHIPPING_FEE", 99),
				OrderLogURL:   getEnvAsString("ORDER_LOG_URL", ""),
				OrderLogToken: getEnvAsString("ORDER_LOG_TOKEN", ""),
			},
			Payment: &structs.PaymentConfig{
				KeyID:     getEnvAsString("RAZORPAY_KEY_ID", ""),
				KeySecret: getEnvAsString("RAZORPAY_KEY_SECRET", ""),
				BaseURL:   getEnvAsString("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1"),
				Currency:  getEnvAsString("PAYMENT_CURRENCY", "INR"),
			},
			Storage: &structs.StorageConfig{
				Bucket:   getEnvAsString("S3_BUCKET", ""),
				Region:   getEnvAsString("S3_REGION", "ap-south-1"),
				Key:      getEnvAsString("S3_KEY", ""),
				Secret:   getEnvAsString("S3_SECRET", ""),
				Endpoint: getEnvAsString("S3_ENDPOINT", ""),
				BaseURL:  getEnvAsString("S3_URL", ""),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", true),
				GeneralLimit:    getEnvAsInt("RATE_LIMIT_GENERAL", 120),
				GeneralWindow:   getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
				AuthLimit:       getEnvAsInt("RATE_LIMIT_AUTH", 10),
				AuthWindow:      getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
				AdminLimit:      getEnvAsInt("RATE_LIMIT_ADMIN", 60),
				AdminWindow:     getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", time.Minute),
				ExpensiveLimit:  getEnvAsInt("RATE_LIMIT_EXPENSIVE", 60),
				ExpensiveWindow: getEnvAsTimeDuration("RATE_LIMIT_EXPENSIVE_WINDOW", time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
