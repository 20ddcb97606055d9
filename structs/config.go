package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Checkout  *CheckoutConfig
	Payment   *PaymentConfig
	Storage   *StorageConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // GiftingStudio
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration

	ProductTTL time.Duration // catalog cache entries
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	OTPExpiry          time.Duration
	OTPMaxAttempts     int
	CookieDomain       string
}

type EmailConfig struct {
	ApiKey       string
	From         string
	SupportEmail string
}

// CheckoutConfig carries the storefront checkout knobs. ShippingFee is a flat
// per-order amount added on top of the line subtotal.
type CheckoutConfig struct {
	ShippingFee   int64
	OrderLogURL   string // best-effort order logging relay, empty disables it
	OrderLogToken string
}

type PaymentConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string // provider API base, e.g. https://api.razorpay.com/v1
	Currency  string
}

type StorageConfig struct {
	Bucket   string
	Region   string
	Key      string
	Secret   string
	Endpoint string // leave empty for real AWS
	BaseURL  string // public URL prefix for uploaded objects
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int
	GeneralWindow   time.Duration
	AuthLimit       int
	AuthWindow      time.Duration
	AdminLimit      int
	AdminWindow     time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}
