package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"giftingstudio_server/database"
	"giftingstudio_server/lib"
	"giftingstudio_server/structs"
	"giftingstudio_server/structs/tables"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
	emailService *EmailService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: NewCacheService(logger, cfg),
		emailService: NewEmailService(logger, cfg),
	}
}

// identityKey normalizes the email-or-phone pair into a single cache key.
// Email wins when both are given.
func identityKey(email, phone string) string {
	if email != "" {
		return strings.ToLower(strings.TrimSpace(email))
	}
	return strings.TrimSpace(phone)
}

// RequestCode generates a one-time passcode for the given identity, stores
// its hash with a TTL and delivers it. Phone-only identities are accepted
// as keys but delivery currently requires an email address.
func (as *AuthService) RequestCode(req *structs.RequestCodeRequest) error {
	identity := identityKey(req.Email, req.Phone)
	if identity == "" {
		return fmt.Errorf("email or phone is required")
	}

	code, err := lib.GenerateOTPCode()
	if err != nil {
		as.logger.Error("Failed to generate passcode", gecho.Field("error", err))
		return err
	}

	codeHash, err := as.HashCode(code, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash passcode", gecho.Field("error", err))
		return err
	}

	if err := as.cacheService.StoreVerificationCode(identity, codeHash); err != nil {
		as.logger.Error("Failed to store passcode", gecho.Field("error", err), gecho.Field("identity", identity))
		return err
	}

	if req.Email == "" {
		as.logger.Warn("Passcode requested for phone identity without email delivery", gecho.Field("identity", identity))
		return fmt.Errorf("sms delivery is not configured, use an email address")
	}

	expiryMinutes := as.cfg.Auth.OTPExpiry.Minutes()
	if err := as.emailService.SendLoginCodeEmail(req.Email, code, expiryMinutes); err != nil {
		return err
	}

	as.logger.Debug("Passcode issued", gecho.Field("identity", identity))
	return nil
}

// VerifyCode checks a submitted passcode against the stored hash and, on
// success, establishes the user row (created on first sign-in) and returns
// it with fresh tokens.
func (as *AuthService) VerifyCode(req *structs.VerifyCodeRequest) (*structs.AuthResponse, error) {
	startTime := time.Now()
	identity := identityKey(req.Email, req.Phone)
	if identity == "" {
		return nil, fmt.Errorf("email or phone is required")
	}

	storedHash, err := as.cacheService.GetVerificationCode(identity)
	if err != nil {
		as.logger.Error("Failed to read stored passcode", gecho.Field("error", err), gecho.Field("identity", identity))
		return nil, err
	}
	if storedHash == "" {
		return nil, lib.ErrCodeExpired
	}

	attempts, err := as.cacheService.IncrementVerificationAttempts(identity)
	if err != nil {
		as.logger.Error("Failed to count verification attempt", gecho.Field("error", err), gecho.Field("identity", identity))
		return nil, err
	}
	if attempts > as.cfg.Auth.OTPMaxAttempts {
		as.logger.Warn("Too many passcode attempts", gecho.Field("identity", identity), gecho.Field("attempts", attempts))
		// Burn the code so further guessing is pointless
		if clearErr := as.cacheService.ClearVerificationCode(identity); clearErr != nil {
			as.logger.Warn("Failed to clear passcode after lockout", gecho.Field("error", clearErr))
		}
		return nil, lib.ErrTooManyTries
	}

	valid, err := as.VerifyCodeHash(req.Code, storedHash)
	if err != nil {
		as.logger.Error("Failed to verify passcode hash", gecho.Field("error", err), gecho.Field("identity", identity))
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid passcode attempt", gecho.Field("identity", identity), gecho.Field("attempts", attempts))
		return nil, lib.ErrInvalidCode
	}

	if err := as.cacheService.ClearVerificationCode(identity); err != nil {
		as.logger.Warn("Failed to clear verified passcode", gecho.Field("error", err), gecho.Field("identity", identity))
	}

	user, err := as.establishUser(req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	accessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate access token", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	refreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		as.logger.Error("Failed to generate refresh token", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	cacheErr := as.cacheService.SetUserInCache(user)
	if cacheErr != nil {
		as.logger.Warn("Failed to set user in cache after sign-in", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User signed in successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	return &structs.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// establishUser finds the user owning this identity or creates it on first
// sign-in, bumping last_login either way
func (as *AuthService) establishUser(email, phone string) (*tables.User, error) {
	ctx := context.Background()

	q := database.Query[tables.User](as.db)
	if email != "" {
		q = q.Where("email", strings.ToLower(strings.TrimSpace(email)))
	} else {
		q = q.Where("phone", strings.TrimSpace(phone))
	}

	user, err := q.First(ctx)
	if err != nil {
		as.logger.Error("Failed to look up user during sign-in", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	if user == nil {
		user = &tables.User{
			Email:     strings.ToLower(strings.TrimSpace(email)),
			Phone:     strings.TrimSpace(phone),
			Role:      tables.RoleShopper,
			CreatedAt: time.Now(),
			LastLogin: time.Now(),
		}
		user, err = database.Query[tables.User](as.db).Insert(ctx, user)
		if err != nil {
			mappedErr := lib.MapPgError(err)
			as.logger.Error("Failed to create user on first sign-in", gecho.Field("error", mappedErr))
			return nil, mappedErr
		}
		as.logger.Info("New shopper account created", gecho.Field("user_id", user.Id))
		return user, nil
	}

	_, err = database.Query[tables.User](as.db).
		Where("id", user.Id).
		Update(ctx, map[string]any{"last_login": time.Now()})
	if err != nil {
		as.logger.Warn("Failed to bump last_login", gecho.Field("error", err), gecho.Field("user_id", user.Id))
	}

	return user, nil
}

// HashCode hashes a plain-text passcode and returns the encoded string
func (as *AuthService) HashCode(code string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(code), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	// format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	params := fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
	encoded := fmt.Sprintf("$argon2id$v=19$%s$%s$%s", params, b64Salt, b64Hash)
	return encoded, nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyCodeHash verifies a plain-text passcode against a stored hash
func (as *AuthService) VerifyCodeHash(code, hashedCode string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(hashedCode)
	if err != nil {
		return false, err
	}

	// Hash the input code with the same parameters
	hash := argon2.IDKey([]byte(code), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)

	return lib.SecureCompare(hash, parts.Hash), nil
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	secret := as.cfg.Auth.AccessTokenSecret

	now := time.Now()
	exp := as.GetAccessTokenExpiration()

	claims := &structs.AuthClaims{
		Sub:   user.Id,
		Email: user.Email,
		Role:  user.Role,
		Iat:   now,
		Exp:   exp,
		Jti:   uuid.New(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Sub.String(),
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   claims.Iat.Unix(),
		"exp":   claims.Exp.Unix(),
		"jti":   claims.Jti.String(),
	})
	return token.SignedString([]byte(secret))
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

// GenerateRefreshToken generates a JWT refresh token for the given user
func (as *AuthService) GenerateRefreshToken(user *tables.User) (string, error) {
	secret := as.cfg.Auth.RefreshTokenSecret

	now := time.Now()
	exp := as.GetRefreshTokenExpiration()

	claims := &structs.AuthClaims{
		Sub:   user.Id,
		Email: user.Email,
		Role:  user.Role,
		Iat:   now,
		Exp:   exp,
		Jti:   uuid.New(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Sub.String(),
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   claims.Iat.Unix(),
		"exp":   claims.Exp.Unix(),
		"jti":   claims.Jti.String(),
	})
	return token.SignedString([]byte(secret))
}

// GetRefreshTokenExpiration returns the expiration time for refresh tokens
func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

func (as *AuthService) RefreshAccessToken(refreshToken string) (*structs.AuthResponse, error) {
	claims, err := lib.ParseToken(refreshToken, as.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		as.logger.Error("Failed to parse refresh token", gecho.Field("error", err))
		return nil, lib.ErrInvalidToken
	}

	if time.Now().After(claims.Exp) {
		as.logger.Warn("Refresh token has expired", gecho.Field("exp", claims.Exp))
		return nil, lib.ErrExpiredToken
	}

	isBlacklisted, err := as.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		as.logger.Error("Failed to check if token is blacklisted", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return nil, err
	}

	if isBlacklisted {
		as.logger.Warn("Refresh token is blacklisted", gecho.Field("jti", claims.Jti))
		return nil, lib.ErrInvalidToken
	}

	user, err := as.GetUserByID(claims.Sub)
	if err != nil {
		as.logger.Error("Failed to get user by ID during token refresh", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		return nil, err
	}

	newAccessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new access token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	newRefreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new refresh token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	return &structs.AuthResponse{
		User:         user,
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout blacklists the presented tokens so they cannot be replayed
func (as *AuthService) Logout(accessClaims, refreshClaims *structs.AuthClaims) error {
	if accessClaims != nil {
		if err := as.cacheService.BlacklistToken(accessClaims.Jti, accessClaims.Exp); err != nil {
			as.logger.Error("Failed to blacklist access token", gecho.Field("error", err), gecho.Field("jti", accessClaims.Jti))
			return err
		}
		if err := as.cacheService.DeleteUserFromCache(accessClaims.Sub); err != nil {
			as.logger.Warn("Failed to evict user from cache on logout", gecho.Field("error", err), gecho.Field("user_id", accessClaims.Sub))
		}
	}
	if refreshClaims != nil {
		if err := as.cacheService.BlacklistToken(refreshClaims.Jti, refreshClaims.Exp); err != nil {
			as.logger.Error("Failed to blacklist refresh token", gecho.Field("error", err), gecho.Field("jti", refreshClaims.Jti))
			return err
		}
	}
	return nil
}

func (as *AuthService) GetUserByID(userId uuid.UUID) (*tables.User, error) {
	// Try to get user from cache first
	cachedUser, err := as.cacheService.GetUserFromCache(userId)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userId))
	} else if cachedUser != nil {
		as.logger.Debug("User retrieved from cache", gecho.Field("user_id", userId))
		return cachedUser, nil
	}

	// Cache miss - fetch user from database
	user, err := database.FindByID[tables.User](as.db, context.Background(), userId)
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	// Cache the user asynchronously
	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userId))
		}
	}()

	return user, nil
}
