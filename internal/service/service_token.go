package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// tokenService is the concrete implementation of TokenService.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the security parameters in
// cfg. All state is read-only after construction.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT whose subject is the account id.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed.
func (t *tokenService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if account.ID == "" {
		return models.Token{}, fmt.Errorf("%w: empty account id", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(t.tokenIssuer, account.ID, t.tokenDuration, t.tokenSignKey)
	if err != nil {
		logger.FromContextOr(ctx, t.logger).Err(err).Str("func", "tokenService.CreateToken").Msg("signing token failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (t *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		logger.FromContextOr(ctx, t.logger).Debug().Err(err).Str("func", "tokenService.ParseToken").Msg("rejected token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
