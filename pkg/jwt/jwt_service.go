package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"recipe-catalog/domain"
)

type (
	JWTService interface {
		GenerateToken(userID int, username string, roles []string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		ParseClaims(token string) (*UserClaims, error)
	}

	UserClaims struct {
		UserID   int      `json:"user_id"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey []byte
		issuer    string
		ttl       time.Duration
		now       func() time.Time
	}
)

// NewJWTService is built once at startup and handed to whoever needs it.
func NewJWTService(secretKey, issuer string, ttl time.Duration) JWTService {
	if ttl <= 0 {
		ttl = 120 * time.Minute
	}
	return &jwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (j *jwtService) GenerateToken(userID int, username string, roles []string) (string, error) {
	if len(j.secretKey) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	now := j.now()
	claims := UserClaims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return j.secretKey, nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &UserClaims{}, j.parseToken)
}

func (j *jwtService) ParseClaims(token string) (*UserClaims, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*UserClaims)
	if !ok || (j.issuer != "" && claims.Issuer != j.issuer) {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// HasAnyRole reports whether the claims carry at least one of roles.
func (c *UserClaims) HasAnyRole(roles ...string) bool {
	for _, held := range c.Roles {
		for _, want := range roles {
			if held == want {
				return true
			}
		}
	}
	return false
}
