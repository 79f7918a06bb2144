package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type JWTToken struct {
	config *Config
}

func NewJWTToken(config *Config) *JWTToken {
	return &JWTToken{config: config}
}

type jwtClaim struct {
	jwt.StandardClaims
	UserID string `json:"sub_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenObject is what handlers see of an authenticated local user.
type TokenObject struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	ExpiresAt int64  `json:"expires_at"`
}

func (j *JWTToken) ttl() time.Duration {
	if j.config.TokenTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(j.config.TokenTTLHours) * time.Hour
}

// CreateToken signs a new HS256 token and returns it along with the claims it carries.
func (j *JWTToken) CreateToken(user TokenObject) (string, TokenObject, error) {
	now := time.Now()
	user.SessionID = uuid.NewString()
	user.ExpiresAt = now.Add(j.ttl()).Unix()

	claims := jwtClaim{
		StandardClaims: jwt.StandardClaims{
			Id:        user.SessionID,
			Subject:   user.UserID,
			IssuedAt:  now.Unix(),
			ExpiresAt: user.ExpiresAt,
		},
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.config.SigningKey))
	if err != nil {
		return "", TokenObject{}, err
	}

	return tokenString, user, nil
}

func (j *JWTToken) VerifyToken(tokenString string) (TokenObject, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid authentication token, format error")
		}
		return []byte(j.config.SigningKey), nil
	})

	if err != nil {
		return TokenObject{}, fmt.Errorf("invalid authentication token, %v", err.Error())
	}

	claims, ok := token.Claims.(*jwtClaim)
	if !ok || !token.Valid {
		return TokenObject{}, fmt.Errorf("invalid authentication token, token is not OK")
	}

	if claims.ExpiresAt < time.Now().Unix() {
		return TokenObject{}, fmt.Errorf("token is expired")
	}

	return TokenObject{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		SessionID: claims.Id,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
