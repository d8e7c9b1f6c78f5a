package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// 可复用的错误定义
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Token 类型，refresh token 不能用于访问业务接口
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// JWTUtil JWT配置结构体
type JWTUtil struct {
	secret            string
	expireTime        time.Duration
	refreshExpireTime time.Duration
}

func NewJWTUtil(secret string, expireHours, refreshExpireHours int) *JWTUtil {
	return &JWTUtil{
		secret:            secret,
		expireTime:        time.Duration(expireHours) * time.Hour,
		refreshExpireTime: time.Duration(refreshExpireHours) * time.Hour,
	}
}

type Claims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateTokenPair 生成 access/refresh token 对
func (j *JWTUtil) GenerateTokenPair(userID int64, email string) (access string, refresh string, err error) {
	access, err = j.generate(userID, email, TokenTypeAccess, j.expireTime)
	if err != nil {
		return "", "", err
	}
	refresh, err = j.generate(userID, email, TokenTypeRefresh, j.refreshExpireTime)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (j *JWTUtil) generate(userID int64, email, tokenType string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	claims := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

// ParseToken 解析 JWT token
func (j *JWTUtil) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.secret), nil
	})

	if err != nil {
		// 过期错误识别，其余校验失败（签名、nbf等）一律视为无效
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrTokenInvalid
}

// RefreshTokenPair 用 refresh token 换取新的 token 对
func (j *JWTUtil) RefreshTokenPair(refreshToken string) (string, string, error) {
	claims, err := j.ParseToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", "", ErrTokenInvalid
	}
	return j.GenerateTokenPair(claims.UserID, claims.Email)
}
