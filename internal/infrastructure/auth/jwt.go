package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/compartilhaedu/compartilhaedu-backend/internal/domain/entities"
)

var (
	ErrTokenInvalido = errors.New("token inválido ou expirado")
)

// Claims é o payload embutido no token: id e role do usuário
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager emite e verifica tokens JWT assinados com HMAC
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager cria um novo TokenManager
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate emite um token assinado embutindo {id, role} com a validade configurada
func (m *TokenManager) Generate(usuarioID string, role entities.Role) (string, error) {
	now := time.Now()

	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuarioID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify valida assinatura e expiração, retornando os claims decodificados.
// A verificação é stateless: não consulta o banco.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}
