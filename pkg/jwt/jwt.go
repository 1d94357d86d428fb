// Package jwt implementa el emisor de tokens de sesión: tokens firmados,
// autocontenidos y sin estado en el servidor. Un token muere solo por
// expiración o por descarte del cliente; no hay lista de revocación.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. Expiración y firma inválida se distinguen para que
// la capa HTTP pueda informar cada caso.
var (
	ErrTokenExpired = errors.New("jwt: token expirado")
	ErrTokenInvalid = errors.New("jwt: token inválido")
)

// Identity claim de identidad derivado del usuario en el momento del login.
// Se embebe exactamente este conjunto de campos y nada más (nunca el hash de
// password). Los campos de rol/status NO se refrescan por petición: entre la
// emisión y la expiración pueden quedar obsoletos.
type Identity struct {
	UserID   string
	Email    string
	Name     string
	RoleID   string
	RoleName string
	Status   string
	Avatar   string
}

// Claims claims estándar JWT más los campos de Identity.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	Name     string `json:"name"`
	RoleID   string `json:"role_id,omitempty"`
	RoleName string `json:"role_name,omitempty"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar,omitempty"`
}

// Generate emite un token HS256 firmado con el secret del servidor, con
// issued-at ahora y expiración a expMinutes.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:    id.Email,
		Name:     id.Name,
		RoleID:   id.RoleID,
		RoleName: id.RoleName,
		Status:   id.Status,
		Avatar:   id.Avatar,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifica firma y expiración y devuelve la Identity embebida.
// El esquema de claims es estricto: un token sin subject, email o status se
// rechaza en lugar de rellenar valores por defecto.
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" || claims.Email == "" || claims.Status == "" {
		return nil, ErrTokenInvalid
	}
	return &Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		RoleID:   claims.RoleID,
		RoleName: claims.RoleName,
		Status:   claims.Status,
		Avatar:   claims.Avatar,
	}, nil
}
