package util

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims this service cares about. The subject is the
// auth provider's user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ValidateJWT verifies tokenString against keyMaterial and returns its
// claims. The signing algorithm is read from the (unverified) token header
// first: HMAC variants treat keyMaterial as a shared secret, RSA/ECDSA
// variants expect a PEM-encoded public key. Local auth stacks sign with
// HS256 while hosted projects use asymmetric keys, so both must work.
func ValidateJWT(tokenString, keyMaterial string) (*Claims, error) {
	alg, err := tokenAlgorithm(tokenString)
	if err != nil {
		return nil, fmt.Errorf("failed to detect algorithm: %w", err)
	}

	keyFunc, err := keyFuncFor(alg, keyMaterial)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// tokenAlgorithm extracts the alg header without verifying the signature.
func tokenAlgorithm(tokenString string) (string, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return "", fmt.Errorf("failed to parse token header: %w", err)
	}
	alg, ok := token.Header["alg"].(string)
	if !ok {
		return "", errors.New("token header missing 'alg' field")
	}
	return alg, nil
}

func keyFuncFor(alg, keyMaterial string) (jwt.Keyfunc, error) {
	switch {
	case strings.HasPrefix(alg, "HS"):
		secret := []byte(keyMaterial)
		return func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v (expected HMAC)", token.Header["alg"])
			}
			return secret, nil
		}, nil

	case strings.HasPrefix(alg, "RS"):
		publicKey, err := parsePublicKey[*rsa.PublicKey](keyMaterial, "RSA")
		if err != nil {
			return nil, err
		}
		return func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v (expected RSA)", token.Header["alg"])
			}
			return publicKey, nil
		}, nil

	case strings.HasPrefix(alg, "ES"):
		publicKey, err := parsePublicKey[*ecdsa.PublicKey](keyMaterial, "ECDSA")
		if err != nil {
			return nil, err
		}
		return func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v (expected ECDSA)", token.Header["alg"])
			}
			return publicKey, nil
		}, nil

	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", alg)
	}
}

// parsePublicKey decodes a PEM block and asserts the contained PKIX public
// key has type T.
func parsePublicKey[T any](pemKey, kind string) (T, error) {
	var zero T

	block, _ := pem.Decode([]byte(pemKey))
	if block == nil {
		return zero, errors.New("failed to decode PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return zero, fmt.Errorf("failed to parse public key: %w", err)
	}

	key, ok := pub.(T)
	if !ok {
		return zero, fmt.Errorf("public key is not %s", kind)
	}
	return key, nil
}
