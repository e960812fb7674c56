package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSubject is returned when a valid token does not carry an employee ID.
var ErrInvalidSubject = errors.New("token subject is not an employee id")

// GenerateEmployeeJWT issues an HS256 token whose subject is the employee ID.
func GenerateEmployeeJWT(employeeID int64, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(employeeID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseEmployeeJWT validates the signature and standard claims of tokenString
// and returns the employee ID held in its subject.
func ParseEmployeeJWT(tokenString string, secretKey string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", jwt.ErrSignatureInvalid, token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return 0, err // expired, not yet valid, bad signature...
	}
	if !token.Valid {
		return 0, jwt.ErrTokenSignatureInvalid
	}

	employeeID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || employeeID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSubject, claims.Subject)
	}
	return employeeID, nil
}
