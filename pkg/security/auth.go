package security

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

func secret() []byte {
	jwtSecretOnce.Do(func() {
		s := os.Getenv("JWT_SECRET")

		if s == "" {
			_ = godotenv.Load()
			s = os.Getenv("JWT_SECRET")
		}

		if s == "" {
			log.Fatal("JWT_SECRET environment variable is not set")
		}

		jwtSecret = []byte(s)
	})

	return jwtSecret
}

// GenerateSessionToken issues the token that carries the logged-in user
// through the catalog routes. This is session transport, not access
// control: the gate behind it is an allow-list, not a credential check.
func GenerateSessionToken(name string, email string) (string, error) {
	claims := jwt.MapClaims{
		"name":  name,
		"email": email,
		"exp":   time.Now().Add(time.Hour * 120).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// SessionUserFromContext reads the claims placed by JWTMiddleware.
func SessionUserFromContext(c *gin.Context) (name string, email string, err error) {
	rawName, ok := c.Get("userName")
	if !ok {
		return "", "", fmt.Errorf("userName missing from context")
	}
	rawEmail, ok := c.Get("userEmail")
	if !ok {
		return "", "", fmt.Errorf("userEmail missing from context")
	}

	name, ok = rawName.(string)
	if !ok {
		return "", "", fmt.Errorf("userName is not a string")
	}
	email, ok = rawEmail.(string)
	if !ok {
		return "", "", fmt.Errorf("userEmail is not a string")
	}

	return name, email, nil
}
