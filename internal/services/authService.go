package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/okarhu/cat-api/internal/models"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret" // Default fallback
	}
	return []byte(secret)
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken mints a JWT for the user. The claims carry the public
// profile so that token reflection works without a database query.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.Hex(),
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"exp":       time.Now().Add(time.Hour * 4).Unix(), // Token expires in 4 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a JWT and reconstructs the actor from its claims.
func ParseToken(tokenString string) (models.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return models.Actor{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Actor{}, errors.New("invalid token claims")
	}

	userID, idOK := claims["user_id"].(string)
	role, roleOK := claims["role"].(string)
	if !idOK || !roleOK {
		return models.Actor{}, errors.New("invalid token payload")
	}
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.Actor{}, errors.New("invalid token payload")
	}

	userName, _ := claims["user_name"].(string)
	email, _ := claims["email"].(string)

	return models.Actor{
		ID:       objID,
		UserName: userName,
		Email:    email,
		Role:     role,
	}, nil
}
