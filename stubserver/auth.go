package stubserver

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// seedAdmin ensures the configured admin account exists.
func (s *Server) seedAdmin(email, password string, saltRound int) error {
	if saltRound <= 0 {
		saltRound = bcrypt.DefaultCost
	}

	var existing AdminUser
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), saltRound)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return s.db.Create(&AdminUser{
		Email:          email,
		HashedPassword: string(hashed),
		Role:           "admin",
		IsActive:       true,
	}).Error
}

// generateToken issues a 24h HS256 token for the admin.
func (s *Server) generateToken(admin *AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(admin.ID), 10),
		"role":  admin.Role,
		"email": admin.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// login authenticates the admin and returns a bearer token.
func (s *Server) login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var admin AdminUser
	if err := s.db.Where("email = ?", reqData.Email).First(&admin).Error; err != nil {
		return detail(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(reqData.Password)); err != nil {
		return detail(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if !admin.IsActive {
		return detail(c, fiber.StatusForbidden, "Admin account is inactive")
	}

	token, err := s.generateToken(&admin)
	if err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	now := time.Now().UTC()
	admin.LastLogin = &now
	s.db.Save(&admin)

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// requireAdmin checks for a valid bearer token on every admin route.
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return detail(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return detail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["sub"] == nil {
		return detail(c, fiber.StatusUnauthorized, "Invalid token payload")
	}

	sub, _ := claims["sub"].(string)
	adminID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return detail(c, fiber.StatusUnauthorized, "Invalid token payload")
	}

	c.Locals("adminId", uint(adminID))
	return c.Next()
}
