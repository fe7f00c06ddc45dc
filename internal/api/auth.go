package api

import (
	"league_system/internal/domain" // Importing domain models
	"league_system/internal/utils"  // Utility functions
	"net/http"                      // HTTP status codes
	"regexp"                        // Regular expressions
	"strings"                       // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email           string `json:"email" binding:"required"`            // Login email must be provided
	Password        string `json:"password" binding:"required"`         // Password must be provided
	ConfirmPassword string `json:"confirm_password" binding:"required"` // Confirmation must be provided
	FirstName       string `json:"first_name" binding:"required"`       // First name must be provided
	LastName        string `json:"last_name" binding:"required"`        // Last name must be provided
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Login email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// emailRE is a light sanity check on the login email
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// isValidPassword checks if the password length is between 8 and 64 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 64 // Return true if length is valid
}

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email)) // Normalize the email for uniqueness
		// Validate email and password
		if !emailRE.MatchString(email) {
			fail(c, "A valid email address is required", http.StatusBadRequest, 0)
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			fail(c, "Password must be 8-64 characters", http.StatusBadRequest, 0)
			return
		}
		// Password and confirmation must match
		if req.Password != req.ConfirmPassword {
			fail(c, "Password and confirm password does not match", http.StatusBadRequest, 0)
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		user := domain.User{
			Email:     email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  string(hash),
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate email), return bad request
			fail(c, "Email already exists.", http.StatusBadRequest, 0)
			return
		}
		// Return the new account's public fields
		created(c, "Registration completed successfully.", gin.H{
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			fail(c, "Invalid credentials. Kindly retry with correct credentials", http.StatusUnauthorized, 0)
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			fail(c, "Invalid credentials. Kindly retry with correct credentials", http.StatusUnauthorized, 0)
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		// Return the token and the user's public fields
		ok(c, "success", gin.H{
			"user_id":    user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"token":      token,
		})
	}
}
