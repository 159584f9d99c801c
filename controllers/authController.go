package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
	"github.com/arun20071/arun-chaudhary-ecommerce/storage"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "Invalid input"
	msgUserAlreadyExists     = "Username or email already taken"
	msgFailedToHashPassword  = "Failed to hash password"
	msgInvalidCredentials    = "Invalid username or password"
	msgFailedToGenerateToken = "Failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserCreated           = "User created successfully."
	msgUserNotFound          = "User not found"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// currentUserID reads the user id from the claims an auth middleware may
// have stored on the context. Nil when the request is anonymous.
func currentUserID(ctx *gin.Context) *uint {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	id := uint(raw)
	return &id
}

type AuthController struct {
	store storage.Storage
}

func NewAuthController(store storage.Storage) *AuthController {
	return &AuthController{store: store}
}

// Signup handles user registration
func (c *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.SignupInput
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Username: signUpData.Username,
		Password: hashedPassword,
		Email:    signUpData.Email,
		FullName: signUpData.FullName,
	}

	if err := c.store.CreateUser(&user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated, "user": user})
}

// Login handles user authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.store.GetUserByUsername(loginData.Username)
	if err != nil {
		log.Println("Database error during login:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if user == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(*user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
}

// Profile returns the account of the authenticated user.
func (c *AuthController) Profile(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	user, err := c.store.GetUser(*userID)
	if err != nil {
		log.Println("Database error fetching user:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if user == nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
