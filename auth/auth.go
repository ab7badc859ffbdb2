package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inkwell/models"
)

type AuthModule struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthModule(db *gorm.DB, secret []byte) *AuthModule {
	return &AuthModule{
		db:     db,
		secret: secret,
	}
}

func (a *AuthModule) RegisterRoutes(router *gin.Engine) {
	router.POST("/register", a.register)
	router.POST("/login", a.login)
	router.GET("/user", a.RequireAuth, a.currentUser)
}

// RequireAuth gates protected routes on a valid bearer token and stores
// the token subject in the context as "user_id".
func (a *AuthModule) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
		c.Abort()
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	userID, err := parseToken(a.secret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

func (a *AuthModule) register(c *gin.Context) {
	var request struct {
		Username *string `json:"username" binding:"required"`
		Email    *string `json:"email" binding:"required"`
		Password *string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username, email and password are required"})
		return
	}

	var existingUser models.User
	if err := a.db.Where("username = ?", *request.Username).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
		return
	}

	passwordHash, err := hashPassword(*request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := models.User{
		Username:     *request.Username,
		Email:        *request.Email,
		PasswordHash: passwordHash,
	}

	if err := a.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
}

func (a *AuthModule) login(c *gin.Context) {
	var request struct {
		Username *string `json:"username" binding:"required"`
		Password *string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	var user models.User
	if err := a.db.Where("username = ?", *request.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	if !checkPasswordHash(*request.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := signToken(a.secret, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error issuing token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (a *AuthModule) currentUser(c *gin.Context) {
	userID := c.GetInt("user_id")

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
