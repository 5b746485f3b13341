package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel-fos-backend/services"
	"hotel-fos-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Users: svc}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/user/login
func (c *UserController) Login(ctx *gin.Context) {
	var payload loginPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(ctx, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, token, err := c.Users.Authenticate(username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(ctx, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login failed: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role})
}

// GET /api/user
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.Users.GetAll()
	if err != nil {
		log.Printf("failed to list users: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// POST /api/user
func (c *UserController) CreateUser(ctx *gin.Context) {
	var payload userPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Username == "" || payload.Password == "" || payload.Role == "" {
		utils.JSONError(ctx, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := c.Users.Create(payload.Username, payload.Password, payload.Role)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			utils.JSONError(ctx, http.StatusBadRequest, "Username already exists")
			return
		}
		log.Printf("failed to create user: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}

// PUT /api/user/:id
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var payload userPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := c.Users.Update(ctx.Param("id"), payload.Username, payload.Password, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(ctx, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrDuplicateUsername):
			utils.JSONError(ctx, http.StatusBadRequest, "Username already exists")
		default:
			log.Printf("failed to update user: %v", err)
			utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		}
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DELETE /api/user/:id
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.Users.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("failed to delete user: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
