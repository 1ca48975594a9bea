package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"debtbook/models"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine) {
	r.Use(metricsMiddleware())
	r.GET("/metrics", metricsHandler())
	r.POST("/auth/register", registerHandler)
	r.POST("/auth/login", loginHandler)
	records := r.Group("/records")
	records.Use(jwtAuthMiddleware())
	records.GET("", listRecordsHandler)
	records.POST("", createRecordHandler)
	records.PUT("/:id", updateRecordHandler)
	records.DELETE("/:id", deleteRecordHandler)
}

// jwtAuthMiddleware is the single authorization gate for record routes:
// it verifies the bearer token, resolves the user it was issued to, and
// attaches that user to the context. No record handler runs without it.
func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "missing or invalid Authorization header")
			return
		}
		userID, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}
		// a token may outlive its user
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			unauthorized(c, "invalid token")
			return
		}
		c.Set("user", &user)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
	c.Abort()
}

// currentUser returns the user attached by jwtAuthMiddleware.
func currentUser(c *gin.Context) *models.User {
	v, _ := c.Get("user")
	user, _ := v.(*models.User)
	return user
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func authPayload(token string, user models.User) gin.H {
	return gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"id": user.ID, "username": user.Username},
	}
}

func registerHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}
	user, err := RegisterUser(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	token, err := issueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, authPayload(token, user))
}

func loginHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}
	user, err := Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	token, err := issueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, authPayload(token, user))
}

func listRecordsHandler(c *gin.Context) {
	user := currentUser(c)
	records, err := listRecords(user.ID)
	if err != nil {
		log.Printf("list records failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func createRecordHandler(c *gin.Context) {
	user := currentUser(c)
	var in recordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	rec, err := createRecord(user.ID, in)
	if err != nil {
		respondRecordError(c, err, "Error creating record")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func updateRecordHandler(c *gin.Context) {
	user := currentUser(c)
	id, ok := recordIDParam(c)
	if !ok {
		return
	}
	var in recordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	rec, err := updateRecord(user.ID, id, in)
	if err != nil {
		respondRecordError(c, err, "Error updating record")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func deleteRecordHandler(c *gin.Context) {
	user := currentUser(c)
	id, ok := recordIDParam(c)
	if !ok {
		return
	}
	if err := deleteRecord(user.ID, id); err != nil {
		respondRecordError(c, err, "Error deleting record")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// recordIDParam parses the :id path segment. A non-numeric id cannot match
// any record, so it reads as not found rather than a malformed request.
func recordIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
		return 0, false
	}
	return uint(id), true
}

// respondRecordError maps store errors onto responses. Unexpected failures
// get a generic body; detail stays in the server log.
func respondRecordError(c *gin.Context, err error, generic string) {
	var ve *validationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error()})
	case errors.Is(err, errNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
	default:
		log.Printf("record operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": generic})
	}
}
