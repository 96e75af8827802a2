package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
	"github.com/qri-io/jsonschema"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo      repository.UserRepo
	profileRepo   repository.ProfileRepo
	jwtSecret     string
	tokenDuration time.Duration
	adminDuration time.Duration
	adminUsername string
	adminPassword string
	registerRS    *jsonschema.Schema
}

// registerSchema is the shape check applied to the raw register payload before
// decoding; field-level messages come from the schema keywords.
const registerSchema = `{
	"type": "object",
	"required": ["fullName", "email", "phone", "password", "userType", "city"],
	"properties": {
		"fullName": {"type": "string", "minLength": 1},
		"email": {"type": "string", "minLength": 3},
		"phone": {"type": "string", "minLength": 1},
		"password": {"type": "string", "minLength": 6},
		"userType": {"type": "string", "enum": ["employer", "helper"]},
		"city": {"type": "string", "minLength": 1},
		"about": {"type": "string"}
	}
}`

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, pr repository.ProfileRepo, jwtSecret string, tokenDuration, adminDuration time.Duration, adminUsername, adminPassword string) *AuthHandler {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(registerSchema), rs); err != nil {
		panic(fmt.Sprintf("register schema is invalid: %v", err))
	}

	return &AuthHandler{
		userRepo:      ur,
		profileRepo:   pr,
		jwtSecret:     jwtSecret,
		tokenDuration: tokenDuration,
		adminDuration: adminDuration,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		registerRS:    rs,
	}
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	UserType string `json:"userType"`
	City     string `json:"city"`
	About    string `json:"about"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) issueToken(userID int64, email, userType string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   userID,
		"email":     email,
		"user_type": userType,
		"role":      "user",
		"exp":       time.Now().Add(h.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx := r.Context()

	keyErrs, err := h.registerRS.ValidateBytes(ctx, body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if len(keyErrs) > 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Please provide all required fields: %s", keyErrs[0].Message))
		return
	}

	var req registerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondStoreError(w, "Error hashing password", err)
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		UserType:     req.UserType,
		City:         req.City,
		About:        req.About,
	}

	userID, err := h.userRepo.CreateUser(ctx, &user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respondError(w, http.StatusBadRequest, "User with this email already exists")
			return
		}
		respondStoreError(w, "Failed to create user", err)
		return
	}

	// Create an empty role-profile row linked to the new user id
	switch req.UserType {
	case models.TypeHelper:
		err = h.profileRepo.CreateHelperProfile(ctx, userID)
	case models.TypeEmployer:
		err = h.profileRepo.CreateEmployerPreferences(ctx, userID)
	}
	if err != nil {
		respondStoreError(w, "Failed to create user profile", err)
		return
	}

	created, err := h.userRepo.GetUserByID(ctx, userID)
	if err != nil || created == nil {
		respondStoreError(w, "Error fetching user", err)
		return
	}

	tokenStr, err := h.issueToken(created.ID, created.Email, created.UserType)
	if err != nil {
		respondStoreError(w, "Error signing token", err)
		return
	}

	respondOK(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   tokenStr,
		"user":    created,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		respondStoreError(w, "Database error", err)
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if user.Status == models.UserSuspended {
		respondError(w, http.StatusForbidden, "Your account has been suspended. Please contact support.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenStr, err := h.issueToken(user.ID, user.Email, user.UserType)
	if err != nil {
		respondStoreError(w, "Error signing token", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   tokenStr,
		"user":    user,
	})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide username and password")
		return
	}

	if h.adminPassword == "" || req.Username != h.adminUsername || req.Password != h.adminPassword {
		respondError(w, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": req.Username,
		"role":     "admin",
		"exp":      time.Now().Add(h.adminDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		respondStoreError(w, "Error signing token", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"message": "Admin login successful",
		"token":   tokenStr,
		"admin":   map[string]any{"username": req.Username, "role": "admin"},
	})
}
