package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gamescores/apiserver/internal/auth"
	"github.com/gamescores/apiserver/internal/services"
	"github.com/gamescores/apiserver/internal/store"
	"github.com/gamescores/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// AuthHandler provides the signup and login endpoints.
type AuthHandler struct {
	userService *services.UserService
	tokens      *auth.Tokens
	validate    *validator.Validate
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		validate:    validator.New(),
	}
}

// AuthRouter registers the signup and login routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, tokens *auth.Tokens) {
	handler := NewAuthHandler(userService, tokens)

	r.Post("/signup", handler.Signup)
	r.Post("/login", handler.Login)
}

// RequireAuth enforces bearer-token authentication and injects the
// token claims into the request context. The failure modes are
// distinguished by message text: missing or malformed header, invalid
// token, and expired token. A parsed token must also reference an
// existing user, so tokens minted before a restart stop working once
// the store resets.
func RequireAuth(tokens *auth.Tokens, userService *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "JWT token missing or invalid")
				return
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					writeError(w, http.StatusUnauthorized, "JWT token expired")
					return
				}
				writeError(w, http.StatusUnauthorized, "Invalid or expired JWT token")
				return
			}

			if _, err := userService.GetByID(r.Context(), claims.ID); err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired JWT token")
				return
			}

			ctx := context.WithValue(r.Context(), contextClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Signup creates a new user account and returns a JWT. Duplicate
// handles are accepted silently; login resolves to the earliest
// matching record.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		writeError(w, http.StatusBadRequest, signupValidationMessage(validationErrors))
		return
	}

	user, err := h.userService.Create(r.Context(), types.User{
		UserHandle: req.UserHandle,
		Password:   req.Password,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.UserHandle)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	writeJSON(w, http.StatusCreated, SignupResponse{
		Message: "User created successfully",
		Token:   token,
	})
}

// Login verifies credentials and returns a JWT. The body must contain
// exactly the userHandle and password keys; the checks run in order
// (presence, string typing, no additional properties) and each
// short-circuits with a 400.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !isTruthy(body["userHandle"]) || !isTruthy(body["password"]) {
		writeError(w, http.StatusBadRequest, "UserHandle and password are required.")
		return
	}

	userHandle, handleOK := body["userHandle"].(string)
	password, passwordOK := body["password"].(string)
	if !handleOK || !passwordOK {
		writeError(w, http.StatusBadRequest, "Both userHandle and password must be strings.")
		return
	}

	for key := range body {
		if key != "userHandle" && key != "password" {
			writeError(w, http.StatusBadRequest, "data must NOT have additional properties")
			return
		}
	}

	user, err := h.userService.Authenticate(r.Context(), userHandle, password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to authenticate")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.UserHandle)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	// The original API names this field differently from the signup
	// response; preserved for client compatibility.
	writeJSON(w, http.StatusOK, LoginResponse{JSONWebToken: token})
}

type SignupRequest struct {
	UserHandle string `json:"userHandle" validate:"required,min=6"`
	Password   string `json:"password" validate:"required,min=6"`
}

type SignupResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type LoginResponse struct {
	JSONWebToken string `json:"jsonWebToken"`
}

// signupValidationMessage maps validator failures onto the API's
// message strings, honoring the documented check order: presence of
// both fields first, then handle length, then password length.
func signupValidationMessage(errs validator.ValidationErrors) string {
	for _, fieldErr := range errs {
		if fieldErr.Tag() == "required" {
			return "UserHandle and password are required."
		}
	}
	for _, fieldErr := range errs {
		if fieldErr.Field() == "UserHandle" {
			return "UserHandle must be at least 6 characters long."
		}
	}
	return "Password must be at least 6 characters long."
}

// isTruthy mirrors the truthiness rules the original service relied
// on: nil, false, empty strings, and numeric zero count as absent.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
