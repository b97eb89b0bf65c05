// internal/adapters/in/http/handler/auth_handler.go
package handler

import (
	"net/http"

	usecase "storefront/internal/application/usecase"
)

// AuthHandler serves sign-in/sign-up/sign-out.
type AuthHandler struct {
	Auth *usecase.AuthUsecase
}

func NewAuthHandler(auth *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// SignIn verifies credentials and publishes the principal change.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	p, err := h.Auth.SignIn(r.Context(), in.Email, in.Password)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"uid":   p.UID,
		"email": p.Email,
		"name":  p.Name,
	})
}

// SignUp creates the account and its profile; it does not sign in.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	if err := h.Auth.SignUp(r.Context(), in.Email, in.Password, in.Name); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// SignOut clears the principal (remote revocation is best-effort).
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Auth.SignOut(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}
