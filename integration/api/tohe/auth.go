package tohe

import (
	"context"
	"net/http"

	"github.com/toheco/tohekit/core/cart"
)

// Credentials are the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterParams are the registration request body.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and registration. Token is the bearer
// credential to hand to the session store.
type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// User is the authenticated profile returned by the /auth/me endpoints.
type User struct {
	ID    cart.ID `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

// ProfileParams are the editable profile fields.
type ProfileParams struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Register creates an account. The API logs the new account in, so the
// response carries a token like Login's.
func (c *Client) Register(ctx context.Context, params RegisterParams) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", params, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Me returns the current profile. Requires a token source holding a token.
func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateMe updates the current profile and returns the stored result.
func (c *Client) UpdateMe(ctx context.Context, params ProfileParams) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/auth/me", params, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
