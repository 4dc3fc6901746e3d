package api

import (
	"net/http"

	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// Login exchanges credentials for a (user, token) pair
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account. It does not log the account in.
func (c *Client) Signup(req SignupRequest) (*SignupResponse, error) {
	var resp SignupResponse
	if err := c.do(http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile resolves the current user from the attached bearer token
func (c *Client) GetProfile() (*model.User, error) {
	var user model.User
	if err := c.do(http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers returns all users, for the admin task-assignment picker
func (c *Client) GetUsers() ([]model.User, error) {
	var users []model.User
	if err := c.do(http.MethodGet, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
