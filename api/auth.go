package api

import (
	"context"
	"fmt"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
)

// Authenticate exchanges credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, creds models.Credentials) (string, error) {
	var out models.AuthResponse
	_, err := c.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	return out.Token, nil
}

// Register creates a new customer account. The backend sends a verification
// email; the account stays inactive until VerifyEmail succeeds.
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	_, err := c.R().
		SetContext(ctx).
		SetBody(reg).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// VerifyEmail confirms a signup with the token from the verification email.
func (c *Client) VerifyEmail(ctx context.Context, verificationToken string) error {
	_, err := c.R().
		SetContext(ctx).
		SetBody(map[string]string{"token": verificationToken}).
		Post("/auth/verify-email")
	if err != nil {
		return fmt.Errorf("verify email: %w", err)
	}
	return nil
}

// RequestPasswordReset asks the backend to mail a reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email}).
		Post("/auth/forgot-password")
	if err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	return nil
}

// ResetPassword completes a password reset with the mailed token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	_, err := c.R().
		SetContext(ctx).
		SetBody(map[string]string{"token": resetToken, "password": newPassword}).
		Post("/auth/reset-password")
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
