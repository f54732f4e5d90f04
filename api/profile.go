package api

import (
	"context"
	"fmt"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
)

// FetchCurrentUserProfile returns the signed-in user's own profile.
func (c *Client) FetchCurrentUserProfile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	_, err := c.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/users/me")
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &out, nil
}

// UpdateCurrentUserProfile updates the editable profile fields.
func (c *Client) UpdateCurrentUserProfile(ctx context.Context, fullName string) (*models.UserProfile, error) {
	var out models.UserProfile
	_, err := c.R().
		SetContext(ctx).
		SetBody(models.UpdateProfileRequest{FullName: fullName}).
		SetResult(&out).
		Put("/users/me")
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &out, nil
}
