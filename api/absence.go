package api

import (
	"context"
	"fmt"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
)

// SubmitAbsenceRequest files a technician's time-off request.
func (c *Client) SubmitAbsenceRequest(ctx context.Context, input models.AbsenceInput) (*models.AbsenceRequest, error) {
	var out models.AbsenceRequest
	_, err := c.R().SetContext(ctx).SetBody(input).SetResult(&out).Post("/absences")
	if err != nil {
		return nil, fmt.Errorf("submit absence request: %w", err)
	}
	return &out, nil
}

// ListMyAbsenceRequests returns the signed-in technician's own requests.
func (c *Client) ListMyAbsenceRequests(ctx context.Context) ([]models.AbsenceRequest, error) {
	var out []models.AbsenceRequest
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/absences/me")
	if err != nil {
		return nil, fmt.Errorf("list own absence requests: %w", err)
	}
	return out, nil
}

// ListAbsenceRequests returns every request, admin review view.
func (c *Client) ListAbsenceRequests(ctx context.Context) ([]models.AbsenceRequest, error) {
	var out []models.AbsenceRequest
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/absences")
	if err != nil {
		return nil, fmt.Errorf("list absence requests: %w", err)
	}
	return out, nil
}

// ApproveAbsenceRequest marks a request approved.
func (c *Client) ApproveAbsenceRequest(ctx context.Context, id string) (*models.AbsenceRequest, error) {
	var out models.AbsenceRequest
	_, err := c.R().SetContext(ctx).SetResult(&out).Post("/absences/" + id + "/approve")
	if err != nil {
		return nil, fmt.Errorf("approve absence request: %w", err)
	}
	return &out, nil
}

// RejectAbsenceRequest marks a request rejected.
func (c *Client) RejectAbsenceRequest(ctx context.Context, id string) (*models.AbsenceRequest, error) {
	var out models.AbsenceRequest
	_, err := c.R().SetContext(ctx).SetResult(&out).Post("/absences/" + id + "/reject")
	if err != nil {
		return nil, fmt.Errorf("reject absence request: %w", err)
	}
	return &out, nil
}
