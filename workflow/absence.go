// Package workflow holds page-level flows that keep their own view state on
// top of the API client.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"go.uber.org/zap"
)

// AbsenceAPI is the slice of the backend client the review screen uses.
type AbsenceAPI interface {
	ListAbsenceRequests(ctx context.Context) ([]models.AbsenceRequest, error)
	ApproveAbsenceRequest(ctx context.Context, id string) (*models.AbsenceRequest, error)
	RejectAbsenceRequest(ctx context.Context, id string) (*models.AbsenceRequest, error)
}

// AbsenceReview is the admin's request list with optimistic approve/reject:
// the tentative status shows immediately, and the prior snapshot is restored
// if the confirming call fails.
type AbsenceReview struct {
	api    AbsenceAPI
	logger *zap.Logger

	mu       sync.Mutex
	requests []models.AbsenceRequest
}

func NewAbsenceReview(api AbsenceAPI, logger *zap.Logger) *AbsenceReview {
	return &AbsenceReview{api: api, logger: logger}
}

// Load fetches the full request list.
func (r *AbsenceReview) Load(ctx context.Context) error {
	requests, err := r.api.ListAbsenceRequests(ctx)
	if err != nil {
		return fmt.Errorf("load absence requests: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = requests
	return nil
}

// Requests returns a copy of the current list.
func (r *AbsenceReview) Requests() []models.AbsenceRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AbsenceRequest(nil), r.requests...)
}

// Approve optimistically marks a request approved, then confirms with the
// backend, rolling back on failure.
func (r *AbsenceReview) Approve(ctx context.Context, id string) error {
	return r.review(ctx, id, models.AbsenceApproved, r.api.ApproveAbsenceRequest)
}

// Reject optimistically marks a request rejected, then confirms with the
// backend, rolling back on failure.
func (r *AbsenceReview) Reject(ctx context.Context, id string) error {
	return r.review(ctx, id, models.AbsenceRejected, r.api.RejectAbsenceRequest)
}

func (r *AbsenceReview) review(
	ctx context.Context,
	id string,
	tentativeStatus string,
	confirm func(context.Context, string) (*models.AbsenceRequest, error),
) error {
	r.mu.Lock()
	idx := r.indexLocked(id)
	if idx < 0 {
		r.mu.Unlock()
		return fmt.Errorf("absence request %s is not in the list", id)
	}
	snapshot := r.requests[idx]
	r.requests[idx].Status = tentativeStatus
	r.mu.Unlock()

	updated, err := confirm(ctx, id)

	r.mu.Lock()
	defer r.mu.Unlock()
	idx = r.indexLocked(id)
	if err != nil {
		if idx >= 0 {
			r.requests[idx] = snapshot
		}
		r.logger.Warn("absence review: confirming call failed, rolled back",
			zap.String("id", id), zap.Error(err))
		return err
	}
	if idx >= 0 && updated != nil {
		r.requests[idx] = *updated
	}
	return nil
}

func (r *AbsenceReview) indexLocked(id string) int {
	for i := range r.requests {
		if r.requests[i].ID == id {
			return i
		}
	}
	return -1
}
