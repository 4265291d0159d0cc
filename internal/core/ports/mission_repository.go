package ports

import (
	"context"

	"github.com/pairui/mission-board/internal/core/domain"
)

// ListMissionsFilter carries all query parameters for listing missions.
type ListMissionsFilter struct {
	Status      string // optional: filter by mission status
	UILibrary   string // optional: filter by UI library
	CreatorRole string // optional: filter by the creator's role snapshot
	CreatorID   string // optional: missions posted by this user (dashboard view)
	ApplicantID string // optional: missions this user has applied to (dashboard view)
	Search      string // optional: substring match on mission name
	Page        int    // 1-based
	Limit       int    // max rows per page (capped at 100 by service)
}

// MissionRepository defines persistence operations for the mission aggregate.
type MissionRepository interface {
	Create(ctx context.Context, m *domain.Mission) error
	FindByID(ctx context.Context, id string) (*domain.Mission, error)
	// List returns a page of missions matching filter, newest first, and the
	// total count.
	List(ctx context.Context, filter ListMissionsFilter) ([]*domain.Mission, int64, error)

	// UpdateVersioned replaces the whole aggregate if and only if the stored
	// version still equals m.Version, then bumps the version. Returns
	// domain.ErrVersionConflict when a concurrent writer got there first.
	UpdateVersioned(ctx context.Context, m *domain.Mission) error

	// DeleteVersioned removes the aggregate under the same version guard.
	DeleteVersioned(ctx context.Context, m *domain.Mission) error
}
