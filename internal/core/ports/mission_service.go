package ports

import (
	"context"
	"time"

	"github.com/pairui/mission-board/internal/core/domain"
)

// CreateMissionInput carries all data needed to post a new mission.
type CreateMissionInput struct {
	CreatorID string
	Name      string
	Context   string
	Demand    string
	UILibrary string
	DueDate   time.Time
	Credits   int64
	FigmaLink string
}

// UpdateMissionInput carries the editable mission fields. Nil pointers leave
// the field untouched. Credits and the creator role snapshot are immutable.
type UpdateMissionInput struct {
	MissionID   string
	RequesterID string
	Name        *string
	Context     *string
	Demand      *string
	UILibrary   *string
	DueDate     *time.Time
	FigmaLink   *string
}

// ApplyInput carries an application to an open mission.
type ApplyInput struct {
	MissionID   string
	ApplicantID string
	Note        string
}

// RespondInput carries the creator's decision on a pending application.
type RespondInput struct {
	MissionID     string
	ApplicationID string
	RequesterID   string
	Status        string // "accepted" or "rejected"
	RejectionNote string
}

// SubmitWorkInput carries the accepted applicant's work product link.
type SubmitWorkInput struct {
	MissionID   string
	ApplicantID string
	Link        string
}

// RequestRevisionInput carries the creator's revision request on submitted work.
type RequestRevisionInput struct {
	MissionID   string
	RequesterID string
	Comments    string
}

// FeedbackInput completes a mission: feedback is recorded and the escrowed
// credits are paid out to the accepted applicant.
type FeedbackInput struct {
	MissionID   string
	RequesterID string
	Rating      int
	Comments    string
}

// ListMissionsInput carries all parameters for the list endpoint.
type ListMissionsInput struct {
	Status      string
	UILibrary   string
	CreatorRole string
	CreatorID   string
	ApplicantID string
	Search      string
	Page        int
	Limit       int
}

// ListMissionsResult is returned by List.
type ListMissionsResult struct {
	Items      []*domain.Mission
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// DeleteMissionResult reports the escrow returned to the creator.
type DeleteMissionResult struct {
	CreditsReturned int64
}

// MissionService defines the lifecycle engine's use-case operations.
type MissionService interface {
	Create(ctx context.Context, input CreateMissionInput) (*domain.Mission, error)
	Get(ctx context.Context, missionID string) (*domain.Mission, error)
	List(ctx context.Context, input ListMissionsInput) (*ListMissionsResult, error)
	Apply(ctx context.Context, input ApplyInput) (*domain.Mission, error)
	RespondToApplication(ctx context.Context, input RespondInput) (*domain.Mission, error)
	SubmitWork(ctx context.Context, input SubmitWorkInput) (*domain.Mission, error)
	RequestRevision(ctx context.Context, input RequestRevisionInput) (*domain.Mission, error)
	ProvideFeedback(ctx context.Context, input FeedbackInput) (*domain.Mission, error)
	Update(ctx context.Context, input UpdateMissionInput) (*domain.Mission, error)
	Delete(ctx context.Context, missionID, requesterID string) (*DeleteMissionResult, error)
}
