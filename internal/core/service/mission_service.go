package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pairui/mission-board/internal/api/metrics"
	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

// maxMutateAttempts bounds the optimistic-lock retry loop. Preconditions are
// re-validated against a fresh read on every attempt, so a retry can never
// apply a transition that a concurrent writer made invalid.
const maxMutateAttempts = 3

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// MissionService is the lifecycle engine: it owns every transition of the
// (mission, application) state machine and the paired ledger side effects.
type MissionService struct {
	missions ports.MissionRepository
	users    ports.UserRepository
	ledger   ports.Ledger
	notifier ports.NotificationRecorder
	logger   zerolog.Logger
}

func NewMissionService(
	missions ports.MissionRepository,
	users ports.UserRepository,
	ledger ports.Ledger,
	notifier ports.NotificationRecorder,
	logger zerolog.Logger,
) *MissionService {
	return &MissionService{
		missions: missions,
		users:    users,
		ledger:   ledger,
		notifier: notifier,
		logger:   logger,
	}
}

// mutate runs a read-validate-write cycle on one mission aggregate under
// optimistic concurrency, retrying on version conflicts.
func (s *MissionService) mutate(ctx context.Context, missionID string, apply func(*domain.Mission) error) (*domain.Mission, error) {
	for attempt := 1; ; attempt++ {
		mission, err := s.missions.FindByID(ctx, missionID)
		if err != nil {
			return nil, err
		}
		if err := apply(mission); err != nil {
			return nil, err
		}

		err = s.missions.UpdateVersioned(ctx, mission)
		if err == nil {
			return mission, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) || attempt == maxMutateAttempts {
			return nil, err
		}

		metrics.VersionConflictsTotal.Inc()
		s.logger.Debug().
			Str("mission_id", missionID).
			Int("attempt", attempt).
			Msg("version conflict, retrying")
	}
}

// Create escrows the mission's credits from the creator and posts the mission
// as open. The escrow happens first so a mission can never exist without its
// credits deducted; a failed insert refunds the escrow.
func (s *MissionService) Create(ctx context.Context, input ports.CreateMissionInput) (*domain.Mission, error) {
	creator, err := s.users.FindByID(ctx, input.CreatorID)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeCreate(creator); err != nil {
		return nil, err
	}

	if err := s.ledger.Escrow(ctx, creator.ID, input.Credits); err != nil {
		return nil, err
	}

	mission := &domain.Mission{
		Name:         input.Name,
		Context:      input.Context,
		Demand:       input.Demand,
		UILibrary:    input.UILibrary,
		DueDate:      input.DueDate,
		Credits:      input.Credits,
		CreatorID:    creator.ID,
		CreatorRole:  creator.Role,
		Status:       domain.MissionOpen,
		FigmaLink:    input.FigmaLink,
		Applications: []domain.Application{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.missions.Create(ctx, mission); err != nil {
		if refundErr := s.ledger.Refund(ctx, creator.ID, input.Credits); refundErr != nil {
			s.logger.Error().Err(refundErr).
				Str("creator_id", creator.ID).
				Int64("amount", input.Credits).
				Msg("escrow refund after failed mission insert also failed")
		}
		return nil, fmt.Errorf("create mission: %w", err)
	}

	metrics.MissionsCreatedTotal.WithLabelValues(mission.UILibrary).Inc()
	s.logger.Info().
		Str("mission_id", mission.ID).
		Str("creator_id", creator.ID).
		Int64("credits", mission.Credits).
		Msg("mission created")

	return mission, nil
}

func (s *MissionService) Get(ctx context.Context, missionID string) (*domain.Mission, error) {
	return s.missions.FindByID(ctx, missionID)
}

func (s *MissionService) List(ctx context.Context, input ports.ListMissionsInput) (*ports.ListMissionsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.missions.List(ctx, ports.ListMissionsFilter{
		Status:      input.Status,
		UILibrary:   input.UILibrary,
		CreatorRole: input.CreatorRole,
		CreatorID:   input.CreatorID,
		ApplicantID: input.ApplicantID,
		Search:      input.Search,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListMissionsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Apply files a pending application on an open mission. Applications are kept
// newest first.
func (s *MissionService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Mission, error) {
	applicant, err := s.users.FindByID(ctx, input.ApplicantID)
	if err != nil {
		return nil, err
	}

	mission, err := s.mutate(ctx, input.MissionID, func(m *domain.Mission) error {
		if err := m.AuthorizeApply(applicant); err != nil {
			return err
		}
		app := domain.Application{
			ID:          uuid.NewString(),
			ApplicantID: applicant.ID,
			Note:        input.Note,
			Status:      domain.ApplicationPending,
			CreatedAt:   time.Now().UTC(),
		}
		m.Applications = append([]domain.Application{app}, m.Applications...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsTotal.Inc()
	s.notifier.Record(ports.NotificationInput{
		RecipientID: mission.CreatorID,
		Message:     fmt.Sprintf("%s applied to your mission %q", applicant.Username, mission.Name),
		MissionID:   mission.ID,
	})
	s.logger.Info().
		Str("mission_id", mission.ID).
		Str("applicant_id", applicant.ID).
		Msg("application filed")

	return mission, nil
}

// RespondToApplication records the creator's decision. Accepting moves the
// mission to in-progress and rejects every other pending application in the
// same aggregate write, so only one application can ever end up accepted.
func (s *MissionService) RespondToApplication(ctx context.Context, input ports.RespondInput) (*domain.Mission, error) {
	status := domain.ApplicationStatus(input.Status)
	if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
		return nil, domain.ErrInvalidResponseStatus
	}

	var applicantID string
	mission, err := s.mutate(ctx, input.MissionID, func(m *domain.Mission) error {
		if err := m.AuthorizeCreator(input.RequesterID); err != nil {
			return err
		}
		app := m.ApplicationByID(input.ApplicationID)
		if app == nil || app.Status != domain.ApplicationPending {
			return domain.ErrApplicationNotFound
		}

		if status == domain.ApplicationAccepted {
			if !m.Status.CanTransitionTo(domain.MissionInProgress) {
				return domain.ErrMissionNotOpen
			}
			app.Status = domain.ApplicationAccepted
			for i := range m.Applications {
				if m.Applications[i].ID != app.ID && m.Applications[i].Status == domain.ApplicationPending {
					m.Applications[i].Status = domain.ApplicationRejected
				}
			}
			m.Status = domain.MissionInProgress
		} else {
			app.Status = domain.ApplicationRejected
			app.RejectionNote = input.RejectionNote
		}
		applicantID = app.ApplicantID
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationResponsesTotal.WithLabelValues(input.Status).Inc()

	message := fmt.Sprintf("Your application for %q was accepted", mission.Name)
	if status == domain.ApplicationRejected {
		message = fmt.Sprintf("Your application for %q was rejected", mission.Name)
	}
	s.notifier.Record(ports.NotificationInput{
		RecipientID: applicantID,
		Message:     message,
		MissionID:   mission.ID,
	})

	s.logger.Info().
		Str("mission_id", mission.ID).
		Str("application_id", input.ApplicationID).
		Str("outcome", input.Status).
		Msg("application response recorded")

	return mission, nil
}

// SubmitWork records (or, after a revision request, overwrites) the accepted
// applicant's work product. A resubmission clears the revision flag; the
// revision comments stay on the application as history.
func (s *MissionService) SubmitWork(ctx context.Context, input ports.SubmitWorkInput) (*domain.Mission, error) {
	mission, err := s.mutate(ctx, input.MissionID, func(m *domain.Mission) error {
		app, err := m.AuthorizeSubmit(input.ApplicantID)
		if err != nil {
			return err
		}
		if m.Status != domain.MissionInProgress {
			return domain.ErrMissionNotInProgress
		}
		now := time.Now().UTC()
		app.SubmittedLink = input.Link
		app.SubmittedAt = &now
		app.RevisionRequested = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Record(ports.NotificationInput{
		RecipientID: mission.CreatorID,
		Message:     fmt.Sprintf("Work was submitted for your mission %q", mission.Name),
		MissionID:   mission.ID,
	})
	s.logger.Info().
		Str("mission_id", mission.ID).
		Str("applicant_id", input.ApplicantID).
		Msg("work submitted")

	return mission, nil
}

// RequestRevision flags the current submission for rework. The mission stays
// in-progress; the applicant may resubmit.
func (s *MissionService) RequestRevision(ctx context.Context, input ports.RequestRevisionInput) (*domain.Mission, error) {
	var applicantID string
	mission, err := s.mutate(ctx, input.MissionID, func(m *domain.Mission) error {
		if err := m.AuthorizeCreator(input.RequesterID); err != nil {
			return err
		}
		if m.Status != domain.MissionInProgress {
			return domain.ErrMissionNotInProgress
		}
		app := m.AcceptedApplication()
		if app == nil || app.SubmittedLink == "" {
			return domain.ErrNoSubmission
		}
		now := time.Now().UTC()
		app.RevisionRequested = true
		app.RevisionComments = input.Comments
		app.RevisionRequestedAt = &now
		applicantID = app.ApplicantID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Record(ports.NotificationInput{
		RecipientID: applicantID,
		Message:     fmt.Sprintf("A revision was requested on your work for %q", mission.Name),
		MissionID:   mission.ID,
	})
	s.logger.Info().
		Str("mission_id", mission.ID).
		Msg("revision requested")

	return mission, nil
}

// ProvideFeedback completes the mission and pays the escrowed credits out to
// the accepted applicant. The completion write and the payout touch different
// aggregates; if the payout fails the completion is reverted so a mission can
// never sit completed with credits still in escrow.
func (s *MissionService) ProvideFeedback(ctx context.Context, input ports.FeedbackInput) (*domain.Mission, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidFeedback
	}

	var applicantID string
	mission, err := s.mutate(ctx, input.MissionID, func(m *domain.Mission) error {
		if err := m.AuthorizeCreator(input.RequesterID); err != nil {
			return err
		}
		if m.Status != domain.MissionInProgress {
			return domain.ErrMissionNotInProgress
		}
		app := m.AcceptedApplication()
		if app == nil || app.SubmittedLink == "" {
			return domain.ErrNoSubmission
		}
		now := time.Now().UTC()
		m.Feedback = &domain.Feedback{Rating: input.Rating, Comments: input.Comments}
		m.Status = domain.MissionCompleted
		m.CompletedAt = &now
		applicantID = app.ApplicantID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Payout(ctx, applicantID, mission.Credits); err != nil {
		s.revertCompletion(ctx, mission.ID)
		return nil, err
	}

	metrics.MissionsCompletedTotal.Inc()
	s.notifier.Record(ports.NotificationInput{
		RecipientID: applicantID,
		Message:     fmt.Sprintf("Mission %q was completed and you received %d credits", mission.Name, mission.Credits),
		MissionID:   mission.ID,
	})
	s.logger.Info().
		Str("mission_id", mission.ID).
		Str("applicant_id", applicantID).
		Int64("credits", mission.Credits).
		Msg("mission completed")

	return mission, nil
}

// revertCompletion is the compensating action for a failed payout: the
// mission is moved back to in-progress with its feedback cleared.
func (s *MissionService) revertCompletion(ctx context.Context, missionID string) {
	_, err := s.mutate(ctx, missionID, func(m *domain.Mission) error {
		m.Status = domain.MissionInProgress
		m.Feedback = nil
		m.CompletedAt = nil
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("mission_id", missionID).
			Msg("failed to revert completion after payout failure")
	}
}

// Update mutates the editable fields of an open mission. Credits and the
// creator role snapshot are immutable.
func (s *MissionService) Update(ctx context.Context, input ports.UpdateMissionInput) (*domain.Mission, error) {
	mission, err := s.mutate(ctx, input.MissionID, func(m *domain.Mission) error {
		if err := m.AuthorizeEdit(input.RequesterID); err != nil {
			return err
		}
		if input.Name != nil {
			m.Name = *input.Name
		}
		if input.Context != nil {
			m.Context = *input.Context
		}
		if input.Demand != nil {
			m.Demand = *input.Demand
		}
		if input.UILibrary != nil {
			m.UILibrary = *input.UILibrary
		}
		if input.DueDate != nil {
			m.DueDate = *input.DueDate
		}
		if input.FigmaLink != nil {
			m.FigmaLink = *input.FigmaLink
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, app := range mission.Applications {
		s.notifier.Record(ports.NotificationInput{
			RecipientID: app.ApplicantID,
			Message:     fmt.Sprintf("Mission %q was updated", mission.Name),
			MissionID:   mission.ID,
		})
	}
	s.logger.Info().Str("mission_id", mission.ID).Msg("mission updated")

	return mission, nil
}

// Delete removes an open mission and refunds the escrow to the creator. If
// the refund fails after the delete, the mission is re-inserted so the escrow
// is never silently lost.
func (s *MissionService) Delete(ctx context.Context, missionID, requesterID string) (*ports.DeleteMissionResult, error) {
	var deleted *domain.Mission
	for attempt := 1; ; attempt++ {
		mission, err := s.missions.FindByID(ctx, missionID)
		if err != nil {
			return nil, err
		}
		if err := mission.AuthorizeEdit(requesterID); err != nil {
			return nil, err
		}

		err = s.missions.DeleteVersioned(ctx, mission)
		if err == nil {
			deleted = mission
			break
		}
		if !errors.Is(err, domain.ErrVersionConflict) || attempt == maxMutateAttempts {
			return nil, err
		}
		metrics.VersionConflictsTotal.Inc()
	}

	if err := s.ledger.Refund(ctx, deleted.CreatorID, deleted.Credits); err != nil {
		if restoreErr := s.missions.Create(ctx, deleted); restoreErr != nil {
			s.logger.Error().Err(restoreErr).
				Str("mission_id", deleted.ID).
				Msg("failed to restore mission after refund failure")
		}
		return nil, err
	}

	metrics.MissionsDeletedTotal.Inc()
	for _, app := range deleted.Applications {
		s.notifier.Record(ports.NotificationInput{
			RecipientID: app.ApplicantID,
			Message:     fmt.Sprintf("Mission %q was deleted", deleted.Name),
			MissionID:   deleted.ID,
		})
	}
	s.logger.Info().
		Str("mission_id", deleted.ID).
		Int64("credits_returned", deleted.Credits).
		Msg("mission deleted, escrow refunded")

	return &ports.DeleteMissionResult{CreditsReturned: deleted.Credits}, nil
}
