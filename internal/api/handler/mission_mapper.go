package handler

import (
	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

// --- Domain → HTTP response ---

func toMissionResponse(m *domain.Mission) missionResponse {
	apps := make([]applicationResponse, len(m.Applications))
	for i, a := range m.Applications {
		apps[i] = applicationResponse{
			ID:                  a.ID,
			ApplicantID:         a.ApplicantID,
			Note:                a.Note,
			Status:              string(a.Status),
			RejectionNote:       a.RejectionNote,
			SubmittedLink:       a.SubmittedLink,
			SubmittedAt:         a.SubmittedAt,
			RevisionRequested:   a.RevisionRequested,
			RevisionComments:    a.RevisionComments,
			RevisionRequestedAt: a.RevisionRequestedAt,
			CreatedAt:           a.CreatedAt,
		}
	}

	resp := missionResponse{
		ID:           m.ID,
		Name:         m.Name,
		Context:      m.Context,
		Demand:       m.Demand,
		UILibrary:    m.UILibrary,
		DueDate:      m.DueDate,
		Credits:      m.Credits,
		CreatorID:    m.CreatorID,
		CreatorRole:  m.CreatorRole,
		Status:       string(m.Status),
		FigmaLink:    m.FigmaLink,
		Applications: apps,
		CompletedAt:  m.CompletedAt,
		CreatedAt:    m.CreatedAt,
	}
	if m.Feedback != nil {
		resp.Feedback = &feedbackResponse{
			Rating:   m.Feedback.Rating,
			Comments: m.Feedback.Comments,
		}
	}
	return resp
}

func toSummaryResponse(m *domain.Mission) missionSummaryResponse {
	return missionSummaryResponse{
		ID:           m.ID,
		Name:         m.Name,
		UILibrary:    m.UILibrary,
		DueDate:      m.DueDate,
		Credits:      m.Credits,
		CreatorID:    m.CreatorID,
		CreatorRole:  m.CreatorRole,
		Status:       string(m.Status),
		Applications: len(m.Applications),
		CreatedAt:    m.CreatedAt,
	}
}

func toListResponse(r *ports.ListMissionsResult) listMissionsResponse {
	items := make([]missionSummaryResponse, len(r.Items))
	for i, m := range r.Items {
		items[i] = toSummaryResponse(m)
	}
	return listMissionsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
