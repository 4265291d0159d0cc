package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createMissionRequest struct {
	Name      string    `json:"name"       validate:"required"`
	Context   string    `json:"context"    validate:"required"`
	Demand    string    `json:"demand"     validate:"required"`
	UILibrary string    `json:"ui_library" validate:"required"`
	DueDate   time.Time `json:"due_date"   validate:"required"`
	Credits   int64     `json:"credits"    validate:"required,gt=0"`
	FigmaLink string    `json:"figma_link"`
}

type updateMissionRequest struct {
	Name      *string    `json:"name"`
	Context   *string    `json:"context"`
	Demand    *string    `json:"demand"`
	UILibrary *string    `json:"ui_library"`
	DueDate   *time.Time `json:"due_date"`
	FigmaLink *string    `json:"figma_link"`
}

type applyRequest struct {
	Note string `json:"note"`
}

type respondRequest struct {
	Status        string `json:"status" validate:"required,oneof=accepted rejected"`
	RejectionNote string `json:"rejection_note"`
}

type submitWorkRequest struct {
	SubmittedLink string `json:"submitted_link" validate:"required,url"`
}

type requestRevisionRequest struct {
	Comments string `json:"comments" validate:"required"`
}

type feedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type feedbackResponse struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments,omitempty"`
}

type applicationResponse struct {
	ID                  string     `json:"id"`
	ApplicantID         string     `json:"applicant_id"`
	Note                string     `json:"note,omitempty"`
	Status              string     `json:"status"`
	RejectionNote       string     `json:"rejection_note,omitempty"`
	SubmittedLink       string     `json:"submitted_link,omitempty"`
	SubmittedAt         *time.Time `json:"submitted_at,omitempty"`
	RevisionRequested   bool       `json:"revision_requested"`
	RevisionComments    string     `json:"revision_comments,omitempty"`
	RevisionRequestedAt *time.Time `json:"revision_requested_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type missionResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Context      string                `json:"context"`
	Demand       string                `json:"demand"`
	UILibrary    string                `json:"ui_library"`
	DueDate      time.Time             `json:"due_date"`
	Credits      int64                 `json:"credits"`
	CreatorID    string                `json:"creator_id"`
	CreatorRole  string                `json:"creator_role"`
	Status       string                `json:"status"`
	FigmaLink    string                `json:"figma_link,omitempty"`
	Feedback     *feedbackResponse     `json:"feedback,omitempty"`
	Applications []applicationResponse `json:"applications"`
	CompletedAt  *time.Time            `json:"completed_at,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// missionSummaryResponse is the lightweight item used in list responses.
// It intentionally omits the applications array to keep payloads small.
type missionSummaryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	UILibrary    string    `json:"ui_library"`
	DueDate      time.Time `json:"due_date"`
	Credits      int64     `json:"credits"`
	CreatorID    string    `json:"creator_id"`
	CreatorRole  string    `json:"creator_role"`
	Status       string    `json:"status"`
	Applications int       `json:"applications"`
	CreatedAt    time.Time `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listMissionsResponse struct {
	Data       []missionSummaryResponse `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}

type deleteMissionResponse struct {
	CreditsReturned int64 `json:"credits_returned"`
}
