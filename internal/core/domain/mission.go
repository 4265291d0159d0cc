package domain

import "time"

// MissionStatus represents the lifecycle state of a mission.
type MissionStatus string

const (
	MissionOpen       MissionStatus = "open"
	MissionInProgress MissionStatus = "in-progress"
	MissionCompleted  MissionStatus = "completed"
)

// ApplicationStatus represents the per-applicant sub-state on a mission.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// validTransitions defines the allowed mission state machine transitions.
// open → in-progress happens only through an acceptance; in-progress →
// completed only through feedback on submitted work.
var validTransitions = map[MissionStatus][]MissionStatus{
	MissionOpen:       {MissionInProgress},
	MissionInProgress: {MissionCompleted},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s MissionStatus) CanTransitionTo(next MissionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Feedback is the creator's rating of the delivered work. Setting it
// completes the mission.
type Feedback struct {
	Rating   int    `json:"rating" bson:"rating"`
	Comments string `json:"comments,omitempty" bson:"comments,omitempty"`
}

// Application is a bid by a user to work a mission. It lives embedded in the
// mission document; at most one application per applicant, at most one
// accepted application per mission.
type Application struct {
	ID                  string            `json:"id" bson:"id"`
	ApplicantID         string            `json:"applicant_id" bson:"applicant_id"`
	Note                string            `json:"note,omitempty" bson:"note,omitempty"`
	Status              ApplicationStatus `json:"status" bson:"status"`
	RejectionNote       string            `json:"rejection_note,omitempty" bson:"rejection_note,omitempty"`
	SubmittedLink       string            `json:"submitted_link,omitempty" bson:"submitted_link,omitempty"`
	SubmittedAt         *time.Time        `json:"submitted_at,omitempty" bson:"submitted_at,omitempty"`
	RevisionRequested   bool              `json:"revision_requested" bson:"revision_requested"`
	RevisionComments    string            `json:"revision_comments,omitempty" bson:"revision_comments,omitempty"`
	RevisionRequestedAt *time.Time        `json:"revision_requested_at,omitempty" bson:"revision_requested_at,omitempty"`
	CreatedAt           time.Time         `json:"created_at" bson:"created_at"`
}

// Mission is the core aggregate root. The applications array is part of the
// document; every lifecycle operation rewrites the aggregate as one unit,
// guarded by Version (optimistic concurrency).
type Mission struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Name         string        `json:"name" bson:"name"`
	Context      string        `json:"context" bson:"context"`
	Demand       string        `json:"demand" bson:"demand"`
	UILibrary    string        `json:"ui_library" bson:"ui_library"`
	DueDate      time.Time     `json:"due_date" bson:"due_date"`
	Credits      int64         `json:"credits" bson:"credits"`
	CreatorID    string        `json:"creator_id" bson:"creator_id"`
	CreatorRole  string        `json:"creator_role" bson:"creator_role"` // snapshot at creation, never updated
	Status       MissionStatus `json:"status" bson:"status"`
	FigmaLink    string        `json:"figma_link,omitempty" bson:"figma_link,omitempty"`
	Feedback     *Feedback     `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Applications []Application `json:"applications" bson:"applications"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	Version      int64         `json:"-" bson:"version"`
}

// ApplicationByID returns the embedded application with the given id, or nil.
func (m *Mission) ApplicationByID(applicationID string) *Application {
	for i := range m.Applications {
		if m.Applications[i].ID == applicationID {
			return &m.Applications[i]
		}
	}
	return nil
}

// ApplicationByApplicant returns the application filed by the given user, or nil.
func (m *Mission) ApplicationByApplicant(applicantID string) *Application {
	for i := range m.Applications {
		if m.Applications[i].ApplicantID == applicantID {
			return &m.Applications[i]
		}
	}
	return nil
}

// AcceptedApplication returns the single accepted application, or nil when
// none has been accepted yet.
func (m *Mission) AcceptedApplication() *Application {
	for i := range m.Applications {
		if m.Applications[i].Status == ApplicationAccepted {
			return &m.Applications[i]
		}
	}
	return nil
}
