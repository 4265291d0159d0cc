package domain

// Access guard: every mutating lifecycle operation passes one of these checks
// before any state is touched. A non-nil return aborts the operation with no
// partial state change.

// AuthorizeCreate gates mission creation: the creator must have chosen a role.
func AuthorizeCreate(creator *User) error {
	if !ValidRole(creator.Role) {
		return ErrRoleNotSelected
	}
	return nil
}

// AuthorizeApply gates applications: mission open, applicant of the role
// opposite to the creator's role at creation time, no prior application.
func (m *Mission) AuthorizeApply(applicant *User) error {
	if !ValidRole(applicant.Role) {
		return ErrRoleNotSelected
	}
	if applicant.Role != OppositeRole(m.CreatorRole) {
		return ErrRoleMismatch
	}
	if m.Status != MissionOpen {
		return ErrMissionNotOpen
	}
	if m.ApplicationByApplicant(applicant.ID) != nil {
		return ErrDuplicateApplication
	}
	return nil
}

// AuthorizeCreator gates creator-only operations (respond, feedback, revision,
// edit, delete).
func (m *Mission) AuthorizeCreator(requesterID string) error {
	if m.CreatorID != requesterID {
		return ErrNotAuthorized
	}
	return nil
}

// AuthorizeSubmit gates work submission: the requester must hold the accepted
// application on this mission.
func (m *Mission) AuthorizeSubmit(applicantID string) (*Application, error) {
	app := m.ApplicationByApplicant(applicantID)
	if app == nil || app.Status != ApplicationAccepted {
		return nil, ErrNotAcceptedApplicant
	}
	return app, nil
}

// AuthorizeEdit gates updates and deletion: creator-only, and only while the
// mission is still open.
func (m *Mission) AuthorizeEdit(requesterID string) error {
	if err := m.AuthorizeCreator(requesterID); err != nil {
		return err
	}
	if m.Status != MissionOpen {
		return ErrMissionNotOpen
	}
	return nil
}
