package domain

import (
	"errors"
	"testing"
)

func TestAuthorizeCreate(t *testing.T) {
	if err := AuthorizeCreate(&User{Role: RoleDeveloper}); err != nil {
		t.Errorf("developer may create: %v", err)
	}
	if err := AuthorizeCreate(&User{Role: ""}); !errors.Is(err, ErrRoleNotSelected) {
		t.Errorf("expected ErrRoleNotSelected, got %v", err)
	}
}

func TestAuthorizeApply(t *testing.T) {
	mission := &Mission{
		CreatorID:   "dev_1",
		CreatorRole: RoleDeveloper,
		Status:      MissionOpen,
	}

	if err := mission.AuthorizeApply(&User{ID: "des_1", Role: RoleDesigner}); err != nil {
		t.Errorf("opposite role may apply: %v", err)
	}
	if err := mission.AuthorizeApply(&User{ID: "dev_2", Role: RoleDeveloper}); !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("expected ErrRoleMismatch, got %v", err)
	}
	if err := mission.AuthorizeApply(&User{ID: "new_1", Role: ""}); !errors.Is(err, ErrRoleNotSelected) {
		t.Errorf("expected ErrRoleNotSelected for a role-less applicant, got %v", err)
	}

	closed := &Mission{CreatorRole: RoleDeveloper, Status: MissionInProgress}
	if err := closed.AuthorizeApply(&User{ID: "des_1", Role: RoleDesigner}); !errors.Is(err, ErrMissionNotOpen) {
		t.Errorf("expected ErrMissionNotOpen, got %v", err)
	}

	applied := &Mission{
		CreatorRole:  RoleDeveloper,
		Status:       MissionOpen,
		Applications: []Application{{ID: "a1", ApplicantID: "des_1", Status: ApplicationPending}},
	}
	if err := applied.AuthorizeApply(&User{ID: "des_1", Role: RoleDesigner}); !errors.Is(err, ErrDuplicateApplication) {
		t.Errorf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestAuthorizeApply_RoleMismatchBeatsStatus(t *testing.T) {
	// A same-role user on a closed mission fails the role check first.
	mission := &Mission{CreatorRole: RoleDesigner, Status: MissionCompleted}
	err := mission.AuthorizeApply(&User{ID: "des_2", Role: RoleDesigner})
	if !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("expected ErrRoleMismatch, got %v", err)
	}
}

func TestAuthorizeCreator(t *testing.T) {
	mission := &Mission{CreatorID: "dev_1"}
	if err := mission.AuthorizeCreator("dev_1"); err != nil {
		t.Errorf("creator must pass: %v", err)
	}
	if err := mission.AuthorizeCreator("des_1"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestAuthorizeSubmit(t *testing.T) {
	mission := &Mission{
		Applications: []Application{
			{ID: "a1", ApplicantID: "des_1", Status: ApplicationAccepted},
			{ID: "a2", ApplicantID: "des_2", Status: ApplicationRejected},
		},
	}

	app, err := mission.AuthorizeSubmit("des_1")
	if err != nil || app.ID != "a1" {
		t.Errorf("accepted applicant must pass: app=%+v err=%v", app, err)
	}

	if _, err := mission.AuthorizeSubmit("des_2"); !errors.Is(err, ErrNotAcceptedApplicant) {
		t.Errorf("rejected applicant: expected ErrNotAcceptedApplicant, got %v", err)
	}
	if _, err := mission.AuthorizeSubmit("stranger"); !errors.Is(err, ErrNotAcceptedApplicant) {
		t.Errorf("non-applicant: expected ErrNotAcceptedApplicant, got %v", err)
	}
}

func TestAuthorizeEdit(t *testing.T) {
	open := &Mission{CreatorID: "dev_1", Status: MissionOpen}
	if err := open.AuthorizeEdit("dev_1"); err != nil {
		t.Errorf("creator may edit an open mission: %v", err)
	}
	if err := open.AuthorizeEdit("someone_else"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}

	inProgress := &Mission{CreatorID: "dev_1", Status: MissionInProgress}
	if err := inProgress.AuthorizeEdit("dev_1"); !errors.Is(err, ErrMissionNotOpen) {
		t.Errorf("expected ErrMissionNotOpen, got %v", err)
	}
}
