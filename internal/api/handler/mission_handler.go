package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pairui/mission-board/internal/core/ports"
)

// MissionHandler handles HTTP requests for mission lifecycle operations.
type MissionHandler struct {
	service ports.MissionService
}

func NewMissionHandler(service ports.MissionService) *MissionHandler {
	return &MissionHandler{service: service}
}

// Create handles POST /api/missions.
//
// @Summary      Post a new mission
// @Tags         missions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMissionRequest  true  "Mission details"
// @Success      201   {object}  missionResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/missions [post]
func (h *MissionHandler) Create(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req createMissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mission, err := h.service.Create(c.Request().Context(), ports.CreateMissionInput{
		CreatorID: userID,
		Name:      req.Name,
		Context:   req.Context,
		Demand:    req.Demand,
		UILibrary: req.UILibrary,
		DueDate:   req.DueDate,
		Credits:   req.Credits,
		FigmaLink: req.FigmaLink,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMissionResponse(mission))
}

// List handles GET /api/missions.
//
// @Summary      List missions
// @Tags         missions
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by mission status"
// @Param        ui_library    query     string  false  "Filter by UI library"
// @Param        creator_role  query     string  false  "Filter by creator role"
// @Param        creator_id    query     string  false  "Missions posted by this user"
// @Param        applicant_id  query     string  false  "Missions this user applied to"
// @Param        search        query     string  false  "Substring match on mission name"
// @Param        page          query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  listMissionsResponse
// @Router       /api/missions [get]
func (h *MissionHandler) List(c echo.Context) error {
	if _, err := requesterID(c); err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListMissionsInput{
		Status:      c.QueryParam("status"),
		UILibrary:   c.QueryParam("ui_library"),
		CreatorRole: c.QueryParam("creator_role"),
		CreatorID:   c.QueryParam("creator_id"),
		ApplicantID: c.QueryParam("applicant_id"),
		Search:      c.QueryParam("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /api/missions/:id.
//
// @Summary      Get a mission by id
// @Tags         missions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Mission id"
// @Success      200  {object}  missionResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/missions/{id} [get]
func (h *MissionHandler) Get(c echo.Context) error {
	if _, err := requesterID(c); err != nil {
		return err
	}

	mission, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMissionResponse(mission))
}

// Apply handles POST /api/missions/:id/apply.
//
// @Summary      Apply to an open mission
// @Tags         missions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Mission id"
// @Param        body  body      applyRequest  true  "Application note"
// @Success      200   {object}  missionResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/missions/{id}/apply [post]
func (h *MissionHandler) Apply(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	mission, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		MissionID:   c.Param("id"),
		ApplicantID: userID,
		Note:        req.Note,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMissionResponse(mission))
}

// Respond handles PUT /api/missions/:id/applications/:applicationId.
//
// @Summary      Accept or reject an application
// @Tags         missions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      string          true  "Mission id"
// @Param        applicationId  path      string          true  "Application id"
// @Param        body           body      respondRequest  true  "Decision"
// @Success      200            {object}  missionResponse
// @Failure      403            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /api/missions/{id}/applications/{applicationId} [put]
func (h *MissionHandler) Respond(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mission, err := h.service.RespondToApplication(c.Request().Context(), ports.RespondInput{
		MissionID:     c.Param("id"),
		ApplicationID: c.Param("applicationId"),
		RequesterID:   userID,
		Status:        req.Status,
		RejectionNote: req.RejectionNote,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMissionResponse(mission))
}

// Submit handles PUT /api/missions/:id/submit.
//
// @Summary      Submit (or resubmit) work for a mission
// @Tags         missions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Mission id"
// @Param        body  body      submitWorkRequest  true  "Work product link"
// @Success      200   {object}  missionResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/missions/{id}/submit [put]
func (h *MissionHandler) Submit(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req submitWorkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mission, err := h.service.SubmitWork(c.Request().Context(), ports.SubmitWorkInput{
		MissionID:   c.Param("id"),
		ApplicantID: userID,
		Link:        req.SubmittedLink,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMissionResponse(mission))
}

// RequestRevision handles PUT /api/missions/:id/revision.
//
// @Summary      Request a revision on submitted work
// @Tags         missions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Mission id"
// @Param        body  body      requestRevisionRequest  true  "Revision comments"
// @Success      200   {object}  missionResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/missions/{id}/revision [put]
func (h *MissionHandler) RequestRevision(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req requestRevisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mission, err := h.service.RequestRevision(c.Request().Context(), ports.RequestRevisionInput{
		MissionID:   c.Param("id"),
		RequesterID: userID,
		Comments:    req.Comments,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMissionResponse(mission))
}

// Feedback handles PUT /api/missions/:id/feedback.
//
// @Summary      Provide feedback and complete the mission
// @Tags         missions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Mission id"
// @Param        body  body      feedbackRequest  true  "Rating and comments"
// @Success      200   {object}  missionResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/missions/{id}/feedback [put]
func (h *MissionHandler) Feedback(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mission, err := h.service.ProvideFeedback(c.Request().Context(), ports.FeedbackInput{
		MissionID:   c.Param("id"),
		RequesterID: userID,
		Rating:      req.Rating,
		Comments:    req.Comments,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMissionResponse(mission))
}

// Update handles PUT /api/missions/:id.
//
// @Summary      Edit an open mission
// @Tags         missions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Mission id"
// @Param        body  body      updateMissionRequest  true  "Editable fields"
// @Success      200   {object}  missionResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/missions/{id} [put]
func (h *MissionHandler) Update(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req updateMissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	mission, err := h.service.Update(c.Request().Context(), ports.UpdateMissionInput{
		MissionID:   c.Param("id"),
		RequesterID: userID,
		Name:        req.Name,
		Context:     req.Context,
		Demand:      req.Demand,
		UILibrary:   req.UILibrary,
		DueDate:     req.DueDate,
		FigmaLink:   req.FigmaLink,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMissionResponse(mission))
}

// Delete handles DELETE /api/missions/:id.
//
// @Summary      Delete an open mission and refund its escrow
// @Tags         missions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Mission id"
// @Success      200  {object}  deleteMissionResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/missions/{id} [delete]
func (h *MissionHandler) Delete(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	result, err := h.service.Delete(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteMissionResponse{CreditsReturned: result.CreditsReturned})
}
