package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
	"github.com/Razboth/Servicedesk-sub005/internal/roster"
)

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branchId")
	if branchID == "" {
		h.errorResponse(w, r, "branchId is required")
		return
	}

	// with month and year the listing narrows to the single branch-month row
	if monthStr, yearStr := r.URL.Query().Get("month"), r.URL.Query().Get("year"); monthStr != "" && yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}

		schedule, err := h.repository.GetScheduleByBranchMonth(branchID, month, year)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "schedules fetched", []*domain.Schedule{})
		case err != nil:
			h.internalServerError(w, r, err)
		default:
			h.successResponse(w, r, "schedules fetched", []*domain.Schedule{schedule})
		}
		return
	}

	schedules, err := h.repository.ListSchedules(branchID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedules fetched", schedules)
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BranchID string `json:"branchId" validate:"required"`
		Month    int    `json:"month" validate:"required,min=1,max=12"`
		Year     int    `json:"year" validate:"required,min=2020,max=2100"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := &domain.Schedule{
		BranchID: req.BranchID,
		Month:    req.Month,
		Year:     req.Year,
	}
	if err := h.repository.CreateSchedule(schedule); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "schedules_branch_id_month_year_key":
			h.errorResponse(w, r, "a schedule for this branch and month already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule created", schedule)
}

// GetSchedule returns the schedule with its persisted assignments plus the
// LEAVE rows derived from the leave overlay. The overlay fetch degrading is
// deliberate: without leave data the roster still renders, just without
// leave markers.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtxKey).(*domain.Schedule)

	leaves, err := h.repository.ListApprovedLeaves(schedule.BranchID, schedule.Month, schedule.Year)
	if err != nil {
		slog.Warn("could not fetch approved leaves, rendering schedule without leave markers", "scheduleID", schedule.ID, "error", err)
	} else {
		schedule.Assignments = append(schedule.Assignments, roster.LeaveAssignments(leaves, schedule.Month, schedule.Year)...)
	}

	h.successResponse(w, r, "schedule fetched", schedule)
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BranchID     string   `json:"branchId" validate:"required"`
		Month        int      `json:"month" validate:"required,min=1,max=12"`
		Year         int      `json:"year" validate:"required,min=2020,max=2100"`
		HolidayDates []string `json:"holidayDates"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	holidays := make([]calendar.Date, 0, len(req.HolidayDates))
	for _, s := range req.HolidayDates {
		d, err := calendar.Parse(s)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		holidays = append(holidays, d)
	}

	profiles, err := h.repository.ListStaffProfiles(req.BranchID, true)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// unlike schedule rendering, generating without leave data would silently
	// violate leave blocking, so a failed fetch aborts here
	leaves, err := h.repository.ListApprovedLeaves(req.BranchID, req.Month, req.Year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	overlay := roster.BuildOverlay(leaves, req.Month, req.Year)

	generator := roster.NewGenerator(profiles, overlay, holidays)
	result, err := generator.Generate(req.BranchID, req.Month, req.Year)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if violations := roster.Validate(result.Roster, profiles, overlay); len(violations) > 0 {
		h.internalServerError(w, r, fmt.Errorf("generated roster violates its own constraints: %+v", violations[0]))
		return
	}

	// reuse the branch-month schedule row if one exists, otherwise create it
	schedule, err := h.repository.GetScheduleByBranchMonth(req.BranchID, req.Month, req.Year)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		schedule = &domain.Schedule{BranchID: req.BranchID, Month: req.Month, Year: req.Year}
		if err := h.repository.CreateSchedule(schedule); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	case err != nil:
		h.internalServerError(w, r, err)
		return
	}
	result.Roster.ScheduleID = schedule.ID

	unlock, err := h.acquireCommitLock(r, schedule)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	defer unlock()

	if err := h.repository.DeleteAssignmentsForSchedule(schedule.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	batch := h.repository.BatchCreateAssignments(schedule.ID, result.Roster.CommitSet())

	h.notifyRequester(r, domain.MailRosterGenerated, domain.RosterGeneratedMailData{
		BranchID:    req.BranchID,
		Month:       req.Month,
		Year:        req.Year,
		Assignments: batch.Created,
		Gaps:        len(result.Gaps),
	})

	h.successResponse(w, r, "schedule generated", map[string]any{
		"scheduleId": schedule.ID,
		"gaps":       result.Gaps,
		"batch":      batch,
	})
}

// ApplyRosterEdit applies one interactive edit to the posted in-memory
// roster and returns the transformed roster. Nothing is persisted; the
// client commits the final roster in one batch.
func (h *Handler) ApplyRosterEdit(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtxKey).(*domain.Schedule)

	var req struct {
		Assignments []domain.ShiftAssignment `json:"assignments"`
		Edit        roster.Edit              `json:"edit" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	overlay := h.overlayForSchedule(schedule)
	editor := roster.NewEditor(overlay)

	current := roster.Roster{
		ScheduleID:  schedule.ID,
		BranchID:    schedule.BranchID,
		Month:       schedule.Month,
		Year:        schedule.Year,
		Assignments: req.Assignments,
	}

	edited, err := editor.Apply(current, req.Edit)
	if err != nil {
		if rej, ok := err.(*roster.Rejection); ok {
			h.writeJSON(w, r, http.StatusOK, Response{Success: false, Message: rej.Message, Data: rej})
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "edit applied", edited)
}

// CommitSchedule reconciles the posted roster with the store using
// clear-then-recreate. Commits for the same schedule are serialized through
// a redis lock; a failed delete phase aborts the whole commit, while create
// failures are reported per row.
func (h *Handler) CommitSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtxKey).(*domain.Schedule)

	var req struct {
		Assignments []domain.ShiftAssignment `json:"assignments"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	edited := roster.Roster{
		ScheduleID:  schedule.ID,
		BranchID:    schedule.BranchID,
		Month:       schedule.Month,
		Year:        schedule.Year,
		Assignments: req.Assignments,
	}

	unlock, err := h.acquireCommitLock(r, schedule)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	defer unlock()

	if err := h.repository.DeleteAssignmentsForSchedule(schedule.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	batch := h.repository.BatchCreateAssignments(schedule.ID, edited.CommitSet())

	h.notifyRequester(r, domain.MailRosterCommitted, domain.RosterCommittedMailData{
		BranchID: schedule.BranchID,
		Month:    schedule.Month,
		Year:     schedule.Year,
		Created:  batch.Created,
		Failed:   batch.Failed,
	})

	if batch.Failed > 0 {
		h.writeJSON(w, r, http.StatusOK, Response{
			Success: false,
			Message: fmt.Sprintf("%d of %d assignments failed to save", batch.Failed, batch.Created+batch.Failed),
			Data:    batch,
		})
		return
	}

	h.successResponse(w, r, "schedule saved", batch)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentId")

	if err := h.repository.DeleteAssignment(assignmentID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "assignment deleted", nil)
}

func (h *Handler) GetScheduleValidation(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtxKey).(*domain.Schedule)

	profiles, err := h.repository.ListStaffProfiles(schedule.BranchID, false)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	current := roster.Roster{
		ScheduleID:  schedule.ID,
		BranchID:    schedule.BranchID,
		Month:       schedule.Month,
		Year:        schedule.Year,
		Assignments: schedule.Assignments,
	}

	violations := roster.Validate(current, profiles, h.overlayForSchedule(schedule))
	h.successResponse(w, r, "validation computed", violations)
}

func (h *Handler) GetScheduleStatistics(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtxKey).(*domain.Schedule)

	profiles, err := h.repository.ListStaffProfiles(schedule.BranchID, false)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	current := roster.Roster{
		ScheduleID:  schedule.ID,
		BranchID:    schedule.BranchID,
		Month:       schedule.Month,
		Year:        schedule.Year,
		Assignments: schedule.Assignments,
	}

	h.successResponse(w, r, "statistics computed", roster.Statistics(current, profiles))
}

// overlayForSchedule builds the leave overlay for a schedule's month,
// degrading to an empty overlay when the leave subsystem is unavailable.
func (h *Handler) overlayForSchedule(schedule *domain.Schedule) *roster.Overlay {
	leaves, err := h.repository.ListApprovedLeaves(schedule.BranchID, schedule.Month, schedule.Year)
	if err != nil {
		slog.Warn("could not fetch approved leaves, proceeding without leave blocking", "scheduleID", schedule.ID, "error", err)
		leaves = nil
	}
	return roster.BuildOverlay(leaves, schedule.Month, schedule.Year)
}
