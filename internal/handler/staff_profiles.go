package handler

import (
	"errors"
	"net/http"

	"github.com/Razboth/Servicedesk-sub005/internal/domain"
	"github.com/Razboth/Servicedesk-sub005/internal/repository"
)

func (h *Handler) ListStaffProfiles(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branchId")
	if branchID == "" {
		h.errorResponse(w, r, "branchId is required")
		return
	}
	activeOnly := r.URL.Query().Get("activeOnly") == "true"

	profiles, err := h.repository.ListStaffProfiles(branchID, activeOnly)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff profiles fetched", profiles)
}

func (h *Handler) GetStaffProfile(w http.ResponseWriter, r *http.Request) {
	profile := r.Context().Value(StaffProfileCtxKey).(*domain.StaffProfile)
	h.successResponse(w, r, "staff profile fetched", profile)
}

func (h *Handler) UpsertStaffProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID                    string                 `json:"userId" validate:"required"`
		BranchID                  string                 `json:"branchId" validate:"required"`
		Capabilities              []domain.ShiftType     `json:"capabilities" validate:"dive,oneof=NIGHT_WEEKDAY DAY_WEEKEND NIGHT_WEEKEND STANDBY_ONCALL STANDBY_BRANCH"`
		HasServerAccess           bool                   `json:"hasServerAccess"`
		HasSabbathRestriction     bool                   `json:"hasSabbathRestriction"`
		MaxNightShiftsPerMonth    int                    `json:"maxNightShiftsPerMonth" validate:"gte=0"`
		MinDaysBetweenNightShifts int                    `json:"minDaysBetweenNightShifts" validate:"gte=1"`
		PreferredShiftType        domain.ShiftPreference `json:"preferredShiftType" validate:"omitempty,oneof=DAY NIGHT"`
		IsActive                  bool                   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile := &domain.StaffProfile{
		UserID:                    req.UserID,
		BranchID:                  req.BranchID,
		Capabilities:              domain.NewCapabilitySet(req.Capabilities...),
		HasServerAccess:           req.HasServerAccess,
		HasSabbathRestriction:     req.HasSabbathRestriction,
		MaxNightShiftsPerMonth:    req.MaxNightShiftsPerMonth,
		MinDaysBetweenNightShifts: req.MinDaysBetweenNightShifts,
		PreferredShiftType:        req.PreferredShiftType,
		IsActive:                  req.IsActive,
	}

	// flags disallowed by the server-access rule are zeroed here, not rejected
	profile.Normalize()

	if err := h.repository.UpsertStaffProfile(profile); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff profile saved", profile)
}

func (h *Handler) DeleteStaffProfile(w http.ResponseWriter, r *http.Request) {
	profile := r.Context().Value(StaffProfileCtxKey).(*domain.StaffProfile)

	if err := h.repository.DeleteStaffProfile(profile.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileHasAssignments):
			h.errorResponse(w, r, "staff profile still owns shift assignments and cannot be deleted")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staff profile deleted", nil)
}
