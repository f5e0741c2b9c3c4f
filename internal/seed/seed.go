package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
	"github.com/Razboth/Servicedesk-sub005/internal/repository"
)

type staffFixture struct {
	fullName        string
	role            domain.Role
	hasServerAccess bool
	sabbath         bool
	preference      domain.ShiftPreference
}

var staffFixtures = []staffFixture{
	{fullName: "Andi Pratama", role: domain.RoleTechnician, hasServerAccess: true, preference: domain.PreferenceNight},
	{fullName: "Budi Santoso", role: domain.RoleTechnician, hasServerAccess: false, preference: domain.PreferenceDay},
	{fullName: "Citra Lestari", role: domain.RoleTechnician, hasServerAccess: false, sabbath: true},
	{fullName: "Dewi Anggraini", role: domain.RoleTechnician, hasServerAccess: true},
	{fullName: "Eko Wijaya", role: domain.RoleTechnician, hasServerAccess: false, preference: domain.PreferenceNight},
	{fullName: "Fitri Handayani", role: domain.RoleManager, hasServerAccess: false},
}

func usernameOf(fullName string) string {
	return strings.ReplaceAll(strings.ToLower(fullName), " ", ".")
}

// SeedBranch populates one branch with users, staff profiles and a couple of
// approved leaves so the generator has something to chew on in development.
func SeedBranch(repo *repository.Repository, branchID, password string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash the seed password: %w", err)
	}

	var profiles []*domain.StaffProfile

	for _, fixture := range staffFixtures {
		username := usernameOf(fixture.fullName)
		user := &domain.User{
			Username:     username,
			PasswordHash: string(passwordHash),
			FullName:     fixture.fullName,
			Email:        username + "@servicedesk.example",
			Role:         fixture.role,
			BranchID:     branchID,
		}
		if err := repo.CreateUser(user); err != nil {
			return fmt.Errorf("could not create user %s: %w", username, err)
		}

		if fixture.role != domain.RoleTechnician {
			continue
		}

		caps := domain.NewCapabilitySet(domain.WorkShiftTypes...)
		profile := &domain.StaffProfile{
			UserID:                    user.ID,
			BranchID:                  branchID,
			Capabilities:              caps,
			HasServerAccess:           fixture.hasServerAccess,
			HasSabbathRestriction:     fixture.sabbath,
			MaxNightShiftsPerMonth:    6 + rand.Intn(4),
			MinDaysBetweenNightShifts: 2,
			PreferredShiftType:        fixture.preference,
			IsActive:                  true,
		}
		profile.Normalize()

		if err := repo.UpsertStaffProfile(profile); err != nil {
			return fmt.Errorf("could not create staff profile for %s: %w", username, err)
		}
		profiles = append(profiles, profile)

		slog.Info("seeded staff member", "username", username, "serverAccess", fixture.hasServerAccess)
	}

	// a few approved leaves next month, crossing a weekend
	if len(profiles) > 0 {
		today := calendar.FromTime(time.Now())
		nextMonth := today.Month%12 + 1
		year := today.Year
		if nextMonth == 1 {
			year++
		}

		leave := &domain.LeaveRequest{
			StaffProfileID: profiles[0].ID,
			StartDate:      calendar.NewDate(year, nextMonth, 10),
			EndDate:        calendar.NewDate(year, nextMonth, 14),
			Status:         domain.LeaveApproved,
		}
		if err := repo.CreateLeaveRequest(leave); err != nil {
			return fmt.Errorf("could not create seed leave: %w", err)
		}
	}

	return nil
}
