package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/logger"
	"github.com/sundevilsync/sds-backend/internal/store/schema"
)

// groupFixture mirrors the JSON shape of the group seed file
type groupFixture struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Campus      string   `json:"campus"`
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
	Members     int64    `json:"members"`
	Website     string   `json:"website"`
	Contact     string   `json:"contact"`
	Mission     string   `json:"mission"`
	Benefits    []string `json:"benefits"`
}

// eventFixture mirrors the JSON shape of the event seed file
type eventFixture struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	EndTime      string   `json:"endTime"`
	Location     string   `json:"location"`
	Campus       string   `json:"campus"`
	Description  string   `json:"description"`
	HostGroup    string   `json:"hostGroup"`
	HostGroupID  int64    `json:"hostGroupId"`
	Category     []string `json:"category"`
	SpotsTotal   int64    `json:"spotsTotal"`
	SpotsLeft    int64    `json:"spotsLeft"`
	Attendees    int64    `json:"attendees"`
	RSVPRequired bool     `json:"rsvpRequired"`
}

// SeedGroupsFromFile loads the group fixture file and inserts any groups the
// database does not already have. A missing file is not an error.
func SeedGroupsFromFile(ctx context.Context, s Store, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.WarnCtx(ctx, "group seed file not found, skipping")
			return nil
		}
		return fmt.Errorf("failed to read group seed file: %w", err)
	}

	var fixtures []groupFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("failed to parse group seed file: %w", err)
	}

	groups := make([]schema.Group, 0, len(fixtures))
	for _, f := range fixtures {
		categories, _ := json.Marshal(f.Categories)
		benefits, _ := json.Marshal(f.Benefits)
		groups = append(groups, schema.Group{
			ID:          f.ID,
			Name:        f.Name,
			Campus:      f.Campus,
			Categories:  string(categories),
			Description: f.Description,
			Members:     f.Members,
			Website:     f.Website,
			Contact:     f.Contact,
			Mission:     f.Mission,
			Benefits:    string(benefits),
		})
	}
	return s.UpsertGroups(ctx, groups)
}

// SeedEventsFromFile loads the event fixture file and inserts any events the
// database does not already have. Existing rows keep their live seat
// counters. A missing file is not an error.
func SeedEventsFromFile(ctx context.Context, s Store, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.WarnCtx(ctx, "event seed file not found, skipping")
			return nil
		}
		return fmt.Errorf("failed to read event seed file: %w", err)
	}

	var fixtures []eventFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("failed to parse event seed file: %w", err)
	}

	events := make([]schema.Event, 0, len(fixtures))
	for _, f := range fixtures {
		category, _ := json.Marshal(f.Category)
		events = append(events, schema.Event{
			ID:             f.ID,
			Title:          f.Title,
			Date:           f.Date,
			Time:           f.Time,
			EndTime:        f.EndTime,
			Location:       f.Location,
			Campus:         f.Campus,
			Description:    f.Description,
			HostGroup:      f.HostGroup,
			HostGroupID:    f.HostGroupID,
			Category:       string(category),
			SeatsTotal:     f.SpotsTotal,
			SeatsAvailable: f.SpotsLeft,
			AttendeeCount:  f.Attendees,
			RSVPRequired:   f.RSVPRequired,
		})
	}
	return s.UpsertEvents(ctx, events)
}

// EnsureAccount creates the account when the username is free, otherwise
// leaves the existing account untouched except for elevating its role when it
// differs. Used for the admin bootstrap on startup.
func EnsureAccount(ctx context.Context, s Store, username, email, password string, role domain.Role, balance int64) error {
	existing, err := s.GetAccountByUsername(ctx, username)
	if err == nil {
		if existing.Role != role {
			return s.UpdateAccountRole(ctx, existing.ID, role)
		}
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.CreateAccount(ctx, &schema.Account{
		Username:      username,
		Email:         email,
		PasswordHash:  string(hash),
		Role:          role,
		RewardBalance: balance,
	})
}
