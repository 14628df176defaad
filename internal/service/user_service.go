// Package service holds the user lifecycle manager: admin-driven profile and
// status updates, their side-effect notifications, and cascading deletion.
package service

import (
	"context"
	"log"
	"time"

	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/queue"
)

// UserStore is the slice of the user repository the lifecycle manager needs.
type UserStore interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
	DeleteCascade(ctx context.Context, id string) error
}

// Notifier delivers the transition emails. Implementations are best-effort;
// the service logs failures and never rolls back the committed update.
type Notifier interface {
	SendUserApproved(userEmail, userName string) error
	SendUserDeactivated(userEmail, userName string) error
}

// EventPublisher emits lifecycle events to the broker, also best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.UserStatusChangedEvent) error
}

// UserPatch carries the fields an admin may change. Nil means "leave as is";
// the wire-level "status" field maps onto the lifecycle status column.
type UserPatch struct {
	Role               *model.Role
	Status             *model.Status
	FullName           *string
	Gender             *string
	DOB                *string
	Nationality        *string
	Phone              *string
	City               *string
	Country            *string
	Occupation         *string
	MaritalStatus      *string
	SleepHours         *float64
	ExerciseFrequency  *string
	SmokingStatus      *string
	AlcoholConsumption *string
}

// UserService owns user lifecycle transitions and deletion.
type UserService struct {
	users    UserStore
	notifier Notifier
	events   EventPublisher
}

func NewUserService(users UserStore, notifier Notifier, events EventPublisher) *UserService {
	return &UserService{users: users, notifier: notifier, events: events}
}

// GetUser loads one user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	return s.users.List(ctx, skip, limit)
}

// UpdateUser applies an admin patch to a user, stamps the acting admin's
// email, persists, and fires transition notifications afterwards. The status
// change is committed before any notification is attempted, so notification
// failures are absorbed.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch UserPatch, actingAdmin string) (model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	oldStatus := u.Status

	applyPatch(&u, patch)
	u.UpdatedBy = actingAdmin

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return model.User{}, err
	}

	if updated.Status != oldStatus {
		s.notifyTransition(ctx, updated, oldStatus, actingAdmin)
	}
	return updated, nil
}

// DeleteUser removes the user and all owned telemetry and device-control
// records atomically. ErrNotFound propagates for the handler's 404.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.DeleteCascade(ctx, id)
}

func applyPatch(u *model.User, p UserPatch) {
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.DOB != nil {
		u.DOB = *p.DOB
	}
	if p.Nationality != nil {
		u.Nationality = *p.Nationality
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.Occupation != nil {
		u.Occupation = *p.Occupation
	}
	if p.MaritalStatus != nil {
		u.MaritalStatus = *p.MaritalStatus
	}
	if p.SleepHours != nil {
		u.SleepHours = p.SleepHours
	}
	if p.ExerciseFrequency != nil {
		u.ExerciseFrequency = *p.ExerciseFrequency
	}
	if p.SmokingStatus != nil {
		u.SmokingStatus = *p.SmokingStatus
	}
	if p.AlcoholConsumption != nil {
		u.AlcoholConsumption = *p.AlcoholConsumption
	}
}

// notifyTransition fires the email matching the status transition and
// publishes the lifecycle event. Approval emails go out when a blocked
// account becomes Active; deactivation emails when a usable or pending
// account becomes Inactive. Everything here is best-effort.
func (s *UserService) notifyTransition(ctx context.Context, u model.User, oldStatus model.Status, actingAdmin string) {
	switch {
	case u.Status == model.StatusActive &&
		(oldStatus == model.StatusPending || oldStatus == model.StatusInactive):
		if err := s.notifier.SendUserApproved(u.Email, u.FullName); err != nil {
			log.Printf("lifecycle: approved notification for %s failed: %v", u.Email, err)
		}
	case u.Status == model.StatusInactive &&
		(oldStatus == model.StatusActive || oldStatus == model.StatusPending):
		if err := s.notifier.SendUserDeactivated(u.Email, u.FullName); err != nil {
			log.Printf("lifecycle: deactivated notification for %s failed: %v", u.Email, err)
		}
	}

	if s.events != nil {
		ev := queue.UserStatusChangedEvent{
			UserID:    u.ID,
			Email:     u.Email,
			FullName:  u.FullName,
			OldStatus: string(oldStatus),
			NewStatus: string(u.Status),
			ChangedBy: actingAdmin,
			ChangedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.events.Publish(ctx, ev); err != nil {
			log.Printf("lifecycle: publish status event for %s failed: %v", u.Email, err)
		}
	}
}
