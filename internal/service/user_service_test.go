package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/queue"
	"github.com/drvince/womb-backend/internal/repository"
)

type fakeUserStore struct {
	users   map[string]model.User
	updated []model.User
	deleted []string
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]model.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) List(_ context.Context, skip, limit int) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, u model.User) (model.User, error) {
	if _, ok := s.users[u.ID]; !ok {
		return model.User{}, repository.ErrNotFound
	}
	s.users[u.ID] = u
	s.updated = append(s.updated, u)
	return u, nil
}

func (s *fakeUserStore) DeleteCascade(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type fakeNotifier struct {
	approved    []string
	deactivated []string
	fail        bool
}

func (n *fakeNotifier) SendUserApproved(email, _ string) error {
	n.approved = append(n.approved, email)
	if n.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (n *fakeNotifier) SendUserDeactivated(email, _ string) error {
	n.deactivated = append(n.deactivated, email)
	if n.fail {
		return errors.New("smtp down")
	}
	return nil
}

type fakePublisher struct {
	events []queue.UserStatusChangedEvent
	fail   bool
}

func (p *fakePublisher) Publish(_ context.Context, ev queue.UserStatusChangedEvent) error {
	p.events = append(p.events, ev)
	if p.fail {
		return errors.New("broker down")
	}
	return nil
}

func statusPtr(s model.Status) *model.Status { return &s }

func TestUpdateUser_TransitionNotifications(t *testing.T) {
	cases := []struct {
		name            string
		from, to        model.Status
		wantApproved    int
		wantDeactivated int
	}{
		{"pending to active sends approval", model.StatusPending, model.StatusActive, 1, 0},
		{"inactive to active sends approval", model.StatusInactive, model.StatusActive, 1, 0},
		{"active to inactive sends deactivation", model.StatusActive, model.StatusInactive, 0, 1},
		{"pending to inactive sends deactivation", model.StatusPending, model.StatusInactive, 0, 1},
		{"active to pending sends nothing", model.StatusActive, model.StatusPending, 0, 0},
		{"inactive to pending sends nothing", model.StatusInactive, model.StatusPending, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeUserStore(model.User{
				ID: "u-1", Email: "alice@example.com", FullName: "Alice", Status: tc.from,
			})
			notifier := &fakeNotifier{}
			publisher := &fakePublisher{}
			svc := NewUserService(store, notifier, publisher)

			updated, err := svc.UpdateUser(context.Background(), "u-1", UserPatch{Status: statusPtr(tc.to)}, "admin@example.com")
			require.NoError(t, err)
			assert.Equal(t, tc.to, updated.Status)

			assert.Len(t, notifier.approved, tc.wantApproved)
			assert.Len(t, notifier.deactivated, tc.wantDeactivated)

			// Every status change goes onto the event bus, email or not.
			require.Len(t, publisher.events, 1)
			ev := publisher.events[0]
			assert.Equal(t, string(tc.from), ev.OldStatus)
			assert.Equal(t, string(tc.to), ev.NewStatus)
			assert.Equal(t, "admin@example.com", ev.ChangedBy)
		})
	}
}

func TestUpdateUser_SameStatusNoNotification(t *testing.T) {
	store := newFakeUserStore(model.User{ID: "u-1", Email: "alice@example.com", Status: model.StatusActive})
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	svc := NewUserService(store, notifier, publisher)

	name := "Alice Updated"
	_, err := svc.UpdateUser(context.Background(), "u-1", UserPatch{FullName: &name}, "admin@example.com")
	require.NoError(t, err)

	assert.Empty(t, notifier.approved)
	assert.Empty(t, notifier.deactivated)
	assert.Empty(t, publisher.events)
}

func TestUpdateUser_NotificationFailureAbsorbed(t *testing.T) {
	store := newFakeUserStore(model.User{ID: "u-1", Email: "alice@example.com", Status: model.StatusPending})
	notifier := &fakeNotifier{fail: true}
	publisher := &fakePublisher{fail: true}
	svc := NewUserService(store, notifier, publisher)

	updated, err := svc.UpdateUser(context.Background(), "u-1", UserPatch{Status: statusPtr(model.StatusActive)}, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, updated.Status)
	// The failed email was still attempted and the update is committed.
	assert.Len(t, notifier.approved, 1)
	assert.Equal(t, model.StatusActive, store.users["u-1"].Status)
}

func TestUpdateUser_StampsActingAdmin(t *testing.T) {
	store := newFakeUserStore(model.User{ID: "u-1", Email: "alice@example.com", Status: model.StatusActive, UpdatedBy: "old@example.com"})
	svc := NewUserService(store, &fakeNotifier{}, &fakePublisher{})

	updated, err := svc.UpdateUser(context.Background(), "u-1", UserPatch{}, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", updated.UpdatedBy)
}

func TestUpdateUser_PartialPatch(t *testing.T) {
	store := newFakeUserStore(model.User{
		ID: "u-1", Email: "alice@example.com", Status: model.StatusActive,
		FullName: "Alice", City: "Lisbon",
	})
	svc := NewUserService(store, &fakeNotifier{}, &fakePublisher{})

	city := "Porto"
	updated, err := svc.UpdateUser(context.Background(), "u-1", UserPatch{City: &city}, "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Porto", updated.City)
	assert.Equal(t, "Alice", updated.FullName, "unset fields stay untouched")
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), &fakeNotifier{}, &fakePublisher{})

	_, err := svc.UpdateUser(context.Background(), "missing", UserPatch{}, "admin@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	store := newFakeUserStore(model.User{ID: "u-1", Email: "alice@example.com"})
	svc := NewUserService(store, &fakeNotifier{}, &fakePublisher{})

	require.NoError(t, svc.DeleteUser(context.Background(), "u-1"))
	assert.Equal(t, []string{"u-1"}, store.deleted)

	err := svc.DeleteUser(context.Background(), "u-1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
