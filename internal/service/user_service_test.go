// internal/service/user_service_test.go
package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cardledger/internal/domain"
	"cardledger/internal/repository"
	"cardledger/internal/util"
)

// fakeUserStore is an in-memory user store implementing both
// repository.TxRunner and repository.UserRepository. Transactions are
// serialized with a mutex and roll back by restoring a snapshot, which
// mirrors the check-then-act isolation the real store provides with read
// committed plus the unique index on users.email.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by userID
	calls int                     // store operations performed
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) WithinTx(ctx context.Context, fn func(q repository.DBExecutor) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := make(map[string]*domain.User, len(f.users))
	for id, u := range f.users {
		copied := *u
		snapshot[id] = &copied
	}

	if err := fn(nil); err != nil {
		f.users = snapshot // rollback
		return err
	}
	return nil
}

func (f *fakeUserStore) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	f.calls++
	copied := *user
	f.users[user.UserID] = &copied
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, util.ErrNotFound
}

func (f *fakeUserStore) UpdateEmail(ctx context.Context, q repository.DBExecutor, userID, email string) (int64, error) {
	f.calls++
	u, ok := f.users[userID]
	if !ok {
		return 0, nil
	}
	u.Email = email
	return 1, nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, q repository.DBExecutor, userID, passwordHash string) (int64, error) {
	f.calls++
	u, ok := f.users[userID]
	if !ok {
		return 0, nil
	}
	u.Password = passwordHash
	return 1, nil
}

func (f *fakeUserStore) UpdateName(ctx context.Context, q repository.DBExecutor, userID string, firstName, lastName *string) (int64, error) {
	f.calls++
	u, ok := f.users[userID]
	if !ok {
		return 0, nil
	}
	if firstName != nil {
		u.FirstName = *firstName
	}
	if lastName != nil {
		u.LastName = *lastName
	}
	return 1, nil
}

func (f *fakeUserStore) byEmail(email string) []*domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []*domain.User
	for _, u := range f.users {
		if u.Email == email {
			matches = append(matches, u)
		}
	}
	return matches
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	firstID, err := svc.Create(context.Background(), "x@y.com", "Ada", "Lovelace", "secret")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "x@y.com", "Charles", "Babbage", "secret")
	assert.ErrorIs(t, err, util.ErrDuplicateEmail)

	// The first user is unaffected and no second record was persisted.
	holders := store.byEmail("x@y.com")
	require.Len(t, holders, 1)
	assert.Equal(t, firstID, holders[0].UserID)
	assert.Equal(t, "Ada", holders[0].FirstName)
}

func TestCreateUserInvalidEmailSkipsStore(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	_, err := svc.Create(context.Background(), "not-an-email", "Ada", "Lovelace", "secret")
	assert.ErrorIs(t, err, util.ErrInvalidEmail)
	assert.Zero(t, store.calls)
}

func TestCreateUserHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	userID, err := svc.Create(context.Background(), "ada@lovelace.org", "Ada", "Lovelace", "secret")
	require.NoError(t, err)

	stored := store.users[userID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestUpdateEmailIdempotentSelfUpdate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	userID, err := svc.Create(context.Background(), "x@y.com", "Ada", "Lovelace", "secret")
	require.NoError(t, err)

	// Re-submitting the current email is not a duplicate.
	err = svc.UpdateEmail(context.Background(), userID, "x@y.com")
	assert.NoError(t, err)
}

func TestUpdateEmailRejectsAnotherUsersEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	_, err := svc.Create(context.Background(), "x@y.com", "Ada", "Lovelace", "secret")
	require.NoError(t, err)
	otherID, err := svc.Create(context.Background(), "other@y.com", "Charles", "Babbage", "secret")
	require.NoError(t, err)

	err = svc.UpdateEmail(context.Background(), otherID, "x@y.com")
	assert.ErrorIs(t, err, util.ErrDuplicateEmail)

	// The losing update persisted nothing.
	assert.Len(t, store.byEmail("x@y.com"), 1)
	assert.Len(t, store.byEmail("other@y.com"), 1)
}

func TestUpdateNameUnknownUserIsNotFound(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	first := "Ada"
	err := svc.UpdateName(context.Background(), "ghost", &first, nil)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
	assert.NotContains(t, store.users, "ghost")
}

func TestUpdateNameRequiresAField(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	err := svc.UpdateName(context.Background(), "any", nil, nil)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
	assert.Zero(t, store.calls)
}

func TestUpdatePasswordUnknownUserIsNotFound(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	err := svc.UpdatePassword(context.Background(), "ghost", "secret")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestConcurrentEmailUpdatesExactlyOneWins(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, store)

	aliceID, err := svc.Create(context.Background(), "alice@mail.com", "Alice", "A", "secret")
	require.NoError(t, err)
	bobID, err := svc.Create(context.Background(), "bob@mail.com", "Bob", "B", "secret")
	require.NoError(t, err)

	// Both race to claim the same unused email.
	contested := "new@mail.com"
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i, id := range []string{aliceID, bobID} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = svc.UpdateEmail(context.Background(), id, contested)
		}(i, id)
	}
	wg.Wait()

	winners, losers := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case util.IsError(err, util.ErrDuplicateEmail):
			losers++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, losers)
	assert.Len(t, store.byEmail(contested), 1)
}
