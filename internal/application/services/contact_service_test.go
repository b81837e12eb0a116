package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-service/internal/domain/entities"
	"contact-service/internal/infrastructure/db/postgres"
	"contact-service/internal/shared"
)

type contactFixture struct {
	svc   *ContactService
	owner *entities.User
	other *entities.User
}

func newContactFixture(t *testing.T) *contactFixture {
	t.Helper()

	db := newTestDB(t)
	users := postgres.NewUserRepository(db)
	ctx := context.Background()

	owner, err := users.Create(ctx, &entities.User{Username: "annlee", Email: "owner@example.com", Password: "x"})
	require.NoError(t, err)
	other, err := users.Create(ctx, &entities.User{Username: "bobray", Email: "other@example.com", Password: "x"})
	require.NoError(t, err)

	return &contactFixture{
		svc:   NewContactService(postgres.NewContactRepository(db)),
		owner: owner,
		other: other,
	}
}

func annInput() ContactInput {
	return ContactInput{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@example.com",
		PhoneNumber: "+1000",
	}
}

func TestContactCreateThenGetScenario(t *testing.T) {
	t.Parallel()

	f := newContactFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, annInput(), f.owner)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
	assert.Equal(t, f.owner.ID, created.UserID)

	got, err := f.svc.Get(ctx, created.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = f.svc.Get(ctx, created.ID, f.other)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestContactCreateValidation(t *testing.T) {
	t.Parallel()

	f := newContactFixture(t)
	ctx := context.Background()

	input := annInput()
	input.Email = "not-an-email"

	_, err := f.svc.Create(ctx, input, f.owner)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestContactListPaginationDefaults(t *testing.T) {
	t.Parallel()

	f := newContactFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		input := annInput()
		input.Email = fmt.Sprintf("c%d@example.com", i)
		_, err := f.svc.Create(ctx, input, f.owner)
		require.NoError(t, err)
	}

	// Negative skip and zero limit fall back to defaults.
	all, err := f.svc.List(ctx, f.owner, -1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	first, err := f.svc.List(ctx, f.owner, 0, 2)
	require.NoError(t, err)
	second, err := f.svc.List(ctx, f.owner, 2, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[1].ID, second[0].ID)

	none, err := f.svc.List(ctx, f.other, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestContactUpdateOwnershipAndAbsence(t *testing.T) {
	t.Parallel()

	f := newContactFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, annInput(), f.owner)
	require.NoError(t, err)

	input := annInput()
	input.FirstName = "Anna"

	_, err = f.svc.Update(ctx, created.ID, input, f.other)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = f.svc.Update(ctx, created.ID+100, input, f.owner)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	updated, err := f.svc.Update(ctx, created.ID, input, f.owner)
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FirstName)
}

func TestContactRemove(t *testing.T) {
	t.Parallel()

	f := newContactFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, annInput(), f.owner)
	require.NoError(t, err)

	_, err = f.svc.Remove(ctx, created.ID, f.other)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	snapshot, err := f.svc.Remove(ctx, created.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, snapshot.ID)

	_, err = f.svc.Remove(ctx, created.ID, f.owner)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
