package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"addressbook/internal/domain"
	"addressbook/internal/repository"
	"addressbook/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingRepository fails every operation with err.
type failingRepository struct {
	err error
}

func (f failingRepository) Load(context.Context) (*domain.AddressBook, error) { return nil, f.err }
func (f failingRepository) Save(context.Context, *domain.AddressBook) error { return f.err }
func (f failingRepository) Close() error { return nil }

func newService(t *testing.T) (*service.ContactService, *repository.MemoryRepository, *domain.MockClock) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	clock := domain.NewMockClock(time.Date(2024, 5, 13, 9, 0, 0, 0, time.UTC)) // Monday
	svc := service.NewContactService(repo, clock, zap.NewNop())
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo, clock
}

func phoneStrings(phones []domain.Phone) []string {
	var out []string
	for _, p := range phones {
		out = append(out, p.String())
	}
	return out
}

func TestContactService_AddContact_Success(t *testing.T) {
	svc, _, _ := newService(t)

	require.NoError(t, svc.AddContact("John", "0123456789"))

	phones, err := svc.Phones("John")
	require.NoError(t, err)
	assert.Equal(t, []string{"0123456789"}, phoneStrings(phones))
}

func TestContactService_AddContact_Duplicate(t *testing.T) {
	svc, _, _ := newService(t)
	require.NoError(t, svc.AddContact("John", "0123456789"))

	err := svc.AddContact("John", "1111111111")
	assert.ErrorIs(t, err, domain.ErrContactExists)
}

func TestContactService_AddContact_InvalidPhoneStoresNothing(t *testing.T) {
	svc, _, _ := newService(t)

	err := svc.AddContact("John", "123")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Phones("John")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, svc.Contacts())
}

func TestContactService_ChangePhone(t *testing.T) {
	svc, _, _ := newService(t)
	require.NoError(t, svc.AddContact("John", "0123456789"))

	require.NoError(t, svc.ChangePhone("John", "0123456789", "9876543210"))

	phones, err := svc.Phones("John")
	require.NoError(t, err)
	assert.Equal(t, []string{"9876543210"}, phoneStrings(phones))

	err = svc.ChangePhone("John", "0000000000", "1111111111")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.ChangePhone("Nobody", "0123456789", "1111111111")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactService_RemovePhone(t *testing.T) {
	svc, _, _ := newService(t)
	require.NoError(t, svc.AddContact("John", "0123456789"))

	require.NoError(t, svc.RemovePhone("John", "0123456789"))

	phones, err := svc.Phones("John")
	require.NoError(t, err)
	assert.Empty(t, phones)

	assert.ErrorIs(t, svc.RemovePhone("Nobody", "0123456789"), domain.ErrNotFound)
}

func TestContactService_DeleteContact(t *testing.T) {
	svc, _, _ := newService(t)
	require.NoError(t, svc.AddContact("John", "0123456789"))

	require.NoError(t, svc.DeleteContact("John"))
	assert.Empty(t, svc.Contacts())
	assert.ErrorIs(t, svc.DeleteContact("John"), domain.ErrNotFound)
}

func TestContactService_Birthday(t *testing.T) {
	svc, _, _ := newService(t)
	require.NoError(t, svc.AddContact("John", "0123456789"))

	_, err := svc.Birthday("John")
	assert.ErrorIs(t, err, domain.ErrNotFound, "no birthday set yet")

	err = svc.SetBirthday("John", "31.02.2020")
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, svc.SetBirthday("John", "18.05.1990"))

	bd, err := svc.Birthday("John")
	require.NoError(t, err)
	assert.Equal(t, "18.05.1990", bd.String())

	assert.ErrorIs(t, svc.SetBirthday("Nobody", "18.05.1990"), domain.ErrNotFound)
	_, err = svc.Birthday("Nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactService_UpcomingBirthdays_UsesClock(t *testing.T) {
	svc, _, clock := newService(t)
	require.NoError(t, svc.AddContact("John", "0123456789"))
	require.NoError(t, svc.SetBirthday("John", "18.05.1990"))
	require.NoError(t, svc.AddContact("Jane", "1111111111"))
	require.NoError(t, svc.SetBirthday("Jane", "01.01.1990"))

	got := svc.UpcomingBirthdays(7)
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0].Record.Name().String())
	assert.Equal(t, domain.Date(2024, time.May, 20), got[0].CongratulationDay)

	clock.Set(time.Date(2024, 12, 28, 9, 0, 0, 0, time.UTC))

	got = svc.UpcomingBirthdays(7)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane", got[0].Record.Name().String())
	assert.Equal(t, domain.Date(2025, time.January, 1), got[0].CongratulationDay)
}

func TestContactService_SaveThenLoad(t *testing.T) {
	svc, repo, clock := newService(t)
	require.NoError(t, svc.AddContact("John", "0123456789"))
	require.NoError(t, svc.SetBirthday("John", "18.05.1990"))
	require.NoError(t, svc.Save(context.Background()))

	restored := service.NewContactService(repo, clock, zap.NewNop())
	require.NoError(t, restored.Load(context.Background()))

	phones, err := restored.Phones("John")
	require.NoError(t, err)
	assert.Equal(t, []string{"0123456789"}, phoneStrings(phones))

	bd, err := restored.Birthday("John")
	require.NoError(t, err)
	assert.Equal(t, "18.05.1990", bd.String())
}

func TestContactService_RepositoryErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := service.NewContactService(failingRepository{err: boom}, domain.RealClock{}, zap.NewNop())

	assert.ErrorIs(t, svc.Load(context.Background()), boom)
	assert.ErrorIs(t, svc.Save(context.Background()), boom)
}
