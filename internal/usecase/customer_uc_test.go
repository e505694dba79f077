package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/customerdesk/internal/domain"
)

func TestSubmit_ValidRecordIsAppended(t *testing.T) {
	repo := &fakeCustomerRepo{}
	outcomes := &fakeOutcomes{}
	uc := &CustomerUC{Customers: repo, Outcomes: outcomes}

	in := validInput()
	in.Name = "  Ana Li "
	c, err := uc.Submit(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, uint(1), c.ID)
	assert.Equal(t, "Ana Li", c.Name)
	assert.Equal(t, "(555) 123-4567", c.Phone)
	assert.Equal(t, domain.ContactEmail, c.PreferredContact)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, 1, outcomes.counts[OutcomeAccepted])
}

func TestSubmit_InvalidRecordNeverReachesRepo(t *testing.T) {
	repo := &fakeCustomerRepo{}
	outcomes := &fakeOutcomes{}
	uc := &CustomerUC{Customers: repo, Outcomes: outcomes}

	in := validInput()
	in.Birthday = "2021-13-40"
	c, err := uc.Submit(context.Background(), in)

	assert.Nil(t, c)
	require.True(t, domain.IsValidation(err))
	assert.False(t, domain.IsPersistence(err))
	assert.Empty(t, repo.rows)
	assert.Equal(t, 1, outcomes.counts[OutcomeRejected])
}

func TestSubmit_RepoFailureIsPersistenceError(t *testing.T) {
	cause := errors.New("database is locked")
	repo := &fakeCustomerRepo{failErr: cause}
	uc := &CustomerUC{Customers: repo}

	_, err := uc.Submit(context.Background(), validInput())
	require.Error(t, err)

	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, cause)
	assert.False(t, domain.IsValidation(err))
}

func TestSubmit_RepoPersistenceErrorIsNotDoubleWrapped(t *testing.T) {
	orig := &domain.PersistenceError{Op: "append customer", Err: errors.New("disk full")}
	uc := &CustomerUC{Customers: &fakeCustomerRepo{failErr: orig}}

	_, err := uc.Submit(context.Background(), validInput())
	assert.Same(t, orig, err)
}

func TestSubmit_IdenticalSubmissionsProduceDistinctRecords(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := &CustomerUC{Customers: repo}
	ctx := context.Background()

	first, err := uc.Submit(ctx, validInput())
	require.NoError(t, err)
	second, err := uc.Submit(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
	for _, id := range []uint{first.ID, second.ID} {
		_, err := repo.FindByID(ctx, id)
		assert.NoError(t, err)
	}
}

func TestValidate_DelegatesToRecordValidator(t *testing.T) {
	uc := &CustomerUC{Customers: &fakeCustomerRepo{}}

	in := validInput()
	in.PreferredContact = "Fax"
	var ve *domain.ValidationError
	require.ErrorAs(t, uc.Validate(in), &ve)
	assert.Equal(t, domain.FieldPreferredContact, ve.Field)
}
