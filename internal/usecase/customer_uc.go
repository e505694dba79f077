package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/customerdesk/internal/domain"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// OutcomeRecorder recibe el resultado de cada envío (métricas).
type OutcomeRecorder interface {
	Record(outcome string)
}

type CustomerUC struct {
	Customers domain.CustomerRepo
	Outcomes  OutcomeRecorder
}

func (uc *CustomerUC) Validate(in domain.CustomerInput) error {
	return ValidateRecord(in)
}

// Submit valida y, solo si todo el registro es válido, lo agrega al repo.
// Devuelve *domain.ValidationError o *domain.PersistenceError.
func (uc *CustomerUC) Submit(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	if err := ValidateRecord(in); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			log.Debug().Str("field", string(ve.Field)).Msg("customer rejected")
		}
		uc.record(OutcomeRejected)
		return nil, err
	}

	c := domain.NewCustomer(in)
	if err := uc.Customers.Append(ctx, c); err != nil {
		if !domain.IsPersistence(err) {
			err = &domain.PersistenceError{Op: "append customer", Err: err}
		}
		log.Error().Err(err).Msg("customer append failed")
		uc.record(OutcomeFailed)
		return nil, err
	}

	log.Info().Uint("id", c.ID).Str("preferred_contact", string(c.PreferredContact)).Msg("customer saved")
	uc.record(OutcomeAccepted)
	return c, nil
}

func (uc *CustomerUC) record(outcome string) {
	if uc.Outcomes != nil {
		uc.Outcomes.Record(outcome)
	}
}
