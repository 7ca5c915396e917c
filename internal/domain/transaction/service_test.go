package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

type fakeRepo struct {
	Repository

	created  *model.Transaction
	existing *model.Transaction
}

func (f *fakeRepo) Create(_ context.Context, t *model.Transaction) (*model.Transaction, error) {
	f.created = t
	out := *t
	out.ID = 41
	return &out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int) (*model.Transaction, error) {
	if f.existing == nil || f.existing.ID != id {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "transaction not found", nil)
	}
	out := *f.existing
	return &out, nil
}

func (f *fakeRepo) Update(_ context.Context, t *model.Transaction) (*model.Transaction, error) {
	out := *t
	return &out, nil
}

type fakeMerchants struct {
	merchant *model.Merchant
}

func (f *fakeMerchants) FindByAPIKey(_ context.Context, apiKey string) (*model.Merchant, error) {
	if f.merchant == nil || f.merchant.APIKey != apiKey {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "merchant not found", nil)
	}
	return f.merchant, nil
}

type fakeSaldos struct {
	balance int64
	deltas  []int64
}

func (f *fakeSaldos) FindByCardNumber(_ context.Context, cardNumber string) (*model.Saldo, error) {
	return &model.Saldo{CardNumber: cardNumber, TotalBalance: f.balance}, nil
}

func (f *fakeSaldos) AddBalance(_ context.Context, cardNumber string, delta int64) (*model.Saldo, error) {
	f.deltas = append(f.deltas, delta)
	f.balance += delta
	return &model.Saldo{CardNumber: cardNumber, TotalBalance: f.balance}, nil
}

func newTestService(repo *fakeRepo, merchants *fakeMerchants, saldos *fakeSaldos) *Service {
	cfg := &config.Config{DefaultPageSize: 10, MaxPageSize: 100}
	return NewService(repo, merchants, saldos, cfg, zerolog.Nop())
}

func TestCreateUnknownAPIKey(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeMerchants{}, &fakeSaldos{balance: 1000})

	_, err := svc.Create(context.Background(), "bogus", requests.CreateTransactionRequest{
		CardNumber:    "4111111111111111",
		Amount:        100,
		PaymentMethod: "visa",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ServiceInvalidCredentials))
	assert.Nil(t, repo.created, "nothing may be recorded for an unknown key")
}

func TestCreateInsufficientBalance(t *testing.T) {
	repo := &fakeRepo{}
	merchants := &fakeMerchants{merchant: &model.Merchant{ID: 7, APIKey: "mk_live_123"}}
	saldos := &fakeSaldos{balance: 100}
	svc := newTestService(repo, merchants, saldos)

	_, err := svc.Create(context.Background(), "mk_live_123", requests.CreateTransactionRequest{
		CardNumber:    "4111111111111111",
		Amount:        500,
		PaymentMethod: "visa",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ServiceValidation))

	var svcErr *apperrors.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "Validation failed: amount: exceeds available balance", svcErr.Message)

	assert.Nil(t, repo.created)
	assert.Empty(t, saldos.deltas, "balance must not move on a failed payment")
}

func TestCreateDebitsSaldo(t *testing.T) {
	repo := &fakeRepo{}
	merchants := &fakeMerchants{merchant: &model.Merchant{ID: 7, APIKey: "mk_live_123"}}
	saldos := &fakeSaldos{balance: 1000}
	svc := newTestService(repo, merchants, saldos)

	resp, err := svc.Create(context.Background(), "mk_live_123", requests.CreateTransactionRequest{
		CardNumber:    "4111111111111111",
		Amount:        250,
		PaymentMethod: "visa",
	})

	require.NoError(t, err)
	assert.Equal(t, "Successfully created transaction", resp.Message)
	assert.Equal(t, int64(250), resp.Data.Amount)
	assert.Equal(t, 7, resp.Data.MerchantID)
	assert.Equal(t, StatusSuccess, resp.Data.Status)
	assert.NotEmpty(t, resp.Data.TransactionNo)

	require.NotNil(t, repo.created)
	assert.Equal(t, 7, repo.created.MerchantID)
	assert.Equal(t, []int64{-250}, saldos.deltas)
	assert.Equal(t, int64(750), saldos.balance)
}

func TestUpdateForeignMerchant(t *testing.T) {
	repo := &fakeRepo{existing: &model.Transaction{ID: 12, MerchantID: 99, Amount: 100}}
	merchants := &fakeMerchants{merchant: &model.Merchant{ID: 7, APIKey: "mk_live_123"}}
	saldos := &fakeSaldos{balance: 1000}
	svc := newTestService(repo, merchants, saldos)

	_, err := svc.Update(context.Background(), "mk_live_123", 12, requests.UpdateTransactionRequest{
		CardNumber:    "4111111111111111",
		Amount:        200,
		PaymentMethod: "visa",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ServiceForbidden))
	assert.Empty(t, saldos.deltas)
}

func TestUpdateAppliesAmountDelta(t *testing.T) {
	repo := &fakeRepo{existing: &model.Transaction{ID: 12, MerchantID: 7, CardNumber: "4111111111111111", Amount: 100}}
	merchants := &fakeMerchants{merchant: &model.Merchant{ID: 7, APIKey: "mk_live_123"}}
	saldos := &fakeSaldos{balance: 1000}
	svc := newTestService(repo, merchants, saldos)

	resp, err := svc.Update(context.Background(), "mk_live_123", 12, requests.UpdateTransactionRequest{
		CardNumber:    "4111111111111111",
		Amount:        300,
		PaymentMethod: "visa",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(300), resp.Data.Amount)
	// Raising the amount by 200 debits the card by 200 more.
	assert.Equal(t, []int64{-200}, saldos.deltas)
}
