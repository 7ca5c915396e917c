package topup

import (
	"context"
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

	created  *model.Topup
	existing *model.Topup
}

func (f *fakeRepo) Create(_ context.Context, t *model.Topup) (*model.Topup, error) {
	f.created = t
	out := *t
	out.ID = 17
	return &out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int) (*model.Topup, error) {
	if f.existing == nil || f.existing.ID != id {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "topup not found", nil)
	}
	out := *f.existing
	return &out, nil
}

func (f *fakeRepo) Update(_ context.Context, t *model.Topup) (*model.Topup, error) {
	out := *t
	return &out, nil
}

type fakeSaldos struct {
	known  map[string]int64
	deltas []int64
}

func (f *fakeSaldos) FindByCardNumber(_ context.Context, cardNumber string) (*model.Saldo, error) {
	balance, ok := f.known[cardNumber]
	if !ok {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "saldo not found", nil)
	}
	return &model.Saldo{CardNumber: cardNumber, TotalBalance: balance}, nil
}

func (f *fakeSaldos) AddBalance(_ context.Context, cardNumber string, delta int64) (*model.Saldo, error) {
	f.deltas = append(f.deltas, delta)
	f.known[cardNumber] += delta
	return &model.Saldo{CardNumber: cardNumber, TotalBalance: f.known[cardNumber]}, nil
}

func newTestService(repo *fakeRepo, saldos *fakeSaldos) *Service {
	cfg := &config.Config{DefaultPageSize: 10, MaxPageSize: 100}
	return NewService(repo, saldos, cfg, zerolog.Nop())
}

func TestCreateCreditsSaldo(t *testing.T) {
	repo := &fakeRepo{}
	saldos := &fakeSaldos{known: map[string]int64{"4111111111111111": 500}}
	svc := newTestService(repo, saldos)

	resp, err := svc.Create(context.Background(), requests.CreateTopupRequest{
		CardNumber:  "4111111111111111",
		TopupAmount: 250,
		TopupMethod: "bank_transfer",
	})

	require.NoError(t, err)
	assert.Equal(t, "Successfully created topup", resp.Message)
	assert.Equal(t, int64(250), resp.Data.TopupAmount)
	assert.Equal(t, StatusSuccess, resp.Data.Status)
	assert.NotEmpty(t, resp.Data.TopupNo)

	assert.Equal(t, []int64{250}, saldos.deltas)
	assert.Equal(t, int64(750), saldos.known["4111111111111111"])
}

func TestCreateUnknownCard(t *testing.T) {
	repo := &fakeRepo{}
	saldos := &fakeSaldos{known: map[string]int64{}}
	svc := newTestService(repo, saldos)

	_, err := svc.Create(context.Background(), requests.CreateTopupRequest{
		CardNumber:  "4000000000000000",
		TopupAmount: 250,
		TopupMethod: "bank_transfer",
	})

	require.Error(t, err)
	status, _ := apperrors.HTTPStatus(err)
	assert.Equal(t, 404, status)
	assert.Nil(t, repo.created, "no topup row for a card without a saldo")
	assert.Empty(t, saldos.deltas)
}

func TestUpdateAppliesAmountDelta(t *testing.T) {
	repo := &fakeRepo{existing: &model.Topup{ID: 3, CardNumber: "4111111111111111", TopupAmount: 100}}
	saldos := &fakeSaldos{known: map[string]int64{"4111111111111111": 500}}
	svc := newTestService(repo, saldos)

	resp, err := svc.Update(context.Background(), 3, requests.UpdateTopupRequest{
		CardNumber:  "4111111111111111",
		TopupAmount: 150,
		TopupMethod: "bank_transfer",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(150), resp.Data.TopupAmount)
	// Only the 50 difference lands on the saldo.
	assert.Equal(t, []int64{50}, saldos.deltas)
}

func TestUpdateUnchangedAmountLeavesSaldoAlone(t *testing.T) {
	repo := &fakeRepo{existing: &model.Topup{ID: 3, CardNumber: "4111111111111111", TopupAmount: 100}}
	saldos := &fakeSaldos{known: map[string]int64{"4111111111111111": 500}}
	svc := newTestService(repo, saldos)

	_, err := svc.Update(context.Background(), 3, requests.UpdateTopupRequest{
		CardNumber:  "4111111111111111",
		TopupAmount: 100,
		TopupMethod: "bank_transfer",
	})

	require.NoError(t, err)
	assert.Empty(t, saldos.deltas)
}
