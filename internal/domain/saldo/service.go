package saldo

import (
	"context"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/mask"
)

// CardResolver checks that a card exists before a balance is opened.
type CardResolver interface {
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Card, error)
}

// Service implements balance management.
type Service struct {
	repo     Repository
	cards    CardResolver
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the saldo service.
func NewService(repo Repository, cards CardResolver, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		cards:    cards,
		log:      log.With().Str("component", "saldo-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of balances, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.SaldoResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched saldos",
		responses.NewSaldoResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed balances.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.SaldoResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active saldos",
		responses.NewSaldoResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed balances.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.SaldoResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed saldos",
		responses.NewSaldoResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single balance row.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.SaldoResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched saldo", responses.NewSaldoResponse(*row))
	return &resp, nil
}

// FindByCardNumber returns the balance of a card.
func (s *Service) FindByCardNumber(ctx context.Context, cardNumber string) (*responses.ApiResponse[responses.SaldoResponse], error) {
	row, err := s.repo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("saldo lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched saldo", responses.NewSaldoResponse(*row))
	return &resp, nil
}

// Create opens a balance record for an existing card.
func (s *Service) Create(ctx context.Context, req requests.CreateSaldoRequest) (*responses.ApiResponse[responses.SaldoResponse], error) {
	if _, err := s.cards.FindByCardNumber(ctx, req.CardNumber); err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(req.CardNumber)).Msg("saldo for unknown card")
		return nil, s.fail(err)
	}

	row, err := s.repo.Create(ctx, &model.Saldo{
		CardNumber:   req.CardNumber,
		TotalBalance: req.TotalBalance,
	})
	if err != nil {
		return nil, s.fail(err)
	}

	s.log.Info().
		Int("saldo_id", row.ID).
		Str("card_number", mask.CardNumber(row.CardNumber)).
		Msg("saldo opened")
	resp := responses.NewResponse("Successfully created saldo", responses.NewSaldoResponse(*row))
	return &resp, nil
}

// Update replaces the balance of a card.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateSaldoRequest) (*responses.ApiResponse[responses.SaldoResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	existing.CardNumber = req.CardNumber
	existing.TotalBalance = req.TotalBalance

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully updated saldo", responses.NewSaldoResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a balance row.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.SaldoResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed saldo", responses.NewSaldoResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed balance row back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.SaldoResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored saldo", responses.NewSaldoResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a balance row for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted saldo permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed balance row.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all saldos", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed balance row for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed saldos permanently", true)
	return &resp, nil
}

// MonthlyTotalBalance returns per-month totals for a year.
func (s *Service) MonthlyTotalBalance(ctx context.Context, year int) (*responses.ApiResponse[[]responses.SaldoMonthTotalBalanceResponse], error) {
	rows, err := s.repo.MonthlyTotalBalance(ctx, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly total balance", responses.NewSaldoMonthTotalBalances(rows))
	return &resp, nil
}

// YearlyTotalBalance returns per-year totals up to a year.
func (s *Service) YearlyTotalBalance(ctx context.Context, year int) (*responses.ApiResponse[[]responses.SaldoYearTotalBalanceResponse], error) {
	rows, err := s.repo.YearlyTotalBalance(ctx, year)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly total balance", responses.NewSaldoYearTotalBalances(rows))
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
