package withdraw

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/infrastructure/metrics"
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/identifier"
	"payment-gateway/internal/utils/mask"
)

// Statuses recorded on money movement rows.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Service implements withdrawals. A withdrawal can never take the
// card's saldo below zero.
type Service struct {
	repo     Repository
	saldos   SaldoStore
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the withdraw service.
func NewService(repo Repository, saldos SaldoStore, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		saldos:   saldos,
		log:      log.With().Str("component", "withdraw-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of withdrawals, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.WithdrawResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched withdraws",
		responses.NewWithdrawResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed withdrawals.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.WithdrawResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active withdraws",
		responses.NewWithdrawResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed withdrawals.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.WithdrawResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed withdraws",
		responses.NewWithdrawResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single withdrawal.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.WithdrawResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched withdraw", responses.NewWithdrawResponse(*row))
	return &resp, nil
}

// FindByCardNumber returns one page of a card's withdrawals.
func (s *Service) FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) (*responses.ApiResponsePagination[responses.WithdrawResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindByCardNumber(ctx, cardNumber, q)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("withdraw lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched card withdraws",
		responses.NewWithdrawResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// Create records a withdrawal and debits the card's saldo. A shortfall
// fails the request without recording anything.
func (s *Service) Create(ctx context.Context, req requests.CreateWithdrawRequest) (*responses.ApiResponse[responses.WithdrawResponse], error) {
	balance, err := s.saldos.FindByCardNumber(ctx, req.CardNumber)
	if err != nil {
		metrics.WithdrawsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}
	if balance.TotalBalance < req.WithdrawAmount {
		s.log.Warn().
			Str("card_number", mask.CardNumber(req.CardNumber)).
			Int64("amount", req.WithdrawAmount).
			Msg("withdraw exceeds balance")
		metrics.WithdrawsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, apperrors.Validation([]string{"withdraw_amount: exceeds available balance"})
	}

	now := time.Now()
	row, err := s.repo.Create(ctx, &model.Withdraw{
		WithdrawNo:     identifier.NewWithdrawNo(),
		CardNumber:     req.CardNumber,
		WithdrawAmount: req.WithdrawAmount,
		WithdrawTime:   now,
		Status:         StatusSuccess,
	})
	if err != nil {
		metrics.WithdrawsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	if _, err := s.saldos.RecordWithdraw(ctx, req.CardNumber, req.WithdrawAmount, now); err != nil {
		metrics.WithdrawsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	metrics.WithdrawsTotal.WithLabelValues(StatusSuccess).Inc()
	s.log.Info().
		Str("withdraw_no", row.WithdrawNo).
		Str("card_number", mask.CardNumber(row.CardNumber)).
		Int64("amount", row.WithdrawAmount).
		Msg("withdraw recorded")
	resp := responses.NewResponse("Successfully created withdraw", responses.NewWithdrawResponse(*row))
	return &resp, nil
}

// Update adjusts a recorded withdrawal, applying the amount delta to the
// card's saldo. The delta is still bounded by the available balance.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateWithdrawRequest) (*responses.ApiResponse[responses.WithdrawResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	delta := req.WithdrawAmount - existing.WithdrawAmount
	if delta > 0 {
		balance, err := s.saldos.FindByCardNumber(ctx, req.CardNumber)
		if err != nil {
			return nil, s.fail(err)
		}
		if balance.TotalBalance < delta {
			return nil, apperrors.Validation([]string{"withdraw_amount: exceeds available balance"})
		}
	}

	existing.CardNumber = req.CardNumber
	existing.WithdrawAmount = req.WithdrawAmount

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}

	if delta != 0 {
		if _, err := s.saldos.AddBalance(ctx, row.CardNumber, -delta); err != nil {
			return nil, s.fail(err)
		}
	}

	resp := responses.NewResponse("Successfully updated withdraw", responses.NewWithdrawResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a withdrawal.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.WithdrawResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed withdraw", responses.NewWithdrawResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed withdrawal back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.WithdrawResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored withdraw", responses.NewWithdrawResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a withdrawal for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted withdraw permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed withdrawal.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all withdraws", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed withdrawal for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed withdraws permanently", true)
	return &resp, nil
}

// MonthlyAmounts returns per-month amount aggregates, optionally scoped
// to one card.
func (s *Service) MonthlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawMonthAmountResponse], error) {
	rows, err := s.repo.MonthlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly withdraw amounts", responses.NewWithdrawMonthAmounts(rows))
	return &resp, nil
}

// YearlyAmounts returns per-year amount aggregates.
func (s *Service) YearlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawYearAmountResponse], error) {
	rows, err := s.repo.YearlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly withdraw amounts", responses.NewWithdrawYearAmounts(rows))
	return &resp, nil
}

// MonthStatusSuccess returns the month's successful withdraw aggregate.
func (s *Service) MonthStatusSuccess(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusSuccess, cardNumber)
}

// MonthStatusFailed returns the month's failed withdraw aggregate.
func (s *Service) MonthStatusFailed(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusFailed, cardNumber)
}

// YearStatusSuccess returns the year's successful withdraw aggregate.
func (s *Service) YearStatusSuccess(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusSuccess, cardNumber)
}

// YearStatusFailed returns the year's failed withdraw aggregate.
func (s *Service) YearStatusFailed(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusFailed, cardNumber)
}

func (s *Service) monthStatus(ctx context.Context, year, month int, status, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawMonthStatusResponse], error) {
	rows, err := s.repo.MonthStatus(ctx, year, month, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly withdraw status", responses.NewWithdrawMonthStatuses(rows))
	return &resp, nil
}

func (s *Service) yearStatus(ctx context.Context, year int, status, cardNumber string) (*responses.ApiResponse[[]responses.WithdrawYearStatusResponse], error) {
	rows, err := s.repo.YearStatus(ctx, year, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly withdraw status", responses.NewWithdrawYearStatuses(rows))
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
