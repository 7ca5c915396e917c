package transfer

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

// Service implements card-to-card transfers. A transfer debits the
// sender's saldo and credits the receiver's in the same call.
type Service struct {
	repo     Repository
	saldos   SaldoStore
	log      zerolog.Logger
	pageSize int
	pageMax  int
}

// NewService wires the transfer service.
func NewService(repo Repository, saldos SaldoStore, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		saldos:   saldos,
		log:      log.With().Str("component", "transfer-service").Logger(),
		pageSize: cfg.DefaultPageSize,
		pageMax:  cfg.MaxPageSize,
	}
}

// FindAll returns one page of transfers, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransferResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched transfers",
		responses.NewTransferResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed transfers.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransferResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active transfers",
		responses.NewTransferResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed transfers.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransferResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed transfers",
		responses.NewTransferResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single transfer.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.TransferResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched transfer", responses.NewTransferResponse(*row))
	return &resp, nil
}

// FindByTransferFrom returns one page of transfers sent by a card.
func (s *Service) FindByTransferFrom(ctx context.Context, cardNumber string, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransferResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindByTransferFrom(ctx, cardNumber, q)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("transfer lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched sent transfers",
		responses.NewTransferResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByTransferTo returns one page of transfers received by a card.
func (s *Service) FindByTransferTo(ctx context.Context, cardNumber string, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransferResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindByTransferTo(ctx, cardNumber, q)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("transfer lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched received transfers",
		responses.NewTransferResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// Create moves balance between two cards. A sender shortfall fails the
// request without recording anything.
func (s *Service) Create(ctx context.Context, req requests.CreateTransferRequest) (*responses.ApiResponse[responses.TransferResponse], error) {
	sender, err := s.saldos.FindByCardNumber(ctx, req.TransferFrom)
	if err != nil {
		metrics.TransfersTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}
	if _, err := s.saldos.FindByCardNumber(ctx, req.TransferTo); err != nil {
		metrics.TransfersTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}
	if sender.TotalBalance < req.TransferAmount {
		s.log.Warn().
			Str("card_number", mask.CardNumber(req.TransferFrom)).
			Int64("amount", req.TransferAmount).
			Msg("transfer exceeds balance")
		metrics.TransfersTotal.WithLabelValues(StatusFailed).Inc()
		return nil, apperrors.Validation([]string{"transfer_amount: exceeds available balance"})
	}

	row, err := s.repo.Create(ctx, &model.Transfer{
		TransferNo:     identifier.NewTransferNo(),
		TransferFrom:   req.TransferFrom,
		TransferTo:     req.TransferTo,
		TransferAmount: req.TransferAmount,
		TransferTime:   time.Now(),
		Status:         StatusSuccess,
	})
	if err != nil {
		metrics.TransfersTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	if _, err := s.saldos.AddBalance(ctx, req.TransferFrom, -req.TransferAmount); err != nil {
		metrics.TransfersTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}
	if _, err := s.saldos.AddBalance(ctx, req.TransferTo, req.TransferAmount); err != nil {
		metrics.TransfersTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	metrics.TransfersTotal.WithLabelValues(StatusSuccess).Inc()
	s.log.Info().
		Str("transfer_no", row.TransferNo).
		Str("from", mask.CardNumber(row.TransferFrom)).
		Str("to", mask.CardNumber(row.TransferTo)).
		Int64("amount", row.TransferAmount).
		Msg("transfer recorded")
	resp := responses.NewResponse("Successfully created transfer", responses.NewTransferResponse(*row))
	return &resp, nil
}

// Update adjusts a recorded transfer, rebalancing both saldos by the
// amount delta.
func (s *Service) Update(ctx context.Context, id int, req requests.UpdateTransferRequest) (*responses.ApiResponse[responses.TransferResponse], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}

	delta := req.TransferAmount - existing.TransferAmount
	existing.TransferFrom = req.TransferFrom
	existing.TransferTo = req.TransferTo
	existing.TransferAmount = req.TransferAmount

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}

	if delta != 0 {
		if _, err := s.saldos.AddBalance(ctx, row.TransferFrom, -delta); err != nil {
			return nil, s.fail(err)
		}
		if _, err := s.saldos.AddBalance(ctx, row.TransferTo, delta); err != nil {
			return nil, s.fail(err)
		}
	}

	resp := responses.NewResponse("Successfully updated transfer", responses.NewTransferResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a transfer.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.TransferResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed transfer", responses.NewTransferResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed transfer back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.TransferResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored transfer", responses.NewTransferResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a transfer for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted transfer permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed transfer.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all transfers", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed transfer for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed transfers permanently", true)
	return &resp, nil
}

// MonthlyAmounts returns per-month amount aggregates, optionally scoped
// to one sending card.
func (s *Service) MonthlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransferMonthAmountResponse], error) {
	rows, err := s.repo.MonthlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly transfer amounts", responses.NewTransferMonthAmounts(rows))
	return &resp, nil
}

// YearlyAmounts returns per-year amount aggregates.
func (s *Service) YearlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransferYearAmountResponse], error) {
	rows, err := s.repo.YearlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly transfer amounts", responses.NewTransferYearAmounts(rows))
	return &resp, nil
}

// MonthStatusSuccess returns the month's successful transfer aggregate.
func (s *Service) MonthStatusSuccess(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.TransferMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusSuccess, cardNumber)
}

// MonthStatusFailed returns the month's failed transfer aggregate.
func (s *Service) MonthStatusFailed(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.TransferMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusFailed, cardNumber)
}

// YearStatusSuccess returns the year's successful transfer aggregate.
func (s *Service) YearStatusSuccess(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransferYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusSuccess, cardNumber)
}

// YearStatusFailed returns the year's failed transfer aggregate.
func (s *Service) YearStatusFailed(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransferYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusFailed, cardNumber)
}

func (s *Service) monthStatus(ctx context.Context, year, month int, status, cardNumber string) (*responses.ApiResponse[[]responses.TransferMonthStatusResponse], error) {
	rows, err := s.repo.MonthStatus(ctx, year, month, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly transfer status", responses.NewTransferMonthStatuses(rows))
	return &resp, nil
}

func (s *Service) yearStatus(ctx context.Context, year int, status, cardNumber string) (*responses.ApiResponse[[]responses.TransferYearStatusResponse], error) {
	rows, err := s.repo.YearStatus(ctx, year, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly transfer status", responses.NewTransferYearStatuses(rows))
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
