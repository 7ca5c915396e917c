package transaction

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

// Service implements card payments. Create and Update resolve the
// merchant from the presented API key and debit the card's saldo.
type Service struct {
	repo      Repository
	merchants MerchantResolver
	saldos    SaldoStore
	log       zerolog.Logger
	pageSize  int
	pageMax   int
}

// NewService wires the transaction service.
func NewService(repo Repository, merchants MerchantResolver, saldos SaldoStore, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		merchants: merchants,
		saldos:    saldos,
		log:       log.With().Str("component", "transaction-service").Logger(),
		pageSize:  cfg.DefaultPageSize,
		pageMax:   cfg.MaxPageSize,
	}
}

// FindAll returns one page of payments, trashed rows included.
func (s *Service) FindAll(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransactionResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched transactions",
		responses.NewTransactionResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindActive returns one page of non-trashed payments.
func (s *Service) FindActive(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransactionResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindActive(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched active transactions",
		responses.NewTransactionResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindTrashed returns one page of trashed payments.
func (s *Service) FindTrashed(ctx context.Context, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransactionResponseDeleteAt], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindTrashed(ctx, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched trashed transactions",
		responses.NewTransactionResponsesDeleteAt(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByID returns a single payment.
func (s *Service) FindByID(ctx context.Context, id int) (*responses.ApiResponse[responses.TransactionResponse], error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched transaction", responses.NewTransactionResponse(*row))
	return &resp, nil
}

// FindByCardNumber returns one page of a card's payments.
func (s *Service) FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransactionResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindByCardNumber(ctx, cardNumber, q)
	if err != nil {
		s.log.Warn().Str("card_number", mask.CardNumber(cardNumber)).Msg("transaction lookup failed")
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched card transactions",
		responses.NewTransactionResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// FindByMerchantID returns one page of a merchant's payments.
func (s *Service) FindByMerchantID(ctx context.Context, merchantID int, q requests.ListQuery) (*responses.ApiResponsePagination[responses.TransactionResponse], error) {
	q.Normalize(s.pageSize, s.pageMax)
	rows, total, err := s.repo.FindByMerchantID(ctx, merchantID, q)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewPaginatedResponse("Successfully fetched merchant transactions",
		responses.NewTransactionResponses(rows), responses.NewPagination(q.Page, q.PageSize, total))
	return &resp, nil
}

// Create records a payment against the merchant behind apiKey, debiting
// the card's saldo. A balance shortfall fails the request without
// recording anything.
func (s *Service) Create(ctx context.Context, apiKey string, req requests.CreateTransactionRequest) (*responses.ApiResponse[responses.TransactionResponse], error) {
	m, err := s.merchants.FindByAPIKey(ctx, apiKey)
	if err != nil {
		s.log.Warn().Str("api_key", mask.APIKey(apiKey)).Msg("payment with unknown api key")
		metrics.TransactionsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, apperrors.InvalidCredentials()
	}

	balance, err := s.saldos.FindByCardNumber(ctx, req.CardNumber)
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}
	if balance.TotalBalance < req.Amount {
		s.log.Warn().
			Str("card_number", mask.CardNumber(req.CardNumber)).
			Int64("amount", req.Amount).
			Msg("payment exceeds balance")
		metrics.TransactionsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, apperrors.Validation([]string{"amount: exceeds available balance"})
	}

	row, err := s.repo.Create(ctx, &model.Transaction{
		CardNumber:      req.CardNumber,
		TransactionNo:   identifier.NewTransactionNo(),
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		MerchantID:      m.ID,
		TransactionTime: time.Now(),
		Status:          StatusSuccess,
	})
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	if _, err := s.saldos.AddBalance(ctx, req.CardNumber, -req.Amount); err != nil {
		metrics.TransactionsTotal.WithLabelValues(StatusFailed).Inc()
		return nil, s.fail(err)
	}

	metrics.TransactionsTotal.WithLabelValues(StatusSuccess).Inc()
	s.log.Info().
		Str("transaction_no", row.TransactionNo).
		Str("card_number", mask.CardNumber(row.CardNumber)).
		Int("merchant_id", m.ID).
		Int64("amount", row.Amount).
		Msg("payment recorded")
	resp := responses.NewResponse("Successfully created transaction", responses.NewTransactionResponse(*row))
	return &resp, nil
}

// Update adjusts a recorded payment under the same merchant key check,
// applying the amount delta to the card's saldo.
func (s *Service) Update(ctx context.Context, apiKey string, id int, req requests.UpdateTransactionRequest) (*responses.ApiResponse[responses.TransactionResponse], error) {
	m, err := s.merchants.FindByAPIKey(ctx, apiKey)
	if err != nil {
		s.log.Warn().Str("api_key", mask.APIKey(apiKey)).Msg("payment update with unknown api key")
		return nil, apperrors.InvalidCredentials()
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	if existing.MerchantID != m.ID {
		return nil, apperrors.Forbidden("Transaction belongs to another merchant")
	}

	delta := req.Amount - existing.Amount
	existing.CardNumber = req.CardNumber
	existing.Amount = req.Amount
	existing.PaymentMethod = req.PaymentMethod

	row, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.fail(err)
	}

	if delta != 0 {
		if _, err := s.saldos.AddBalance(ctx, row.CardNumber, -delta); err != nil {
			return nil, s.fail(err)
		}
	}

	resp := responses.NewResponse("Successfully updated transaction", responses.NewTransactionResponse(*row))
	return &resp, nil
}

// Trash soft-deletes a payment.
func (s *Service) Trash(ctx context.Context, id int) (*responses.ApiResponse[responses.TransactionResponseDeleteAt], error) {
	row, err := s.repo.Trash(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully trashed transaction", responses.NewTransactionResponseDeleteAt(*row))
	return &resp, nil
}

// Restore brings a trashed payment back.
func (s *Service) Restore(ctx context.Context, id int) (*responses.ApiResponse[responses.TransactionResponse], error) {
	row, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored transaction", responses.NewTransactionResponse(*row))
	return &resp, nil
}

// DeletePermanent removes a payment for good.
func (s *Service) DeletePermanent(ctx context.Context, id int) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeletePermanent(ctx, id); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted transaction permanently", true)
	return &resp, nil
}

// RestoreAll restores every trashed payment.
func (s *Service) RestoreAll(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.RestoreAll(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully restored all transactions", true)
	return &resp, nil
}

// DeleteAllPermanent removes every trashed payment for good.
func (s *Service) DeleteAllPermanent(ctx context.Context) (*responses.ApiResponse[bool], error) {
	if err := s.repo.DeleteAllPermanent(ctx); err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully deleted all trashed transactions permanently", true)
	return &resp, nil
}

// MonthlyAmounts returns per-month amount aggregates, optionally scoped
// to one card.
func (s *Service) MonthlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionMonthAmountResponse], error) {
	rows, err := s.repo.MonthlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly transaction amounts", responses.NewTransactionMonthAmounts(rows))
	return &resp, nil
}

// YearlyAmounts returns per-year amount aggregates.
func (s *Service) YearlyAmounts(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionYearAmountResponse], error) {
	rows, err := s.repo.YearlyAmounts(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly transaction amounts", responses.NewTransactionYearAmounts(rows))
	return &resp, nil
}

// MonthlyMethods returns per-method monthly aggregates.
func (s *Service) MonthlyMethods(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionMonthMethodResponse], error) {
	rows, err := s.repo.MonthlyMethods(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly payment methods", responses.NewTransactionMonthMethods(rows))
	return &resp, nil
}

// YearlyMethods returns per-method yearly aggregates.
func (s *Service) YearlyMethods(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionYearMethodResponse], error) {
	rows, err := s.repo.YearlyMethods(ctx, year, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly payment methods", responses.NewTransactionYearMethods(rows))
	return &resp, nil
}

// MonthStatusSuccess returns the month's successful payment aggregate.
func (s *Service) MonthStatusSuccess(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusSuccess, cardNumber)
}

// MonthStatusFailed returns the month's failed payment aggregate.
func (s *Service) MonthStatusFailed(ctx context.Context, year, month int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionMonthStatusResponse], error) {
	return s.monthStatus(ctx, year, month, StatusFailed, cardNumber)
}

// YearStatusSuccess returns the year's successful payment aggregate.
func (s *Service) YearStatusSuccess(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusSuccess, cardNumber)
}

// YearStatusFailed returns the year's failed payment aggregate.
func (s *Service) YearStatusFailed(ctx context.Context, year int, cardNumber string) (*responses.ApiResponse[[]responses.TransactionYearStatusResponse], error) {
	return s.yearStatus(ctx, year, StatusFailed, cardNumber)
}

func (s *Service) monthStatus(ctx context.Context, year, month int, status, cardNumber string) (*responses.ApiResponse[[]responses.TransactionMonthStatusResponse], error) {
	rows, err := s.repo.MonthStatus(ctx, year, month, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched monthly transaction status", responses.NewTransactionMonthStatuses(rows))
	return &resp, nil
}

func (s *Service) yearStatus(ctx context.Context, year int, status, cardNumber string) (*responses.ApiResponse[[]responses.TransactionYearStatusResponse], error) {
	rows, err := s.repo.YearStatus(ctx, year, status, cardNumber)
	if err != nil {
		return nil, s.fail(err)
	}
	resp := responses.NewResponse("Successfully fetched yearly transaction status", responses.NewTransactionYearStatuses(rows))
	return &resp, nil
}

func (s *Service) fail(err error) error {
	svcErr := apperrors.FromRepository(err)
	apperrors.LogError(s.log, svcErr)
	return svcErr
}
