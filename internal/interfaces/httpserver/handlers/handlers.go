package handlers

import (
	"payment-gateway/internal/domain/auth"
	"payment-gateway/internal/domain/card"
	"payment-gateway/internal/domain/merchant"
	"payment-gateway/internal/domain/role"
	"payment-gateway/internal/domain/saldo"
	"payment-gateway/internal/domain/topup"
	"payment-gateway/internal/domain/transaction"
	"payment-gateway/internal/domain/transfer"
	"payment-gateway/internal/domain/user"
	"payment-gateway/internal/domain/withdraw"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Role        *RoleHandler
	Card        *CardHandler
	Merchant    *MerchantHandler
	Saldo       *SaldoHandler
	Topup       *TopupHandler
	Transaction *TransactionHandler
	Transfer    *TransferHandler
	Withdraw    *WithdrawHandler
}

func New(
	authSvc *auth.Service,
	userSvc *user.Service,
	roleSvc *role.Service,
	cardSvc *card.Service,
	merchantSvc *merchant.Service,
	saldoSvc *saldo.Service,
	topupSvc *topup.Service,
	transactionSvc *transaction.Service,
	transferSvc *transfer.Service,
	withdrawSvc *withdraw.Service,
) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(authSvc),
		User:        NewUserHandler(userSvc),
		Role:        NewRoleHandler(roleSvc),
		Card:        NewCardHandler(cardSvc),
		Merchant:    NewMerchantHandler(merchantSvc),
		Saldo:       NewSaldoHandler(saldoSvc),
		Topup:       NewTopupHandler(topupSvc),
		Transaction: NewTransactionHandler(transactionSvc),
		Transfer:    NewTransferHandler(transferSvc),
		Withdraw:    NewWithdrawHandler(withdrawSvc),
	}
}
