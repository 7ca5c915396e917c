//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"payment-gateway/internal/config"
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
	infraauth "payment-gateway/internal/infrastructure/auth"
	"payment-gateway/internal/infrastructure/repository/cardrepo"
	"payment-gateway/internal/infrastructure/repository/merchantrepo"
	"payment-gateway/internal/infrastructure/repository/refreshtokenrepo"
	"payment-gateway/internal/infrastructure/repository/rolerepo"
	"payment-gateway/internal/infrastructure/repository/saldorepo"
	"payment-gateway/internal/infrastructure/repository/topuprepo"
	"payment-gateway/internal/infrastructure/repository/transactionrepo"
	"payment-gateway/internal/infrastructure/repository/transferrepo"
	"payment-gateway/internal/infrastructure/repository/userrepo"
	"payment-gateway/internal/infrastructure/repository/withdrawrepo"
	"payment-gateway/internal/interfaces/httpserver"
	"payment-gateway/internal/interfaces/httpserver/handlers"
)

func initServer(cfg *config.Config, log zerolog.Logger, db *gorm.DB) *httpserver.Server {
	wire.Build(
		infraauth.NewTokenManager,
		infraauth.NewHasher,

		userrepo.NewRepository,
		rolerepo.NewRepository,
		refreshtokenrepo.NewRepository,
		cardrepo.NewRepository,
		merchantrepo.NewRepository,
		saldorepo.NewRepository,
		topuprepo.NewRepository,
		transactionrepo.NewRepository,
		transferrepo.NewRepository,
		withdrawrepo.NewRepository,

		wire.Bind(new(user.Repository), new(*userrepo.Repository)),
		wire.Bind(new(auth.UserStore), new(*userrepo.Repository)),
		wire.Bind(new(auth.RefreshTokenStore), new(*refreshtokenrepo.Repository)),
		wire.Bind(new(role.Repository), new(*rolerepo.Repository)),
		wire.Bind(new(card.Repository), new(*cardrepo.Repository)),
		wire.Bind(new(saldo.CardResolver), new(*cardrepo.Repository)),
		wire.Bind(new(merchant.Repository), new(*merchantrepo.Repository)),
		wire.Bind(new(transaction.MerchantResolver), new(*merchantrepo.Repository)),
		wire.Bind(new(saldo.Repository), new(*saldorepo.Repository)),
		wire.Bind(new(topup.SaldoStore), new(*saldorepo.Repository)),
		wire.Bind(new(transaction.SaldoStore), new(*saldorepo.Repository)),
		wire.Bind(new(transfer.SaldoStore), new(*saldorepo.Repository)),
		wire.Bind(new(withdraw.SaldoStore), new(*saldorepo.Repository)),
		wire.Bind(new(topup.Repository), new(*topuprepo.Repository)),
		wire.Bind(new(transaction.Repository), new(*transactionrepo.Repository)),
		wire.Bind(new(transfer.Repository), new(*transferrepo.Repository)),
		wire.Bind(new(withdraw.Repository), new(*withdrawrepo.Repository)),

		auth.NewService,
		user.NewService,
		role.NewService,
		card.NewService,
		merchant.NewService,
		saldo.NewService,
		topup.NewService,
		transaction.NewService,
		transfer.NewService,
		withdraw.NewService,

		handlers.New,
		httpserver.New,
	)
	return nil
}
