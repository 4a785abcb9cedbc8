package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budgettime-server/internal/auth"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/account"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/category"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/member"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/rawinbox"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/recurrence"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/settings"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/status"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/user"
	"github.com/carson-networks/budgettime-server/internal/logging"
	"github.com/carson-networks/budgettime-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage status.Pinger
	Service *service.Service
	Tokens  *auth.Tokens
}

// Handler builds the router: /status on the plain mux and every ledger
// operation through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("budgettime-server", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger), auth.Middleware(api, r.Tokens))
	RegisterV1(api, r.Service)

	return mux
}

// RegisterV1 adds every /v1 operation to api.
func RegisterV1(api huma.API, svc *service.Service) {
	account.Register(api, svc.Accounts)
	member.Register(api, svc.Members)
	category.Register(api, svc.Categories)
	recurrence.Register(api, svc.Recurrences)
	transaction.Register(api, svc.Transactions)
	rawinbox.Register(api, svc.RawInbox)
	settings.Register(api, svc.Settings)
	user.NewDeleteMeHandler(svc.Users).Register(api)
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
