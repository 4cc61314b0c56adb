package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/controller"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/middleware"
)

type Controllers struct {
	Account      *controller.AccountController
	Transfer     *controller.TransferController
	Bill         *controller.BillController
	Rate         *controller.RateController
	Verification *controller.VerificationController
	User         *controller.UserController
	Transaction  *controller.TransactionController
}

// New builds the route tree: a public health check, the channel-authenticated
// client API under /api/v1, and the admin review surface under /admin/v1.
func New(controllers Controllers, channelID, channelKey, adminKeyHash string) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ChannelAuth(channelID, channelKey))

	if controllers.User != nil {
		controllers.User.RegisterRoutes(api)
	}
	if controllers.Account != nil {
		controllers.Account.RegisterRoutes(api)
	}
	if controllers.Transfer != nil {
		controllers.Transfer.RegisterRoutes(api)
	}
	if controllers.Bill != nil {
		controllers.Bill.RegisterRoutes(api)
	}
	if controllers.Rate != nil {
		controllers.Rate.RegisterRoutes(api)
	}
	if controllers.Verification != nil {
		controllers.Verification.RegisterRoutes(api)
	}
	if controllers.Transaction != nil {
		controllers.Transaction.RegisterRoutes(api)
	}

	admin := r.PathPrefix("/admin/v1").Subrouter()
	admin.Use(middleware.AdminKey(adminKeyHash))

	if controllers.Verification != nil {
		controllers.Verification.RegisterAdminRoutes(admin)
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
