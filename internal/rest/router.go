package rest

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"termine-api/internal/grpcweb"
	"termine-api/internal/middleware"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/appointments", h.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", h.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/validate", h.ValidateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", h.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", h.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", h.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/calendar.ics", h.Calendar).Methods(http.MethodGet)

	api.HandleFunc("/customers", h.ListCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers", h.CreateCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers/search", h.SearchCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.GetCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.UpdateCustomer).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", h.DeleteCustomer).Methods(http.MethodDelete)
	return r
}

type Options struct {
	Origins []string
	Limiter *middleware.RateLimiter
	// Proxies whose forwarding headers name the client. Empty means the
	// socket address is used.
	Proxies middleware.TrustedProxies
	// Bridge, when set, receives gRPC-Web requests. It limits nothing
	// itself; the gRPC interceptor does, keyed on the forwarded address.
	Bridge http.Handler
	Log    *zap.Logger
}

// NewServer wraps the router with CORS, rate limiting, access logging and
// panic recovery, and routes gRPC-Web traffic to the bridge.
func NewServer(h *Handler, opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	origins := opts.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	var api http.Handler = NewRouter(h)
	if opts.Limiter != nil {
		api = middleware.RateLimitHTTP(opts.Limiter, opts.Proxies, log)(api)
	}
	api = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(api)

	root := api
	if opts.Bridge != nil {
		bridge := opts.Bridge
		root = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if grpcweb.IsGRPCWeb(r) {
				bridge.ServeHTTP(w, r)
				return
			}
			api.ServeHTTP(w, r)
		})
	}
	return middleware.Recover(log)(middleware.AccessLog(log, opts.Proxies)(root))
}
