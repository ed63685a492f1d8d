// Package fakeapi es un backend REST en memoria que habla el mismo contrato
// que la API real. Lo usan los tests end-to-end y el comando `fake-api`.
package fakeapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "pet-adoption-portal/internal/fakeapi/docs"
	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/platform/logger"
)

type Options struct {
	JWTSecret string
	TokenTTL  time.Duration

	// Seed carga datos de ejemplo (ver seed.go).
	Seed bool

	// RateLimit en requests/seg; 0 = sin límite.
	RateLimit float64
	Burst     int

	Log logger.Logger
}

type Server struct {
	store  *Store
	tokens *Tokens
	log    logger.Logger
	opts   Options
}

func New(opts Options) (*Server, error) {
	if opts.JWTSecret == "" {
		opts.JWTSecret = "dev-secret"
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	s := &Server{
		store:  NewStore(),
		tokens: NewTokens(opts.JWTSecret, opts.TokenTTL),
		log:    opts.Log,
		opts:   opts,
	}
	if opts.Seed {
		if err := Seed(s.store); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Server) Store() *Store { return s.store }

// Handler arma el router con las mismas rutas que la API real.
func (s *Server) Handler() http.Handler {
	opts := s.opts
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(s.requestLog)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}).Handler)
	if opts.RateLimit > 0 {
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.Burst, 1))))
	}

	r.Use(AuthContext(s.tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	userOnly := require(kindUser, "")
	adminOnly := require(kindUser, string(accounts.RoleAdmin))
	ownerOnly := require(kindOwner, "")

	r.Post("/register", s.register)
	r.Post("/login", s.login)

	r.Route("/api", func(ar chi.Router) {
		ar.Route("/pets", func(pr chi.Router) {
			pr.Post("/register", s.registerPet)
			pr.Post("/login", s.ownerLogin)
			pr.Get("/approved", s.approvedPets)

			pr.With(ownerOnly).Get("/logout", s.ownerLogout)
			pr.With(ownerOnly).Get("/my-profile", s.myProfile)
			pr.With(ownerOnly).Patch("/update-pet", s.updatePet)
			pr.With(ownerOnly).Patch("/update-owner", s.updateOwner)
			pr.With(ownerOnly).Patch("/update-password", s.updatePassword)

			pr.With(adminOnly).Get("/all-registrations", s.allRegistrations)
			pr.With(adminOnly).Patch("/status/{id}", s.setRegistrationStatus)
		})

		ar.With(adminOnly).Delete("/admin/delete-registration/{id}", s.deleteRegistration)

		ar.Route("/products", func(pr chi.Router) {
			pr.Get("/", s.listProducts)
			pr.With(adminOnly).Post("/", s.createProduct)
			pr.With(adminOnly).Patch("/{id}", s.patchProduct)
		})

		ar.Route("/adoptions", func(pr chi.Router) {
			pr.With(userOnly).Post("/", s.submitAdoption)
			pr.With(ownerOnly).Get("/owner", s.ownerRequests)
			pr.With(ownerOnly).Patch("/{id}/status", s.decideAdoption)
		})

		ar.Post("/contact", s.sendContact)
	})

	return r
}

func rateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				fail(w, http.StatusTooManyRequests, "Too many requests, please slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request", map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"request_id": chimw.GetReqID(r.Context()),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
	})
}
