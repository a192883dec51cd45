package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/auctionhouse/docs"
	accounthandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/account"
	adminhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/admin"
	auctionhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/auctions"
	poweruphandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/powerups"
	"github.com/GlebRadaev/auctionhouse/internal/service"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuctionHandler interface {
	PlaceBid(w http.ResponseWriter, r *http.Request)
	GetAuction(w http.ResponseWriter, r *http.Request)
	ListBids(w http.ResponseWriter, r *http.Request)
}

type PowerUpHandler interface {
	Activate(w http.ResponseWriter, r *http.Request)
	ListOwned(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetAccount(w http.ResponseWriter, r *http.Request)
	ListLedger(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	CreateItem(w http.ResponseWriter, r *http.Request)
	CreateAuction(w http.ResponseWriter, r *http.Request)
	CancelAuction(w http.ResponseWriter, r *http.Request)
	GrantPowerUp(w http.ResponseWriter, r *http.Request)
	Flush(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuctionHandler AuctionHandler
	PowerUpHandler PowerUpHandler
	AccountHandler AccountHandler
	AdminHandler   AdminHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuctionHandler: auctionhandlers.New(s.AuctionService),
		PowerUpHandler: poweruphandlers.New(s.PowerUpService),
		AccountHandler: accounthandlers.New(s.LedgerService),
		AdminHandler:   adminhandlers.New(s.AuctionService, s.PowerUpService, s.LedgerService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))

		r.Route("/auctions/{id}", func(r chi.Router) {
			r.Get("/", h.AuctionHandler.GetAuction)
			r.Get("/bids", h.AuctionHandler.ListBids)
			r.Post("/bids", h.AuctionHandler.PlaceBid)
		})
		r.Post("/powerups/{id}/activate", h.PowerUpHandler.Activate)
		r.Route("/user", func(r chi.Router) {
			r.Get("/powerups", h.PowerUpHandler.ListOwned)
			r.Get("/account", h.AccountHandler.GetAccount)
			r.Get("/ledger", h.AccountHandler.ListLedger)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AdminMiddleware)
			r.Post("/items", h.AdminHandler.CreateItem)
			r.Post("/auctions", h.AdminHandler.CreateAuction)
			r.Post("/auctions/{id}/cancel", h.AdminHandler.CancelAuction)
			r.Post("/powerups", h.AdminHandler.GrantPowerUp)
			r.Post("/ledger/flush", h.AdminHandler.Flush)
		})
	})

	return r
}
