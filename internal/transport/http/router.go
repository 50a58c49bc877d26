package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	appforge "sword-forge/internal/app/forge"
	apppublic "sword-forge/internal/app/public"
	appshop "sword-forge/internal/app/shop"
	"sword-forge/internal/config"
	"sword-forge/internal/game"
	"sword-forge/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, roller *game.Roller, cfg config.ServerConfig) *chi.Mux {
	forgeSvc := appforge.NewService(st, roller, cfg)
	shopSvc := appshop.NewService(st, cfg)
	publicSvc := apppublic.NewService(st)

	gameHandlers := NewGameHandlers(forgeSvc)
	shopHandlers := NewShopHandlers(shopSvc)
	publicHandlers := NewPublicHandlers(publicSvc)
	adminHandlers := NewAdminHandlers(st, cfg)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/game/enhance", gameHandlers.Enhance())
		r.Post("/game/chance-roll", gameHandlers.ChanceRoll())
		r.Post("/game/sell", gameHandlers.Sell())
		r.Get("/game/cooldowns", gameHandlers.Cooldowns())

		r.Post("/shop/purchase", shopHandlers.Purchase())
		r.Post("/shop/fragment-roll", shopHandlers.FragmentRoll())
		r.Get("/shop/catalog", shopHandlers.Catalog())

		r.Get("/public/leaderboard", publicHandlers.Leaderboard())
		r.Get("/public/players/{player_id}", publicHandlers.PlayerProfile())

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Post("/reset", adminHandlers.Reset())
			r.Post("/grant", adminHandlers.Grant())
			r.Get("/ledger", adminHandlers.Ledger())

			r.Route("/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 64)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
