package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/tweeter-backend/internal/auth"
	"github.com/heartmarshall/tweeter-backend/internal/config"
	authsvc "github.com/heartmarshall/tweeter-backend/internal/service/auth"
	"github.com/heartmarshall/tweeter-backend/internal/service/content"
	"github.com/heartmarshall/tweeter-backend/internal/service/interaction"
	"github.com/heartmarshall/tweeter-backend/internal/service/social"
	"github.com/heartmarshall/tweeter-backend/internal/transport/middleware"
	"github.com/heartmarshall/tweeter-backend/internal/transport/rest"
	"github.com/heartmarshall/tweeter-backend/internal/view"
)

// Services holds the wired domain services.
type Services struct {
	Auth        *authsvc.Service
	Social      *social.Service
	Content     *content.Service
	Interaction *interaction.Service
}

// NewServices wires the services over st.
func NewServices(cfg *config.Config, st *Storage, logger *slog.Logger) *Services {
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	contentSvc := content.NewService(logger, st.Tweets, st.Tx, content.SystemClock{})
	return &Services{
		Auth:        authsvc.NewService(logger, st.Users, tokens, hasher),
		Social:      social.NewService(logger, st.Users, st.Tx),
		Content:     contentSvc,
		Interaction: interaction.NewService(logger, st.Likes, contentSvc, st.Tx),
	}
}

// NewHandler builds the HTTP handler: the REST router wrapped in the
// request-scoped middleware. reg receives the HTTP and domain collectors
// and backs the metrics endpoint when it is enabled.
func NewHandler(cfg *config.Config, st *Storage, svc *Services, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	metrics := rest.NewMetrics(reg)
	proj := view.NewProjector(st.Users, st.Tweets)

	routerCfg := rest.RouterConfig{
		Auth:    rest.NewAuthHandler(svc.Auth, proj, metrics, logger),
		Users:   rest.NewUserHandler(svc.Social, proj, metrics, logger),
		Tweets:  rest.NewTweetHandler(svc.Content, proj, metrics, logger),
		Likes:   rest.NewLikeHandler(svc.Interaction, proj, metrics, logger),
		Health:  rest.NewHealthHandler(st.Pinger, st.Driver, BuildVersion()),
		Tokens:  svc.Auth,
		Loaders: view.Repos{Users: st.Users, Tweets: st.Tweets},
		Metrics: metrics,
	}
	if cfg.Metrics.Enabled {
		routerCfg.Gatherer = reg
		routerCfg.MetricsPath = cfg.Metrics.Path
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(routerCfg))
}
