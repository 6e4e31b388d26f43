package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	v1 "github.com/adsmock/ads-api-mock/api/v1"
	"github.com/adsmock/ads-api-mock/internal/config"
	"github.com/adsmock/ads-api-mock/internal/handlers"
	"github.com/adsmock/ads-api-mock/internal/server"
	"github.com/adsmock/ads-api-mock/internal/server/middlewares"
	"github.com/adsmock/ads-api-mock/internal/services"
	"github.com/adsmock/ads-api-mock/internal/store"
	"github.com/adsmock/ads-api-mock/pkg/scheduler"
)

const envPrefix = "ADSMOCK"

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the mock Ads API server",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			viper.AutomaticEnv()
			viper.SetEnvPrefix(envPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			cobraflags.PresetRequiredFlags(envPrefix, make(map[*pflag.Flag]bool), cmd)
			return validateConfiguration(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "port the HTTP server listens on")
	flags.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "server mode, one of dev or prod")

	flags.StringVar(&cfg.Auth.DeveloperToken, "auth-developer-token", cfg.Auth.DeveloperToken, "developer token expected on API calls")
	flags.StringVar(&cfg.Auth.ClientID, "auth-client-id", cfg.Auth.ClientID, "OAuth client id accepted by the token endpoint")
	flags.StringVar(&cfg.Auth.ClientSecret, "auth-client-secret", cfg.Auth.ClientSecret, "OAuth client secret accepted by the token endpoint")
	flags.StringVar(&cfg.Auth.SigningKey, "auth-signing-key", cfg.Auth.SigningKey, "HMAC key used to sign access tokens")
	flags.DurationVar(&cfg.Auth.AccessTokenTTL, "auth-access-token-ttl", cfg.Auth.AccessTokenTTL, "lifetime of issued access tokens")
	flags.DurationVar(&cfg.Auth.RefreshTokenTTL, "auth-refresh-token-ttl", cfg.Auth.RefreshTokenTTL, "lifetime of issued refresh tokens")

	flags.IntVar(&cfg.Seed.Customers, "seed-customers", cfg.Seed.Customers, "number of customer accounts to generate")
	flags.IntVar(&cfg.Seed.CampaignsPerCustomer, "seed-campaigns-per-customer", cfg.Seed.CampaignsPerCustomer, "campaigns generated per customer")
	flags.IntVar(&cfg.Seed.AdGroupsPerCampaign, "seed-ad-groups-per-campaign", cfg.Seed.AdGroupsPerCampaign, "ad groups generated per campaign")
	flags.IntVar(&cfg.Seed.AdsPerAdGroup, "seed-ads-per-ad-group", cfg.Seed.AdsPerAdGroup, "ads generated per ad group")
	flags.IntVar(&cfg.Seed.MetricsDays, "seed-metrics-days", cfg.Seed.MetricsDays, "days of metrics history generated per entity")
	flags.IntVar(&cfg.Seed.NumWorkers, "num-workers", cfg.Seed.NumWorkers, "workers used for concurrent data generation")
	flags.Int64Var(&cfg.Seed.RandomSeed, "seed-random-seed", cfg.Seed.RandomSeed, "seed of the synthetic data generator")

	return cmd
}

func validateConfiguration(cfg *config.Configuration) error {
	if cfg.Server.ServerMode != server.DevServer && cfg.Server.ServerMode != server.ProductionServer {
		return fmt.Errorf("invalid server mode: %s", cfg.Server.ServerMode)
	}
	if cfg.Server.HTTPPort < 1 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http-port: %d", cfg.Server.HTTPPort)
	}
	if cfg.Auth.SigningKey == "" {
		return fmt.Errorf("auth-signing-key cannot be empty")
	}
	if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}
	if cfg.Seed.Customers < 1 {
		return fmt.Errorf("invalid seed-customers: %d", cfg.Seed.Customers)
	}
	if cfg.Seed.MetricsDays < 1 {
		return fmt.Errorf("invalid seed-metrics-days: %d", cfg.Seed.MetricsDays)
	}
	if cfg.Seed.NumWorkers < 1 {
		return fmt.Errorf("invalid num-workers: %d", cfg.Seed.NumWorkers)
	}
	return nil
}

func run(ctx context.Context, cfg *config.Configuration) error {
	logger := zap.Must(zap.NewDevelopment())
	if cfg.Server.ServerMode == server.ProductionServer {
		logger = zap.Must(zap.NewProduction())
	}
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.NewStore()
	seedStore(ctx, cfg, st)

	v1.RegisterValidations()

	tokenSrv := services.NewTokenService(
		cfg.Auth.ClientID,
		cfg.Auth.ClientSecret,
		cfg.Auth.SigningKey,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	handler := handlers.New(
		services.NewSearchService(st),
		services.NewCampaignService(st),
		services.NewAdGroupService(st),
		services.NewAdService(st),
		tokenSrv,
	)

	srv, err := server.NewServer(
		cfg,
		middlewares.Authentication(tokenSrv, cfg.Auth.DeveloperToken),
		handler.RegisterRoutes,
		handler.RegisterOAuthRoutes,
	)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Stop(shutdownCtx)
	}()

	zap.S().Named("run").Infow("mock server listening",
		"port", cfg.Server.HTTPPort,
		"mode", cfg.Server.ServerMode,
		"customers", cfg.Seed.Customers,
	)
	return srv.Start(ctx)
}

// seedStore generates the synthetic dataset and blocks until it is ready.
func seedStore(ctx context.Context, cfg *config.Configuration, st *store.Store) {
	customers := make([]string, 0, cfg.Seed.Customers)
	for i := range cfg.Seed.Customers {
		customers = append(customers, fmt.Sprintf("%d", 1000000000+i+1))
	}

	sched := scheduler.NewScheduler(cfg.Seed.NumWorkers)
	st.Seed(ctx, store.SeedParams{
		Customers:            customers,
		CampaignsPerCustomer: cfg.Seed.CampaignsPerCustomer,
		AdGroupsPerCampaign:  cfg.Seed.AdGroupsPerCampaign,
		AdsPerAdGroup:        cfg.Seed.AdsPerAdGroup,
		MetricsDays:          cfg.Seed.MetricsDays,
		RandomSeed:           cfg.Seed.RandomSeed,
		Now:                  time.Now(),
	}, sched)

	zap.S().Named("run").Infow("seeded store", "customers", customers)
}
