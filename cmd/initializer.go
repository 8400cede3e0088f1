package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	firebase "firebase.google.com/go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"dmbookAdmin/internal/config"
	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/handlers"
	"dmbookAdmin/internal/lookup"
	"dmbookAdmin/internal/notify"
	"dmbookAdmin/internal/repositories"
	"dmbookAdmin/internal/services"
)

type application struct {
	log             *zerolog.Logger
	corsOrigins     []string
	estateHandler   *handlers.EstateHandler
	userHandler     *handlers.UserHandler
	bookingHandler  *handlers.BookingHandler
	feedbackHandler *handlers.FeedbackHandler
	postHandler     *handlers.PostHandler
}

func initializeApp(store docstore.Store, notifier services.Notifier, cfg config.Config, logger *zerolog.Logger) *application {
	root := cfg.Store.Root

	userRepo := &repositories.UserRepository{Store: store, Root: root}
	estateRepo := &repositories.EstateRepository{Store: store, Root: root}
	bookingRepo := &repositories.BookingRepository{Store: store, Root: root}
	feedbackRepo := &repositories.FeedbackRepository{Store: store, Root: root}
	postRepo := &repositories.PostRepository{Store: store, Root: root}

	policy := lookup.FailFast
	if cfg.Lookup.SkipFailedEnrichment {
		policy = lookup.SkipFailed
	}
	resolver := lookup.NewResolver(store, cfg.Lookup.ParallelProbes)
	enricher := lookup.NewEnricher(store)
	aggregator := lookup.NewAggregator(store, cfg.Lookup.Concurrency, policy, logger)

	if notifier == nil {
		notifier = services.NopNotifier{}
	}

	estateService := &services.EstateService{
		EstateRepo: estateRepo,
		UserRepo:   userRepo,
		Resolver:   resolver,
		Enricher:   enricher,
		Aggregator: aggregator,
		Categories: cfg.Lookup.Categories,
		Notifier:   notifier,
		Log:        logger,
	}
	userService := &services.UserService{
		UserRepo:    userRepo,
		EstateRepo:  estateRepo,
		BookingRepo: bookingRepo,
		Aggregator:  aggregator,
	}
	bookingService := &services.BookingService{
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Enricher:    enricher,
		Aggregator:  aggregator,
	}
	feedbackService := &services.FeedbackService{
		FeedbackRepo:       feedbackRepo,
		UserRepo:           userRepo,
		EstateRepo:         estateRepo,
		Resolver:           resolver,
		Enricher:           enricher,
		Aggregator:         aggregator,
		Categories:         cfg.Lookup.Categories,
		FeedbackCategories: cfg.Lookup.FeedbackCategories,
	}
	postService := &services.PostService{PostRepo: postRepo}

	return &application{
		log:             logger,
		corsOrigins:     cfg.CORS.AllowedOrigins,
		estateHandler:   &handlers.EstateHandler{Service: estateService},
		userHandler:     &handlers.UserHandler{Service: userService},
		bookingHandler:  &handlers.BookingHandler{Service: bookingService},
		feedbackHandler: &handlers.FeedbackHandler{Service: feedbackService},
		postHandler:     &handlers.PostHandler{Service: postService},
	}
}

// backend is everything main has to close on shutdown.
type backend struct {
	store    docstore.Store
	notifier services.Notifier
	closers  []func() error
}

func (b *backend) Close() error {
	var first error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openBackend builds the configured store, the optional Redis read cache
// and the optional push notifier.
func openBackend(ctx context.Context, cfg config.Config, logger *zerolog.Logger) (*backend, error) {
	b := &backend{}

	switch cfg.Store.Driver {
	case config.DriverMemory:
		mem := docstore.NewMemory()
		if cfg.Store.SeedFile != "" {
			if err := mem.LoadFile(cfg.Store.SeedFile); err != nil {
				return nil, err
			}
		}
		b.store = mem
	case config.DriverFirebase:
		app, err := openFirebase(ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}
		client, err := app.Database(ctx)
		if err != nil {
			return nil, fmt.Errorf("firebase database client: %w", err)
		}
		b.store = docstore.NewFirebase(client)

		if cfg.Notifications.Enabled {
			messaging, err := app.Messaging(ctx)
			if err != nil {
				return nil, fmt.Errorf("firebase messaging client: %w", err)
			}
			b.notifier = notify.NewFCM(messaging, logger)
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := openRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, rdb.Close)
		b.store = docstore.NewCached(b.store, rdb, cfg.Redis.TTL.Std(), logger)
	}
	return b, nil
}

func openFirebase(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	var opt option.ClientOption
	if cfg.CredentialsFile != "" {
		opt = option.WithCredentialsFile(cfg.CredentialsFile)
	} else {
		creds, err := json.Marshal(map[string]string{
			"type":         "service_account",
			"project_id":   cfg.ProjectID,
			"private_key":  cfg.PrivateKey,
			"client_email": cfg.ClientEmail,
			"token_uri":    "https://oauth2.googleapis.com/token",
		})
		if err != nil {
			return nil, err
		}
		opt = option.WithCredentialsJSON(creds)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: cfg.DatabaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	return app, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}
