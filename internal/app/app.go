package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/storefront-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/storefront-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront-backend/internal/infrastructure/minio"
	"github.com/DRSN-tech/storefront-backend/internal/repository/kv"
	"github.com/DRSN-tech/storefront-backend/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/storefront-backend/internal/repository/minio"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/closer"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/DRSN-tech/storefront-backend/pkg/postgres"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	topicTimeout    = 10 * time.Second
	kvKeyPrefix     = "storefront:"
)

// App: собранное приложение: серверы, воркер outbox и всё, что нужно закрыть при остановке.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker
	ctx     context.Context
}

// NewApp подключается к зависимостям и собирает слои. При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (_ *App, err error) {
	c := closer.NewCloser(0)
	defer func() {
		if err != nil {
			if closeErr := c.Close(context.Background()); closeErr != nil {
				log.Warnf("cleanup after failed start: %v", closeErr)
			}
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	c.AddFunc("app context", cancel)

	startCtx, startCancel := context.WithTimeout(ctx, startupTimeout)
	defer startCancel()

	// postgres
	db, err := postgres.Connect(startCtx, cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.AddFunc("postgres", db.Close)

	if err := db.RunMigrations(postgres.MigrationsSource, log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	txManager := tr.NewManager(db.Pool)
	productRepo := pgdb.NewProductRepo(db.Pool)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool)
	discountRepo := pgdb.NewDiscountRepo(db.Pool)
	settingsRepo := pgdb.NewSettingsRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool)
	couponRepo := pgdb.NewCouponRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool)

	// redis
	redisClient, err := clients.NewRedisClient(startCtx, cfg.Redis)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add("redis", func(context.Context) error { return redisClient.Close() })
	cacheRepo := redis.NewCacheRepo(redisClient, cfg.Redis.ProductTTL, log)

	var kvStore usecase.KeyValueStore
	switch cfg.Cart.Store {
	case config.CartStoreMemory:
		kvStore = memory.NewKVStore(cfg.Cart.TTL, cfg.Cart.CleanupInterval)
		log.Warnf("carts are stored in process memory and are lost on restart")
	default:
		kvStore = redis.NewKVStore(redisClient, kvKeyPrefix)
	}

	// minio
	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := clients.EnsureBucket(startCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	imagesInfra := minioInfra.NewMinioInfrastructure(s3Repo.NewImageRepo(minioClient, cfg.Minio.BucketName), cfg.Minio, log, ctx)
	c.Add("minio cleanup", imagesInfra.WaitForCleanup)

	// kafka
	producer := kafka.NewProducer(log, cfg.Kafka)
	c.Add("kafka producer", func(context.Context) error { return producer.Close() })
	if err := producer.EnsureTopic(topicTimeout); err != nil {
		// топик может создать админ кластера, воркер повторит отправку
		log.Warnf("failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
	}

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, cfg.Outbox, db.Dsn)
	c.AddFunc("outbox worker", worker.Stop)

	// use cases
	productUC := usecase.NewProductUC(
		productRepo,
		categoryRepo,
		discountRepo,
		outboxRepo,
		txManager,
		imagesInfra,
		log,
		cacheRepo,
	)
	quoteUC := usecase.NewQuoteUC(productUC)
	cartRepo := kv.NewCartRepo(kvStore, cfg.Cart.TTL, log)
	addressRepo := kv.NewAddressRepo(kvStore, 0, log)
	cartUC := usecase.NewCartUC(cartRepo, productUC, log)
	wishlistUC := usecase.NewWishlistUC(kv.NewWishlistRepo(kvStore, cfg.Cart.TTL, log), productUC)
	settingsUC := usecase.NewSettingsUC(settingsRepo, outboxRepo, txManager)
	addressUC := usecase.NewAddressUC(addressRepo)
	couponUC := usecase.NewCouponUC(couponRepo, cartRepo, productUC)
	orderUC := usecase.NewOrderUC(orderRepo, cartRepo, addressRepo, couponRepo, outboxRepo, productUC, txManager, log)

	// delivery
	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc, log)
	grpcSrv.RegisterServices(v1Grpc.NewPricingService(productUC, quoteUC, log))
	c.Add("grpc server", grpcSrv.Stop)

	r := chi.NewRouter()
	v1Http.NewRouter(r, log).Init(v1Http.UseCases{
		Products:  productUC,
		Quotes:    quoteUC,
		Carts:     cartUC,
		Wishlists: wishlistUC,
		Settings:  settingsUC,
		Addresses: addressUC,
		Coupons:   couponUC,
		Orders:    orderUC,
	}, map[string]v1Http.HealthCheck{
		"postgres": db.Ping,
		"redis":    clients.RedisPing(redisClient),
	})
	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.Add("http server", httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  log,
		closer:  c,
		httpSrv: httpSrv,
		grpcSrv: grpcSrv,
		worker:  worker,
		ctx:     ctx,
	}, nil
}

// Run запускает серверы и воркер и блокируется до сигнала или падения сервера.
func (a *App) Run() error {
	a.worker.Start(a.ctx)

	errCh := make(chan error, 2)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()

	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "fatal server error")
	case sig := <-shutdown:
		a.logger.Infof("Received %s, stopping gracefully...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		appErr = errors.Join(appErr, err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}
