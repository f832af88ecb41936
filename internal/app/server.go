// internal/app/server.go
package app

import (
	"fmt"
	"log"

	"ltv-service/internal/cache"
	"ltv-service/internal/config"
	"ltv-service/internal/db"
	customerHandler "ltv-service/internal/handlers/customer"
	aerospikeRepo "ltv-service/internal/repository/aerospike"
	customersvc "ltv-service/internal/service/customer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	aerospikeClient *db.AerospikeClient
	redisClient     *redis.Client
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Aerospike -----
	aerospikeClient, err := db.NewAerospikeClient().WithOptions(map[string]any{
		db.OptionHosts:   s.cfg.Hosts,
		db.OptionTimeout: s.cfg.ConnectTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to configure aerospike client: %w", err)
	}
	if err := aerospikeClient.Connect(); err != nil {
		return fmt.Errorf("failed to connect to aerospike: %w", err)
	}
	s.aerospikeClient = aerospikeClient
	log.Println("[AEROSPIKE] ✅ Connected successfully")

	// ----- LTV cache (optional) -----
	var ltvCache customersvc.LTVCache
	if s.cfg.CacheAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.CacheAddr,
			Password: s.cfg.CachePass,
			DB:       0,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.redisClient = redisClient
		ltvCache = cache.NewLTVCache(redisClient, s.cfg.CacheTTL, logger)
		log.Println("[REDIS] ✅ LTV cache enabled")
	}

	// ----- Repositories -----
	customerRepo := aerospikeRepo.NewCustomerRepository(aerospikeClient, s.cfg.Namespace, s.cfg.Set, logger)

	// ----- Services -----
	ltvService := customersvc.NewLTVService(customerRepo, ltvCache, logger)

	// ----- Handlers -----
	customerHandlerInst := customerHandler.NewCustomerHandler(ltvService)

	SetupRouter(s.engine, logger, &Handlers{
		CustomerHandler: customerHandlerInst,
	})

	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases store connections. Safe to call after a failed Start.
func (s *Server) Shutdown() {
	if s.aerospikeClient != nil {
		s.aerospikeClient.Close()
	}
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
}
