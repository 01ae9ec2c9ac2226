package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/zuevus/mud-orders/config"
	"github.com/zuevus/mud-orders/controllers"
	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/middleware"
	"github.com/zuevus/mud-orders/rpc"
	"github.com/zuevus/mud-orders/services"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		Production: cfg.IsProduction(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// run starts the gRPC backend and the HTTP gateway and blocks until ctx is
// cancelled or either server fails.
func run(ctx context.Context, cfg *config.Config) error {
	logger.Info("Starting order management server", zap.String("env", cfg.GoEnv))

	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		return err
	}
	db := config.GetDB()
	if err := config.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migration completed successfully")

	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	if err := config.SeedDatabase(db, seed); err != nil {
		return err
	}

	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db)

	if cfg.HasS3() {
		storage, err := services.NewS3Service(ctx, cfg)
		if err != nil {
			return err
		}
		services.InitExportService(orderService, storage)
		logger.Info("Order export enabled", zap.String("bucket", cfg.AWSS3Bucket))
	}

	var auth gin.HandlerFunc
	if cfg.HasAuth0() {
		auth, err = middleware.EnsureValidToken(cfg)
		if err != nil {
			return err
		}
		controllers.SetUserInfoProvider(services.NewAuth0Service(cfg.Auth0Domain))
	} else {
		logger.Warn("AUTH0_DOMAIN/AUTH0_AUDIENCE not set; order and user endpoints are disabled")
	}

	grpcServer := rpc.NewServer(orderService, userService)
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port %s: %w", cfg.GRPCPort, err)
	}

	conn, err := rpc.Dial(cfg.GRPCTarget)
	if err != nil {
		return fmt.Errorf("failed to create gRPC client for %s: %w", cfg.GRPCTarget, err)
	}
	defer func() {
		_ = conn.Close()
	}()
	controllers.InitClients(conn)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(cfg, auth),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	return g.Wait()
}

// setupRouter builds the HTTP gateway. Order and user routes are only
// mounted when auth is non-nil.
func setupRouter(cfg *config.Config, auth gin.HandlerFunc) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), controllers.RequestID(), requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", controllers.RequestIDHeader},
		ExposeHeaders:    []string{controllers.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		if auth != nil {
			controllers.RegisterRoutes(v1, auth)
		}
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.Writer.Header().Get(controllers.RequestIDHeader)),
		)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order management API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Database is not connected",
			},
		})
		return
	}

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	tables, err := db.WithContext(c.Request.Context()).Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
