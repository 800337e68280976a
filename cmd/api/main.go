package main

import (
	"expvar"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/db"
	"storefront/internal/domain/products"
	"storefront/internal/domain/storage"
	"storefront/internal/media"
	"storefront/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil && parsedVal > 0 {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// LoadDBConfig reads the listing database settings. An empty addr or
// service key leaves the listing endpoint misconfigured.
func LoadDBConfig() dbConfig {
	maxConns := int32(10)
	if val, exists := os.LookupEnv("DB_MAX_CONNS"); exists {
		if parsedVal, err := strconv.ParseInt(val, 10, 32); err == nil && parsedVal > 0 {
			maxConns = int32(parsedVal)
		} else {
			fmt.Println("Invalid DB_MAX_CONNS, defaulting to", maxConns)
		}
	}

	return dbConfig{
		addr:        os.Getenv("DATABASE_URL"),
		serviceKey:  os.Getenv("SERVICE_ROLE_KEY"),
		maxConns:    maxConns,
		maxIdleTime: getEnv("DB_MAX_IDLE_TIME", "15m"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Storefront Catalog API
//	@description	Category tree, catalog queries and product listing for the storefront.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.basic	BasicAuth

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	cfg := config{
		addr:   getEnv("ADDR", ":8080"),
		env:    getEnv("ENV", "development"),
		apiURL: os.Getenv("EXTERNAL_URL"),
		db:     LoadDBConfig(),
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter:   LoadRateLimiterConfig(),
		cloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		catalogLocale: getEnv("CATALOG_LOCALE", "zh-Hant"),
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Catalog
	images, err := media.NewResolver(cfg.cloudinaryURL)
	if err != nil {
		logger.Fatal(err)
	}
	locale, err := language.Parse(cfg.catalogLocale)
	if err != nil {
		logger.Warnw("invalid CATALOG_LOCALE, using zh-Hant", "locale", cfg.catalogLocale, "error", err)
		locale = language.TraditionalChinese
	}
	cat, err := catalog.Build(catalog.Options{Images: images, Locale: locale})
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infow("catalog built", "categories", cat.Tree().Len(), "products", cat.Len())

	// Database
	store := storage.NewContainer(nil)
	if cfg.db.addr == "" || cfg.db.serviceKey == "" {
		logger.Warn("DATABASE_URL or SERVICE_ROLE_KEY missing, /frontend/products will answer 500")
	} else {
		pool, err := db.New(cfg.db.addr, cfg.db.serviceKey, cfg.db.maxConns, cfg.db.maxIdleTime)
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("database connection pool established")
		store = storage.NewContainer(pool)
	}

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		catalog:     cat,
		listing:     products.NewService(store.Products, logger),
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("catalog_products", expvar.Func(func() any {
		return cat.Len()
	}))
	expvar.Publish("database", expvar.Func(func() any {
		return store.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
