package main

import (
	"database/sql"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/tablelk/woodcraft-backend/internal/cart"
	"github.com/tablelk/woodcraft-backend/internal/catalog"
	"github.com/tablelk/woodcraft-backend/internal/config"
	"github.com/tablelk/woodcraft-backend/internal/localdata"
	"github.com/tablelk/woodcraft-backend/internal/order"
	"github.com/tablelk/woodcraft-backend/internal/session"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
// The catalog, session store and cart engine are constructed exactly once
// here and passed down; nothing is reached through package globals.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureTables(db)

	local := localdata.NewStore(cfg.DataDir)

	// catalog: static dataset, read-only
	catalogService := catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()))
	catalogHandler := catalog.NewHandler(catalogService)

	// session: thin adapter over the remote identity provider
	provider := session.NewPostgresProvider(db, []byte(cfg.JWTSecret))
	sessionStore := session.NewStore(provider, local)
	sessionHandler := session.NewHandler(sessionStore)

	// cart: reconciliation engine over local storage and the remote store
	engine := cart.NewEngine(catalogService, local, cart.NewPostgresRepository(db))
	engine.SetNotify(func(err error) {
		log.Printf("cart sync: %v", err)
	})
	sessionStore.OnChange(engine.HandleIdentityChange)
	engine.Start()
	sessionStore.Restore()
	cartHandler := cart.NewHandler(engine)

	// checkout: order-intent formatting, nothing persisted
	orderHandler := order.NewHandler(order.NewFormatter(), engine, catalogService, cfg.CheckoutWhatsApp, cfg.BuyNowWhatsApp)

	catalogHandler.RegisterPublicRoutes(app)
	sessionHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	// only profile and sign-out need a bearer token; carts are anonymous by
	// design and checkout carries no account state
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			p := c.Path()
			return p != "/api/v1/profile" && !strings.HasPrefix(p, "/api/v1/sign-out")
		},
	}))
	sessionHandler.RegisterProtectedRoutes(app)

	log.Printf("starting storefront on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// ensureTables provisions the remote-store schema when it is missing.
func ensureTables(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
		"userId" TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		"displayName" TEXT,
		"avatarUrl" TEXT,
		"createdAt" TEXT
	)`); err != nil {
		panic(err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS cart_items (
		"itemId" SERIAL PRIMARY KEY,
		"userId" TEXT NOT NULL,
		"productId" INT NOT NULL,
		quantity INT NOT NULL
	)`); err != nil {
		panic(err)
	}
}
