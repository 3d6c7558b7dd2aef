package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"turnero/internal/api"
	"turnero/internal/auth"
	"turnero/internal/repository"
	"turnero/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()

	slotRepo := repository.NewSlotRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)

	notifySvc := service.NewNotifyService()
	menuSvc := service.NewMenuService(catalogRepo, os.Getenv("WEB_URL"))
	bookingSvc := service.NewBookingService(slotRepo, notifySvc)
	availabilitySvc := service.NewAvailabilityService(slotRepo)
	seedSvc := service.NewSeedService(slotRepo, catalogRepo)
	adminSvc := service.NewAdminService(slotRepo, catalogRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)

	whatsappHandler := api.NewWhatsAppHandler(menuSvc)
	bookingHandler := api.NewBookingHandler(availabilitySvc, bookingSvc)
	adminHandler := api.NewAdminHandler(adminSvc, seedSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	horizonDays := service.DefaultHorizonDays
	if v := os.Getenv("SLOT_HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			horizonDays = n
		}
	}
	if inserted, err := seedSvc.EnsureHorizon(horizonDays); err != nil {
		log.Printf("Slot seeding on boot failed: %v", err)
	} else if inserted > 0 {
		log.Printf("Seeded %d new slots on boot", inserted)
	}

	c := cron.New()
	c.AddFunc("0 3 * * *", func() {
		inserted, err := seedSvc.EnsureHorizon(horizonDays)
		if err != nil {
			log.Printf("Cron Job: slot seeding failed: %v", err)
			return
		}
		log.Printf("Cron Job: seeded %d new slots", inserted)
	})
	c.Start()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/", api.StatusPage).Methods("GET")
	r.HandleFunc("/whatsapp", whatsappHandler.Receive).Methods("POST")
	r.HandleFunc("/api/slots", bookingHandler.ListSlots).Methods("GET")
	r.HandleFunc("/api/reserve", bookingHandler.Reserve).Methods("POST")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/slots/seed", adminHandler.SeedSlots).Methods("POST")
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/specialties", adminHandler.ListSpecialties).Methods("GET")
	admin.HandleFunc("/specialties/{id}", adminHandler.UpsertSpecialty).Methods("PUT")
	admin.HandleFunc("/users", adminAuthHandler.CreateAdmin).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
