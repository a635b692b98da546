package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/travelease/travel-ease-api/api"
	"github.com/travelease/travel-ease-api/api/scheduler"
	"github.com/travelease/travel-ease-api/config"
	"github.com/travelease/travel-ease-api/databases"
	"github.com/travelease/travel-ease-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Verifier  api.TokenVerifier
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	guard := api.Auth{Verifier: a.Verifier}

	r := mux.NewRouter()
	r.Use(api.RequestLogger)
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	v := Vehicle{DB: databases.NewVehicleDatabase(a.dbHelper)}
	b := Booking{DB: databases.NewBookingDatabase(a.dbHelper), SendgridAPIKey: a.Config.SendgridAPIKey}
	t := Token{Secret: a.Config.JWTSecret}
	cloudinaryHandler := CloudinaryHandler{
		UploadPreset: a.Config.CloudinaryUploadPreset,
		APISecret:    a.Config.CloudinaryAPISecret,
	}

	r.HandleFunc("/", rootHandler).Methods("GET")
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	r.Handle("/getToken", http.HandlerFunc(t.CreateTokenHandler)).Methods("POST")

	r.Handle("/users", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")

	r.Handle("/vehicles", http.HandlerFunc(v.VehicleHandler)).Methods("GET")
	r.Handle("/vehicles", http.HandlerFunc(v.CreateVehicleHandler)).Methods("POST")
	r.Handle("/latest-vehicles", http.HandlerFunc(v.LatestVehiclesHandler)).Methods("GET")
	r.Handle("/vehicles/{vehicle_id}", http.HandlerFunc(v.VehicleByIDHandler)).Methods("GET")
	r.Handle("/vehicles/{vehicle_id}", http.HandlerFunc(v.UpdateVehicleHandler)).Methods("PATCH")
	r.Handle("/vehicles/{vehicle_id}", http.HandlerFunc(v.DeleteVehicleHandler)).Methods("DELETE")

	r.Handle("/myBookings", guard.Guard(http.HandlerFunc(b.BookingsByUserHandler))).Methods("GET")
	r.Handle("/myBookings", guard.Guard(http.HandlerFunc(b.CreateBookingHandler))).Methods("POST")
	r.Handle("/myBookings/{booking_id}", guard.Guard(http.HandlerFunc(b.DeleteBookingHandler))).Methods("DELETE")

	r.Handle("/upload-signature", guard.Guard(http.HandlerFunc(cloudinaryHandler.GenerateSignature))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("travel-ease-api has connected to the database")

	if a.Verifier == nil {
		verifier, err := api.NewFirebaseVerifier(context.Background(), a.Config.FirebaseServiceKey)
		if err != nil {
			// malformed service credentials are unrecoverable
			zap.S().With(err).Error("failed to initialize token verifier")
			return err
		}
		a.Verifier = verifier
	}

	bookingDB := databases.NewBookingDatabase(a.dbHelper)
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	if err := bookingDB.EnsureIndexes(ctx); err != nil {
		// the handler pre-check still catches the common duplicate
		zap.S().Warnw("failed to ensure booking indexes", "error", err)
	}

	a.Scheduler = scheduler.NewScheduler(bookingDB)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "TravelEase server is running")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
