package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stastashpulatov/clinic-bot/internal/appointments"
	"github.com/stastashpulatov/clinic-bot/internal/auth"
	"github.com/stastashpulatov/clinic-bot/internal/config"
	"github.com/stastashpulatov/clinic-bot/internal/doctors"
	"github.com/stastashpulatov/clinic-bot/internal/messaging"
	"github.com/stastashpulatov/clinic-bot/internal/patients"
	"github.com/stastashpulatov/clinic-bot/internal/schedule"
	"github.com/stastashpulatov/clinic-bot/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// SetupRouter initializes all routes for the application
func SetupRouter(db *sql.DB, cfg config.Config, grid schedule.Config, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *mux.Router {
	// Initialize doctor components
	doctorRepo := doctors.NewRepository(db, cfg.TablePrefix)
	doctorService := doctors.NewService(doctorRepo)
	doctorHandler := doctors.NewHandler(doctorService)

	// Initialize patient components
	patientRepo := patients.NewRepository(db, cfg.TablePrefix)
	patientService := patients.NewService(patientRepo, publisher)

	// Initialize appointment components
	apptRepo := appointments.NewRepository(db, cfg.TablePrefix)
	apptService := appointments.NewService(apptRepo, patientService, grid, publisher)
	apptHandler := appointments.NewHandler(apptService)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("clinic-bot-api"))

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"clinic-bot-api"}`))
	}).Methods("GET")

	requireKey := auth.Middleware(cfg.APIKey)
	if metrics != nil {
		requireKey = auth.MiddlewareWithMetrics(cfg.APIKey, metrics)
	}

	// Doctor routes
	r.Handle("/doctors",
		requireKey(http.HandlerFunc(doctorHandler.List)),
	).Methods("GET")

	// Appointment routes
	r.Handle("/get-appointments",
		requireKey(http.HandlerFunc(apptHandler.GetAppointments)),
	).Methods("GET")

	r.Handle("/available-slots",
		requireKey(http.HandlerFunc(apptHandler.AvailableSlots)),
	).Methods("GET")

	r.Handle("/appointments",
		requireKey(http.HandlerFunc(apptHandler.Create)),
	).Methods("POST")

	r.Handle("/cancel-appointment",
		requireKey(http.HandlerFunc(apptHandler.Cancel)),
	).Methods("POST")

	r.Handle("/update-status",
		requireKey(http.HandlerFunc(apptHandler.UpdateStatus)),
	).Methods("POST")

	r.Handle("/my-appointments",
		requireKey(http.HandlerFunc(apptHandler.MyAppointments)),
	).Methods("GET")

	r.Handle("/all-appointments",
		requireKey(http.HandlerFunc(apptHandler.AllAppointments)),
	).Methods("GET")

	return r
}
