package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "health-companion/docs"
	"health-companion/internal/adapters/auth/local"
	mem "health-companion/internal/adapters/storage/memory"
	pg "health-companion/internal/adapters/storage/postgres"
	"health-companion/internal/domain/account"
	"health-companion/internal/domain/appointments"
	"health-companion/internal/domain/calendar"
	"health-companion/internal/domain/healthprofile"
	"health-companion/internal/domain/medications"
	"health-companion/internal/middleware"
	"health-companion/internal/platform/logger"
	"health-companion/internal/ports/auth"
	"health-companion/internal/ports/securestore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Secreto del provider local cuando nadie configura auth (solo dev).
const devSecret = "health-companion-dev-secret"

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si es nil se usa un provider local en memoria.
	AuthProvider auth.Provider

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: Redis u otro store; default in-memory.
	SecureStore securestore.Store

	Logger logger.Logger

	// Reloj compartido por los módulos que dependen de "hoy"; default time.Now.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		medRepo     medications.Repository
		apptRepo    appointments.Repository
		profileRepo healthprofile.Repository
	)
	if opts.DB != nil {
		medRepo = pg.NewMedicationsRepo(opts.DB)
		apptRepo = pg.NewAppointmentsRepo(opts.DB)
		profileRepo = pg.NewHealthProfileRepo(opts.DB)
	} else {
		medRepo = mem.NewMedicationRepo()
		apptRepo = mem.NewAppointmentRepo()
		profileRepo = mem.NewHealthProfileRepo()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := opts.SecureStore
	if store == nil {
		store = mem.NewSecureStore()
	}

	provider := opts.AuthProvider
	if provider == nil {
		p, err := local.NewProvider(mem.NewAccountRepo(), store, local.Options{Secret: devSecret})
		if err != nil {
			// Solo falla con secreto vacío o deps nil; acá ninguno aplica.
			panic(err)
		}
		provider = p
	}

	// Services por módulo
	medsSvc := medications.NewService(medRepo).WithClock(now)
	apptsSvc := appointments.NewService(apptRepo)
	calendarSvc := calendar.NewService(medsSvc, apptsSvc).WithClock(now)
	profileSvc := healthprofile.NewService(profileRepo).WithClock(now)
	accountSvc := account.NewService(provider, store)

	// Rutas por módulo
	medications.RegisterRoutes(r, medsSvc)
	appointments.RegisterRoutes(r, apptsSvc)
	calendar.RegisterRoutes(r, calendarSvc)
	healthprofile.RegisterRoutes(r, profileSvc)
	account.RegisterRoutes(r, accountSvc)

	return r
}
