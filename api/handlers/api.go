package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/api/catalog"
	"github.com/fivelives/tablet-api/api/identity"
	"github.com/fivelives/tablet-api/api/reports"
	"github.com/fivelives/tablet-api/api/scheduler"
	"github.com/fivelives/tablet-api/clients/discord"
	"github.com/fivelives/tablet-api/clients/fivem"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/databases/migrations"
	"github.com/fivelives/tablet-api/models"
)

// RequestTimeout bounds every /api request
const RequestTimeout = 30 * time.Second

// App stores the router and db connections, so they can be reused
type App struct {
	Router *mux.Router
	Config config.Config

	// GameDB is the game server database, AppDB the tablet database
	GameDB *sqlx.DB
	AppDB  *sqlx.DB
	LogDB  databases.LogDatabase

	mongoClient databases.ClientHelper
	scheduler   *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	gameCitizens := databases.NewCitizenDatabase(a.GameDB)
	users := databases.NewUserDatabase(a.AppDB)
	snapshot := identity.NewSnapshot(a.Config.PlayersDBPath)

	rep := Report{Service: reports.NewService(
		databases.NewReportDatabase(a.GameDB),
		databases.NewBillDatabase(a.GameDB),
		databases.NewAnnotationDatabase(a.AppDB),
	)}
	proc := Procura{DB: databases.NewProcuraDatabase(a.AppDB)}
	cit := Citizen{
		DB:        gameCitizens,
		Identity:  identity.NewResolver(users, snapshot),
		Catalog:   catalog.New(a.Config.ItemsPath, a.Config.WeaponsPath),
		AgentJobs: a.Config.AgentJobs,
	}
	logs := Logs{DB: a.LogDB}
	roles := Roles{Discord: discord.New(a.Config.Discord)}
	status := Status{FiveM: fivem.New(a.Config.FiveM)}
	players := Players{UDB: users, CDB: gameCitizens, Snapshot: snapshot}
	relay := NewRelay()

	auth := api.AuthMiddleware(a.Config.SecretKey)
	allowList := api.LogAllowList(a.Config.LogAuthorizedIPs, a.Config.LogAuthorizedPorts)

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)
	r.Handle("/metrics", api.MetricsHandler())
	r.HandleFunc("/ws", relay.RelayHandler)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(api.JSONMiddleware, api.TimeoutMiddleware(RequestTimeout))

	apiRouter.Handle("/personaggi", auth(http.HandlerFunc(cit.PersonaggiHandler))).Methods("GET")
	apiRouter.HandleFunc("/jobs", cit.JobsHandler).Methods("GET")
	apiRouter.HandleFunc("/grades", cit.GradesHandler).Methods("GET")
	apiRouter.HandleFunc("/getJob/{id}", cit.JobHandler).Methods("GET")
	apiRouter.HandleFunc("/badgeNumber/{id}", cit.BadgeHandler).Methods("GET")

	apiRouter.HandleFunc("/procura/articoli", proc.ArticlesHandler).Methods("GET")
	apiRouter.HandleFunc("/procura/simplearticoli", proc.SimpleArticlesHandler).Methods("GET")
	apiRouter.HandleFunc("/procura/articoli/categorie", proc.CategoriesHandler).Methods("GET")
	apiRouter.HandleFunc("/procura/aziende", proc.CompaniesHandler).Methods("GET")
	apiRouter.HandleFunc("/procura/settimane", proc.WeeksHandler).Methods("GET")
	apiRouter.HandleFunc("/procura/tassazioni", proc.TaxationsHandler).Methods("GET")
	apiRouter.HandleFunc("/procura/tassazioni/{company}/imposte/{week}", proc.TaxesHandler).Methods("GET")
	apiRouter.HandleFunc("/procura/aziende/{company}/update/status/{week}", proc.CompanyStatusHandler).Methods("PUT")
	apiRouter.HandleFunc("/procura/tassazioni/{company}/update/value/{week}", proc.TaxationValueHandler).Methods("PUT")
	apiRouter.HandleFunc("/procura/tassazioni/{company}/update/riscossione/{week}", proc.CollectedHandler).Methods("PUT")
	apiRouter.HandleFunc("/procura/tassazioni/{company}/update/deposito/{week}", proc.DepositedHandler).Methods("PUT")

	apiRouter.HandleFunc("/reports/all", rep.AllReportsHandler).Methods("GET")
	apiRouter.HandleFunc("/reports/report/{id}", rep.ReportByIDHandler).Methods("GET")
	apiRouter.Handle("/reports/crea/{id}", auth(http.HandlerFunc(rep.CreateAnnotationHandler))).Methods("POST")
	apiRouter.HandleFunc("/reports/create", rep.CreateReportHandler).Methods("POST")
	apiRouter.HandleFunc("/reports/save", rep.SaveReportHandler).Methods("POST")
	apiRouter.HandleFunc("/reports/delete", rep.DeleteReportHandler).Methods("POST")
	apiRouter.HandleFunc("/reports/applyfee", rep.ApplyFeeHandler).Methods("POST")
	apiRouter.HandleFunc("/reports/agenti", cit.AgentsHandler).Methods("GET")
	apiRouter.HandleFunc("/reports/citizens", cit.CitizensHandler).Methods("GET")

	apiRouter.HandleFunc("/citizens/items", cit.ItemsHandler).Methods("GET")
	apiRouter.HandleFunc("/citizens/inventories", cit.InventoriesHandler).Methods("GET")
	apiRouter.HandleFunc("/citizens/vehicles", cit.VehiclesHandler).Methods("GET")

	apiRouter.HandleFunc("/logs/allLogs", logs.AllLogsHandler).Methods("GET")
	apiRouter.HandleFunc("/logs", logs.BatchHandler).Methods("POST")
	apiRouter.Handle("/logs/{plugin}", allowList(http.HandlerFunc(logs.WebhookHandler))).Methods("POST")
	apiRouter.Handle("/logs/{plugin}/{type}", allowList(http.HandlerFunc(logs.WebhookHandler))).Methods("POST")

	apiRouter.HandleFunc("/checkroles", roles.CheckRolesHandler).Methods("GET")
	apiRouter.HandleFunc("/server-status", status.StatusHandler).Methods("GET")
	apiRouter.HandleFunc("/status", status.StatusHandler).Methods("GET")
	apiRouter.HandleFunc("/access", players.AccessHandler).Methods("GET")
	apiRouter.HandleFunc("/pgs", players.PgsHandler).Methods("GET")

	return r
}

// Handler wraps the router with CORS for the tablet front-end
func (a *App) Handler() http.Handler {
	return api.CORS(a.Config.AllowedOrigins)(a.Router)
}

// Initialize is invoked by main to connect with the databases and create a router
func (a *App) Initialize() error {
	var err error
	a.GameDB, err = databases.OpenGame(a.Config.GameDB)
	if err != nil {
		zap.S().Errorw("failed to open game database", "error", err)
		return err
	}
	a.AppDB, err = databases.OpenApp(a.Config.AppDB)
	if err != nil {
		zap.S().Errorw("failed to open app database", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.GameDB.PingContext(ctx); err != nil {
		zap.S().Errorw("failed to connect to game database", "error", err)
		return err
	}
	if err := a.AppDB.PingContext(ctx); err != nil {
		zap.S().Errorw("failed to connect to app database", "error", err)
		return err
	}
	zap.S().Info("tablet-api has connected to the databases")

	if a.Config.MigrateOnStart {
		if err := migrations.Apply(a.AppDB.DB); err != nil {
			zap.S().Errorw("failed to migrate app database", "error", err)
			return err
		}
	}

	if err := a.initializeLogStore(ctx); err != nil {
		return err
	}

	if a.Config.RolloverSchedule != "" {
		a.scheduler = scheduler.NewScheduler(databases.NewProcuraDatabase(a.AppDB), a.Config.RolloverSchedule)
		if err := a.scheduler.Start(); err != nil {
			return err
		}
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeLogStore(ctx context.Context) error {
	if a.Config.LogStore != "mongo" {
		a.LogDB = databases.NewSQLLogDatabase(a.AppDB)
		return nil
	}

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		zap.S().Errorw("failed to create new mongo client", "error", err)
		return err
	}
	if err := client.Connect(ctx); err != nil {
		zap.S().Errorw("failed to connect to mongo", "error", err)
		return err
	}
	a.mongoClient = client
	a.LogDB = databases.NewMongoLogDatabase(databases.NewDatabase(&a.Config, client))
	zap.S().Infow("plugin logs are stored in mongo", "database", a.Config.MongoDatabase)
	return nil
}

// Close stops background jobs and releases the database connections
func (a *App) Close() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.mongoClient.Disconnect(ctx)
	}
	if a.GameDB != nil {
		_ = a.GameDB.Close()
	}
	if a.AppDB != nil {
		_ = a.AppDB.Close()
	}
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// writeJSON marshals v and writes it with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// pathInt reads an integer route variable
func pathInt(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

// decodeBody decodes a JSON request body into v
func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
