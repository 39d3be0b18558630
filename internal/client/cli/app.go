package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/healthdash/internal/client/api"
	"github.com/dmitrijs2005/healthdash/internal/client/auth"
	"github.com/dmitrijs2005/healthdash/internal/client/bootstrap"
	"github.com/dmitrijs2005/healthdash/internal/client/config"
	"github.com/dmitrijs2005/healthdash/internal/client/models"
	"github.com/dmitrijs2005/healthdash/internal/client/services"
	"github.com/dmitrijs2005/healthdash/internal/client/session"
	"github.com/dmitrijs2005/healthdash/internal/filex"
	"github.com/dmitrijs2005/healthdash/internal/logging"

	_ "modernc.org/sqlite"
)

// authGateway is the slice of the auth gateway the CLI commands use.
type authGateway interface {
	Signup(ctx context.Context, email, password string) auth.Result
	ConfirmSignup(ctx context.Context, email, code string) auth.Result
	Login(ctx context.Context, email, password string) auth.LoginResult
}

// profileService is the slice of the profile service the CLI commands use.
type profileService interface {
	Fetch(ctx context.Context) (*models.HealthProfile, error)
	Save(ctx context.Context, p *models.HealthProfile) (*models.HealthProfile, error)
	UploadDocument(ctx context.Context, path string) (*models.HealthProfile, error)
	Health(ctx context.Context) error
}

// sessionStore is the slice of the session manager the CLI commands use.
type sessionStore interface {
	Current(ctx context.Context) *models.AuthUser
	Clear(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session sessionStore
	auth    authGateway
	profile profileService
	reader  *bufio.Reader
}

// NewApp wires the full client: logger, local session database, session
// manager, identity-provider gateway, API client and profile service.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(cfg.LogLevel, cfg.DebugMode)

	dbPath := cfg.SessionDBPath
	if !filepath.IsAbs(dbPath) {
		dir, err := filex.EnsureSubDir("data")
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(dir, dbPath)
	}

	db, err := bootstrap.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Error(ctx, "failed to initialize session database", "error", err)
		return nil, err
	}

	sess := session.NewManager(db, log)
	gateway := auth.NewGateway(cfg.AWSRegion, cfg.CognitoClientID, sess, log)
	apiClient := api.New(cfg.APIBaseURL, sess, log, cfg.APITimeout)
	profiles := services.NewProfileService(apiClient, log)

	return &App{
		config:  cfg,
		log:     log,
		session: sess,
		auth:    gateway,
		profile: profiles,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn(a.config.AppName)
	a.Root(ctx)
}
