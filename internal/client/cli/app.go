package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/compose"
	"github.com/dmitrijs2005/diarykeeper/internal/client/config"
	"github.com/dmitrijs2005/diarykeeper/internal/client/geo"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/client/repositories/entries"
	"github.com/dmitrijs2005/diarykeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/diarykeeper/internal/client/services"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	db           *sql.DB
	authService  services.AuthService
	entryService services.EntryService
	profiles     compose.ProfileStore
	media        compose.MediaStore
	flags        compose.FlagStore
	position     compose.PositionProvider
	geocoder     compose.Geocoder
	userName     string
	reader       *bufio.Reader
	out          io.Writer

	modeMu sync.RWMutex
	mode   Mode

	// screens tracks best-effort work of closed compose sessions.
	screens sync.WaitGroup
}

// NewApp opens the local database, dials the server and wires the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewJournalClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}

	profiles := services.NewProfileService(apiClient)
	as := services.NewAuthService(apiClient, db, profiles, log)
	es := services.NewEntryService(apiClient, entries.NewSQLiteRepository(db), log)
	ms := services.NewMediaService(apiClient, httpClient, c.UploadConcurrency, log)
	fs := services.NewFlagStore(metadata.NewSQLiteRepository(db))

	var position compose.PositionProvider = geo.StaticPosition{
		Coordinates: models.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude},
	}
	if c.PositionURL != "" {
		position = geo.HTTPPosition{URL: c.PositionURL, Client: httpClient}
	}

	return &App{
		config:       c,
		log:          log.With("module", "cli"),
		db:           db,
		authService:  as,
		entryService: es,
		profiles:     profiles,
		media:        ms,
		flags:        fs,
		position:     position,
		geocoder:     geo.AMapGeocoder{BaseURL: c.GeocoderURL, Key: c.GeocoderKey, Client: httpClient},
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

// Run starts the REPL and blocks until the user exits. Pending best-effort
// requests of closed compose sessions are awaited before the client closes.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.screens.Wait()
		if err := a.authService.Close(ctx); err != nil {
			a.log.Warn(ctx, "closing client", "error", err)
		}
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	if a.profiles == nil {
		return false
	}
	_, ok := a.profiles.Current()
	return ok
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode accordingly until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root prints the banner, starts the connectivity watcher and runs the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to diarykeeper (type 'help' for commands)")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) composeConfig() compose.Config {
	cfg := compose.Config{}
	if a.config != nil {
		cfg.BestEffortTimeout = a.config.BestEffortTimeout
		cfg.LocationTimeout = a.config.LocationTimeout
		if a.config.LegacySilentFailure {
			cfg.FailurePolicy = compose.FailureLegacySilent
		}
	}
	return cfg
}
