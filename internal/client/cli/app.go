package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/client/calendar"
	"github.com/crewhive/crewhive/internal/client/config"
	"github.com/crewhive/crewhive/internal/client/models"
	"github.com/crewhive/crewhive/internal/client/services"
	"github.com/crewhive/crewhive/internal/client/session"
	"github.com/crewhive/crewhive/internal/demo"
	"github.com/crewhive/crewhive/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeDemo    Mode = "demo"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	cal      services.CalendarService
	view     *calendar.View
	loc      *time.Location
	log      logging.Logger
	userName string
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	loc := c.Location()

	var (
		client api.Client
		store  session.Store
		mode   Mode
	)
	if c.DemoMode {
		client = demo.NewClient(loc)
		store = session.NewMemoryStore()
		mode = ModeDemo
	} else {
		db, err := session.OpenDatabase(ctx, c.DatabasePath)
		if err != nil {
			log.Error(ctx, "error initializing session database", "error", err)
			return nil, err
		}
		httpClient := api.NewHTTPClient(c.ServerBaseURL)
		sqliteStore := session.NewSQLiteStore(db)
		httpClient.OnTokensUpdated = func(access, refresh string) {
			_ = sqliteStore.Save(context.Background(), access, refresh)
		}
		client, store, mode = httpClient, sqliteStore, ModeOnline
	}

	view := calendar.NewView("", models.Midnight(time.Now(), loc))

	return &App{
		config: c,
		auth:   services.NewAuthService(client, store, c.RefreshThreshold),
		cal:    services.NewCalendarService(client, view, loc, log),
		view:   view,
		loc:    loc,
		log:    log,
		Mode:   mode,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher probes the backend on the given interval and
// flips the mode between online and offline. Demo mode is never changed.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if a.Mode == ModeDemo {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
