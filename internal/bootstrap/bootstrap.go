package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	bookmarksoutadapter "confmate/internal/modules/bookmarks/adapter/out"
	bookmarksservice "confmate/internal/modules/bookmarks/service"
	bookmarksusecase "confmate/internal/modules/bookmarks/usecase"
	eventinadapter "confmate/internal/modules/event/adapter/in"
	eventusecase "confmate/internal/modules/event/usecase"
	feedbackinadapter "confmate/internal/modules/feedback/adapter/in"
	feedbackoutadapter "confmate/internal/modules/feedback/adapter/out"
	feedbackservice "confmate/internal/modules/feedback/service"
	feedbackusecase "confmate/internal/modules/feedback/usecase"
	identityinadapter "confmate/internal/modules/identity/adapter/in"
	identityoutadapter "confmate/internal/modules/identity/adapter/out"
	identityservice "confmate/internal/modules/identity/service"
	identityusecase "confmate/internal/modules/identity/usecase"
	programoutadapter "confmate/internal/modules/program/adapter/out"
	programservice "confmate/internal/modules/program/service"
	programusecase "confmate/internal/modules/program/usecase"
	sponsorsoutadapter "confmate/internal/modules/sponsors/adapter/out"
	sponsorsservice "confmate/internal/modules/sponsors/service"
	sponsorsusecase "confmate/internal/modules/sponsors/usecase"
	"confmate/internal/platform/clock"
	"confmate/internal/platform/config"
	"confmate/internal/platform/httpx"
	"confmate/internal/platform/id"
	"confmate/internal/platform/kv"
	"confmate/internal/platform/logging"
	uiapp "confmate/internal/ui/app"
)

// App holds the wired inbound handlers plus the resources that need
// explicit teardown.
type App struct {
	EventCLI    eventinadapter.CLIHandler
	FeedbackCLI feedbackinadapter.CLIHandler
	IdentityCLI identityinadapter.CLIHandler
	DeviceID    string

	store *kv.SQLiteStore
}

// New wires the whole application. Device identity is resolved eagerly: with
// no usable identity nothing downstream can attribute its requests, so a
// failure here aborts startup.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger := logging.New(cfg.LogLevel)
	clk := clock.SystemClock{}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	identityUC := identityusecase.NewInteractor(identityservice.NewIdentityService(
		identityoutadapter.NewKVIdentityStore(store),
		id.UUID{},
		logger,
	))
	deviceID, err := identityUC.GetOrCreate(ctx)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("resolve device identity: %w", err)
	}

	client := httpx.NewClient(cfg.FetchTimeout, deviceID, logger)

	programUC := programusecase.NewInteractor(programservice.NewProgramService(
		programoutadapter.NewHTTPSource(client, cfg.Event.SpeakersURL, cfg.Event.SessionsURL),
		cfg.Event.ID,
		logger,
	))

	bookmarksUC := bookmarksusecase.NewInteractor(bookmarksservice.NewBookmarkService(
		bookmarksoutadapter.NewKVRecordStore(store),
		cfg.Event.ID,
		logger,
	))

	sponsorsUC := sponsorsusecase.NewInteractor(sponsorsservice.NewSponsorService(
		sponsorsoutadapter.NewHTTPSource(client, cfg.Event.SponsorsURL),
		logger,
	))

	feedbackUC := feedbackusecase.NewInteractor(feedbackservice.NewFeedbackService(
		feedbackoutadapter.NewHTTPSubmitter(client, cfg.Event.FeedbackURL),
		clk,
		deviceID,
		logger,
	))

	eventUC := eventusecase.NewInteractor(cfg.Event.ID, programUC, bookmarksUC, sponsorsUC)

	return &App{
		EventCLI:    eventinadapter.NewCLIHandler(eventUC),
		FeedbackCLI: feedbackinadapter.NewCLIHandler(feedbackUC),
		IdentityCLI: identityinadapter.NewCLIHandler(identityUC),
		DeviceID:    deviceID,
		store:       store,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

func RunTUI(eventName string, app *App) error {
	model := uiapp.NewModel(eventName, app.DeviceID, app.EventCLI, app.FeedbackCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
