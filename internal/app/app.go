package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/five82/roster/internal/audio"
	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/render"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/sheet"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
	"github.com/five82/roster/internal/view"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	Debug      bool
}

// RenderOptions select the view state of a static render.
type RenderOptions struct {
	Options
	Search string
	Page   int
	Title  string
	// Section limits output to one group's markup; empty renders the page.
	Section render.Group
}

// Run boots the roster TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	loader, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	player := audio.NewController(audio.NewProcessBackend(cfg.AudioPlayer), cfg.AudioFile, userPrefs.Volume, userPrefs.Muted)
	defer func() { _ = player.Close() }()

	logger.Info("starting roster", zap.String("sheet", cfg.SheetURL), zap.Int("items_per_page", cfg.ItemsPerPage))

	uiOpts := ui.Options{
		Context:   ctx,
		Loader:    loader,
		Player:    player,
		Config:    &cfg,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// RenderStatic fetches the sheet once and writes the roster page (or one
// section of it) as HTML for the requested view state.
func RenderStatic(ctx context.Context, opts RenderOptions, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	loader, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}
	return renderSnapshot(loader.Load(ctx), cfg, opts, w)
}

func renderSnapshot(snap state.Snapshot, cfg config.Config, opts RenderOptions, w io.Writer) error {
	title := opts.Title
	if title == "" {
		title = "Members"
	}
	doc := render.NewDocument(title, cfg.ColumnsPerRow)
	renderer := render.Renderer{Placeholder: cfg.PlaceholderImage}

	if !snap.HasRoster() {
		renderer.Fail(doc)
	} else {
		members := snap.Roster.Members()
		st := view.New(cfg.ItemsPerPage)
		if opts.Search != "" {
			st = view.Apply(st, members, view.SearchChanged{Text: opts.Search})
		}
		for st.Page < opts.Page {
			next := view.Apply(st, members, view.Advance{})
			if next == st {
				break
			}
			st = next
		}
		doc.SetSearch(st.Search)
		renderer.Mount(doc, snap.Roster)
		renderer.Sync(doc, snap.Roster, st)
	}

	var err error
	if opts.Section != "" {
		err = doc.RenderSection(w, opts.Section)
	} else {
		err = doc.Render(w)
	}
	if err != nil {
		return err
	}
	if snap.Phase == state.PhaseFailed {
		return fmt.Errorf("roster unavailable: %w", errors.Join(ErrLoadFailed, snap.LastError))
	}
	return nil
}

// ErrLoadFailed marks a render that fell back to the error message.
var ErrLoadFailed = errors.New("sheet load failed")

func newLoader(cfg config.Config, logger *zap.Logger) (*Loader, error) {
	client, err := sheet.NewClient(cfg.SheetURL, cfg.Timeout())
	if err != nil {
		return nil, fmt.Errorf("init sheet client: %w", err)
	}
	return &Loader{
		Fetcher: client,
		Store:   &state.Store{},
		Options: roster.Options{SortMembers: cfg.SortMembers, Collation: cfg.CollationTag()},
		Logger:  logger,
	}, nil
}
