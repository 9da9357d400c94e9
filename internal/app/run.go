package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Kaerdin/ChessTalk/internal/config"
	"github.com/Kaerdin/ChessTalk/internal/lichess"
	"github.com/Kaerdin/ChessTalk/internal/storage"
	"github.com/Kaerdin/ChessTalk/internal/termview"
	"github.com/Kaerdin/ChessTalk/internal/ui"
	"github.com/Kaerdin/ChessTalk/internal/view"
)

// openCache opens the badger cache if enabled. Failure is not fatal; the
// viewer runs without offline support.
func openCache(cfg *config.Config, log *zap.SugaredLogger) *storage.Storage {
	if !cfg.Cache.Enabled {
		return nil
	}
	s, err := storage.NewStorage(cfg.Cache.Dir)
	if err != nil {
		log.Warnw("failed to open game cache", "error", err)
		return nil
	}
	return s
}

func newClient(cfg *config.Config) (*lichess.Client, error) {
	token, err := cfg.Token()
	if err != nil {
		return nil, err
	}
	return lichess.NewClient(cfg.API.BaseURL, token, cfg.API.Timeout), nil
}

// load collects the games, using the cache when it is available.
func load(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*Collection, *storage.Storage, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	store := openCache(cfg, log)
	var cache Cache
	if store != nil {
		cache = store
	}

	coll, err := Collect(ctx, client, cache, log)
	if err != nil {
		closeCache(store, log)
		return nil, nil, fmt.Errorf("fetch games: %w", err)
	}
	if len(coll.Games) == 0 {
		closeCache(store, log)
		return nil, nil, ErrNoGames
	}
	return coll, store, nil
}

func closeCache(s *storage.Storage, log *zap.SugaredLogger) {
	if s == nil {
		return
	}
	if err := s.Close(); err != nil {
		log.Warnw("failed to close game cache", "error", err)
	}
}

// RunView fetches the games and opens the viewer window. ErrNoGames is
// returned before any window is created.
func RunView(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	coll, store, err := load(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache(store, log)

	lastViewed := ""
	if store != nil {
		if lastViewed, err = store.LastViewed(); err != nil {
			log.Debugw("no last viewed game", "error", err)
		}
	}
	start := StartIndex(coll.Games, cfg.UI.StartIndex, lastViewed)
	log.Infow("games loaded", "count", len(coll.Games), "start", start, "cached", coll.Cached)

	opts := ui.Options{
		Layout: view.Layout{
			SquareSize: cfg.UI.SquareSize,
			PanelWidth: cfg.UI.PanelWidth,
			PieceScale: cfg.UI.PieceScale,
		},
		AssetsDir: cfg.UI.AssetsDir,
		TPS:       cfg.UI.TPS,
		Notice:    coll.Notice(),
	}

	viewer, err := ui.NewViewer(coll.Games, start, opts, log)
	if err != nil {
		return err
	}

	var cache Cache
	if store != nil {
		cache = store
	}
	return runSession(viewer, cache, log)
}

// session is a running viewer window.
type session interface {
	Run() error
	Current() *view.GameView
}

// runSession blocks in s.Run and then records the game left on screen.
// The cache is not touched while the window is open. cache may be nil.
func runSession(s session, cache Cache, log *zap.SugaredLogger) error {
	runErr := s.Run()
	if cache != nil {
		if err := cache.SetLastViewed(s.Current().ID); err != nil {
			log.Warnw("failed to remember game", "error", err)
		}
	}
	return runErr
}

// RunList prints every game to w.
func RunList(ctx context.Context, cfg *config.Config, w io.Writer, log *zap.SugaredLogger) error {
	coll, store, err := load(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache(store, log)

	if notice := coll.Notice(); notice != "" {
		fmt.Fprintln(w, notice)
	}
	for i, g := range coll.Games {
		termview.PrintGame(w, g, i, len(coll.Games))
	}
	return nil
}

// RunLogin prompts for a personal access token and stores it in the
// configured token file.
func RunLogin(cfg *config.Config, in *os.File, out io.Writer) error {
	fmt.Fprint(out, "Lichess API token: ")
	token, err := readToken(in)
	fmt.Fprintln(out)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return errors.New("empty token")
	}
	if err := cfg.SaveToken(token); err != nil {
		return err
	}
	fmt.Fprintf(out, "Token saved to %s\n", cfg.API.TokenFile)
	return nil
}

// readToken reads without echo from a terminal, or a single line otherwise.
func readToken(in *os.File) (string, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	var line string
	if _, err := fmt.Fscanln(in, &line); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
