// Package app wires configuration, the game service, the cache and the
// front ends together.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kaerdin/ChessTalk/internal/board"
	"github.com/Kaerdin/ChessTalk/internal/lichess"
	"github.com/Kaerdin/ChessTalk/internal/storage"
	"github.com/Kaerdin/ChessTalk/internal/view"
)

// ErrNoGames is returned at startup when there is nothing to show.
var ErrNoGames = errors.New("no games in progress")

// Fetcher supplies the games currently being played.
type Fetcher interface {
	NowPlaying(ctx context.Context) ([]lichess.PlayingGame, error)
}

// Cache keeps the last fetched list and the last viewed game.
type Cache interface {
	SaveSnapshot(snap *storage.Snapshot) error
	LoadSnapshot() (*storage.Snapshot, error)
	SetLastViewed(gameID string) error
	LastViewed() (string, error)
}

// Collection is the ordered game list plus where it came from.
type Collection struct {
	Games []*view.GameView
	// Cached is set when the list came from the cache after a failed fetch.
	Cached    bool
	FetchedAt time.Time
}

// Collect fetches the games in progress. On success the list is written
// to cache; on failure the cached list is used if there is one. cache may
// be nil.
func Collect(ctx context.Context, f Fetcher, cache Cache, log *zap.SugaredLogger) (*Collection, error) {
	playing, err := f.NowPlaying(ctx)
	if err == nil {
		snap := toSnapshot(playing)
		if cache != nil {
			if err := cache.SaveSnapshot(snap); err != nil {
				log.Warnw("failed to cache games", "error", err)
			}
		}
		return &Collection{Games: fromSnapshot(snap, log), FetchedAt: snap.FetchedAt}, nil
	}

	if cache == nil || errors.Is(err, lichess.ErrUnauthorized) {
		return nil, err
	}

	snap, cerr := cache.LoadSnapshot()
	if cerr != nil {
		log.Debugw("no usable cache", "error", cerr)
		return nil, err
	}
	log.Warnw("fetch failed, using cached games", "error", err, "fetched_at", snap.FetchedAt)
	return &Collection{Games: fromSnapshot(snap, log), Cached: true, FetchedAt: snap.FetchedAt}, nil
}

// Notice returns a message for the user about stale data, or "".
func (c *Collection) Notice() string {
	if !c.Cached {
		return ""
	}
	return fmt.Sprintf("Offline: games cached %s", c.FetchedAt.Local().Format("2006-01-02 15:04"))
}

func toSnapshot(playing []lichess.PlayingGame) *storage.Snapshot {
	snap := &storage.Snapshot{FetchedAt: time.Now()}
	for i := range playing {
		g := &playing[i]
		snap.Games = append(snap.Games, storage.CachedGame{
			ID:       g.ID(),
			FEN:      g.PositionFEN(),
			Color:    g.Color,
			Opponent: g.Opponent.Username,
			IsMyTurn: g.IsMyTurn,
			LastMove: g.LastMove,
		})
	}
	return snap
}

// fromSnapshot builds the views, skipping games whose position does not
// parse.
func fromSnapshot(snap *storage.Snapshot, log *zap.SugaredLogger) []*view.GameView {
	games := make([]*view.GameView, 0, len(snap.Games))
	for _, cg := range snap.Games {
		pos, err := board.ParseFEN(cg.FEN)
		if err != nil {
			log.Warnw("skipping game with unreadable position", "id", cg.ID, "error", err)
			continue
		}
		opponent := cg.Opponent
		if opponent == "" {
			opponent = "Anonymous"
		}
		games = append(games, &view.GameView{
			ID:          cg.ID,
			Board:       pos,
			PlayerColor: view.ParseSide(cg.Color),
			Opponent:    opponent,
			IsMyTurn:    cg.IsMyTurn,
			LastMove:    cg.LastMove,
		})
	}
	return games
}

// StartIndex picks the first game to show. A non-negative configured
// index wins; otherwise the last viewed game is resumed if it is still
// in the list, else the first game.
func StartIndex(games []*view.GameView, configured int, lastViewed string) int {
	if configured >= 0 {
		return configured
	}
	for i, g := range games {
		if lastViewed != "" && g.ID == lastViewed {
			return i
		}
	}
	return 0
}
