// Package lichess fetches the games a user is currently playing.
package lichess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the service rejects the token.
var ErrUnauthorized = errors.New("lichess: token rejected")

const playingPath = "/api/account/playing"

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 512

// Client talks to the Lichess API with a personal access token.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a client for baseURL. A zero timeout means no timeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Opponent is the other player of a game.
type Opponent struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
}

// PlayingGame is one entry of the "now playing" list.
type PlayingGame struct {
	FullID   string   `json:"fullId"`
	GameID   string   `json:"gameId"`
	FEN      string   `json:"fen"`
	Color    string   `json:"color"`
	LastMove string   `json:"lastMove"`
	IsMyTurn bool     `json:"isMyTurn"`
	Opponent Opponent `json:"opponent"`
	Speed    string   `json:"speed"`
	Variant  struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"variant"`
}

// playingResponse is the body of GET /api/account/playing.
type playingResponse struct {
	NowPlaying []PlayingGame `json:"nowPlaying"`
}

// StatusError reports a non-200 response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lichess: unexpected status %d: %s", e.Code, e.Body)
}

// NowPlaying returns the games in progress for the token's account, in
// the order the service lists them.
func (c *Client) NowPlaying(ctx context.Context) ([]PlayingGame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+playingPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch playing games: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result playingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode playing games: %w", err)
	}
	return result.NowPlaying, nil
}

// ID returns the identifier used for the game, preferring the short id.
func (g *PlayingGame) ID() string {
	if g.GameID != "" {
		return g.GameID
	}
	if len(g.FullID) > 8 {
		return g.FullID[:8]
	}
	return g.FullID
}

// PositionFEN returns a FEN for the game. The service sends only the
// piece placement; the side to move is filled in from the turn flag.
func (g *PlayingGame) PositionFEN() string {
	fen := strings.TrimSpace(g.FEN)
	if len(strings.Fields(fen)) != 1 {
		return fen
	}

	turn := "w"
	switch strings.ToLower(g.Color) {
	case "white":
		if !g.IsMyTurn {
			turn = "b"
		}
	case "black":
		if g.IsMyTurn {
			turn = "b"
		}
	}
	return fen + " " + turn
}
