package ui

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Kaerdin/ChessTalk/internal/view"
)

// Options configures a Viewer.
type Options struct {
	Layout    view.Layout
	Theme     *view.Theme
	AssetsDir string
	TPS       int
	// Notice, if set, is shown as a warning toast when the window opens.
	Notice string
}

// Viewer implements ebiten.Game. It owns the navigation state; all of
// it is touched only from Update and Draw on the game loop goroutine.
type Viewer struct {
	games  []*view.GameView
	nav    *view.Navigator
	layout view.Layout
	theme  *view.Theme

	boardRenderer *view.BoardRenderer
	panelRenderer *view.PanelRenderer
	sprites       *SpriteManager
	input         *InputHandler
	toasts        *ToastManager
	faces         *faceCache

	titleDirty bool
	tps        int
	log        *zap.SugaredLogger

	// HiDPI scaling
	scale float64
}

// NewViewer creates a viewer over games, starting at start (clamped).
// It fails with view.ErrNoGames when games is empty.
func NewViewer(games []*view.GameView, start int, opts Options, log *zap.SugaredLogger) (*Viewer, error) {
	nav, err := view.NewNavigator(len(games), start)
	if err != nil {
		return nil, err
	}
	if opts.Theme == nil {
		opts.Theme = view.DefaultTheme()
	}
	if opts.TPS <= 0 {
		opts.TPS = 30
	}

	source, err := loadFaceSource()
	if err != nil {
		log.Warnw("font unavailable, text will not be drawn", "error", err)
	}

	sprites := NewSpriteManager(opts.AssetsDir, opts.Layout.GlyphSize(), log)

	v := &Viewer{
		games:         games,
		nav:           nav,
		layout:        opts.Layout,
		theme:         opts.Theme,
		boardRenderer: view.NewBoardRenderer(opts.Layout, opts.Theme, sprites),
		panelRenderer: view.NewPanelRenderer(opts.Layout, opts.Theme),
		sprites:       sprites,
		input:         NewInputHandler(),
		toasts:        NewToastManager(),
		faces:         newFaceCache(source),
		titleDirty:    true,
		tps:           opts.TPS,
		log:           log,
		scale:         1.0,
	}

	if opts.Notice != "" {
		v.toasts.Show(opts.Notice, ToastWarning, 5*time.Second)
	}
	if n := sprites.Missing(); n > 0 {
		v.toasts.Show("Some piece images are missing", ToastInfo, 3*time.Second)
	}

	return v, nil
}

// Current returns the game on screen.
func (v *Viewer) Current() *view.GameView {
	return v.games[v.nav.Current()]
}

// Run opens the window and blocks until it is closed. GPU resources are
// released before Run returns.
func (v *Viewer) Run() error {
	defer v.sprites.Dispose()

	w, h := v.layout.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(v.Current().Title())
	ebiten.SetTPS(v.tps)
	ebiten.SetWindowClosingHandled(true)

	v.log.Infow("viewer started", "games", len(v.games), "index", v.nav.Current())

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	v.log.Infow("viewer closed", "index", v.nav.Current())
	return err
}

// Update drains input and applies it before the next Draw.
func (v *Viewer) Update() error {
	v.toasts.Update()

	res := view.Dispatch(v.input.Poll(v.scale), v.nav, v.layout)
	if res.Changed {
		v.titleDirty = true
		v.log.Debugw("game selected", "index", v.nav.Current(), "id", v.Current().ID)
	}
	if res.Close {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	g := v.Current()
	if v.titleDirty {
		ebiten.SetWindowTitle(g.Title())
		v.titleDirty = false
	}

	// Clear background
	screen.Fill(v.theme.Background)

	c := newCanvas(screen, v.scale, v.faces)
	v.boardRenderer.Render(c, g.Board, g.WhiteBottom())
	v.panelRenderer.Render(c, g, v.nav.Current(), v.nav.Len())
	v.toasts.Draw(c, v.layout.BoardSize())
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	v.scale = ebiten.Monitor().DeviceScaleFactor()
	if v.scale < 1.0 {
		v.scale = 1.0 // Ensure minimum scale of 1.0
	}

	w, h := v.layout.ScreenSize()
	return int(float64(w) * v.scale), int(float64(h) * v.scale)
}
