package ui

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/TicTacToe/internal/common"
	"github.com/mitchelldurbincs/TicTacToe/internal/config"
	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events"
	"github.com/mitchelldurbincs/TicTacToe/internal/ui/input"
	"github.com/mitchelldurbincs/TicTacToe/internal/ui/layout"
	"github.com/mitchelldurbincs/TicTacToe/internal/ui/renderer"
)

// messageFrames is how long a rejection message stays on screen (two seconds at 60 TPS)
const messageFrames = 120

// UI configuration functions
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

// UIGame adapts the engine to ebiten's game loop. All engine calls happen on
// the loop goroutine.
type UIGame struct {
	engine          *game.Engine
	boardRenderer   *renderer.BoardRenderer
	historyRenderer *renderer.HistoryRenderer
	inputHandler    *input.Handler
	defaultFont     font.Face
	logger          zerolog.Logger
	background      color.RGBA
	width, height   int

	// UI state
	statusMessage string
	messageTimer  int

	reloadRequested atomic.Bool
}

// NewUIGame creates a new Ebitengine game instance. When bus is non-nil,
// rejected placements published on it are shown as a status message.
func NewUIGame(engine *game.Engine, bus events.Bus, logger zerolog.Logger) (*UIGame, error) {
	g := &UIGame{
		engine:      engine,
		defaultFont: basicfont.Face7x13,
		logger:      logger.With().Str("component", "UIGame").Logger(),
	}

	l, p := currentLayout()
	g.background = p.Background
	g.width, g.height = ScreenWidth(), ScreenHeight()
	g.boardRenderer = renderer.NewBoardRenderer(l, p, g.defaultFont)
	g.boardRenderer.SetShowCoordinates(config.Get().Development.ShowCoordinates)
	g.historyRenderer = renderer.NewHistoryRenderer(l, p, g.defaultFont)
	g.inputHandler = input.NewHandler(l)

	if bus != nil {
		bus.SubscribeFunc(events.TypeMoveRejected, func(e events.Event) {
			if rejected, ok := e.(*events.MoveRejectedEvent); ok {
				g.showMessage(layout.RejectionMessage(rejected.Reason))
			}
		})
	}

	return g, nil
}

func currentLayout() (layout.Layout, common.Palette) {
	c := config.Get()
	return layout.New(c.UI), common.PaletteFrom(c.Colors)
}

// RequestReload asks the loop to pick up new layout and colors on the next
// Update. Safe to call from any goroutine.
func (g *UIGame) RequestReload() {
	g.reloadRequested.Store(true)
}

func (g *UIGame) showMessage(msg string) {
	g.statusMessage = msg
	g.messageTimer = messageFrames
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	if g.reloadRequested.CompareAndSwap(true, false) {
		l, p := currentLayout()
		g.background = p.Background
		g.width, g.height = ScreenWidth(), ScreenHeight()
		g.boardRenderer.SetLayout(l, p)
		g.boardRenderer.SetShowCoordinates(config.Get().Development.ShowCoordinates)
		g.historyRenderer.SetLayout(l, p)
		g.inputHandler.SetLayout(l)
		g.logger.Info().Msg("Layout reloaded")
	}

	if g.messageTimer > 0 {
		g.messageTimer--
		if g.messageTimer == 0 {
			g.statusMessage = ""
		}
	}

	g.inputHandler.Update(g.engine.Snapshot())

	for _, action := range g.inputHandler.Drain() {
		if err := action.Apply(g.engine); err != nil {
			// The engine already logged and published the rejection.
			g.logger.Debug().Err(err).Str("action", action.Kind.String()).Msg("Action ignored")
			continue
		}
		if action.Kind != layout.ActionPlace {
			g.statusMessage = ""
			g.messageTimer = 0
		}
	}

	return nil
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	s := g.engine.Snapshot()
	hover, ok := g.inputHandler.GetHoveredCell(s)
	if !ok {
		hover = -1
	}

	g.boardRenderer.Draw(screen, s, hover)
	g.historyRenderer.Draw(screen, s, g.statusMessage)
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
