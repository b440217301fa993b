package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/ui/layout"
)

// Handler turns mouse and keyboard state into engine actions once per frame.
type Handler struct {
	layout layout.Layout

	// Mouse state
	mouseX, mouseY int

	pending []layout.Action
}

func NewHandler(l layout.Layout) *Handler {
	return &Handler{
		layout:  l,
		pending: make([]layout.Action, 0, 1),
	}
}

// SetLayout replaces the hit-testing layout, e.g. after a config reload.
func (h *Handler) SetLayout(l layout.Layout) {
	h.layout = l
}

// Update samples input for the frame described by s and queues at most one action.
func (h *Handler) Update(s game.Snapshot) {
	h.mouseX, h.mouseY = GetCursorPosition()

	in := layout.FrameInput{
		X:       h.mouseX,
		Y:       h.mouseY,
		Click:   IsLeftClickJustPressed(),
		Toggle:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Back:    inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Forward: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		Home:    inpututil.IsKeyJustPressed(ebiten.KeyHome),
	}
	if a, ok := h.layout.Resolve(in, s); ok {
		h.pending = append(h.pending[:0], a)
	}
}

// Drain returns the queued actions and clears the queue.
func (h *Handler) Drain() []layout.Action {
	if len(h.pending) == 0 {
		return nil
	}
	actions := append([]layout.Action(nil), h.pending...)
	h.pending = h.pending[:0]
	return actions
}

// GetHoveredCell returns the cell under the cursor if a mark could be placed there.
func (h *Handler) GetHoveredCell(s game.Snapshot) (int, bool) {
	return h.layout.HoverCell(h.mouseX, h.mouseY, s)
}
