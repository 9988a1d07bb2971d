package main

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynelayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/zeromicro/go-zero/core/logx"

	"dotsandboxes/pkg/game"
	"dotsandboxes/pkg/grid"
	"dotsandboxes/pkg/layout"
	"dotsandboxes/pkg/music"
	"dotsandboxes/pkg/record"
)

const statusBarHeight = float32(40)

// BoardUI renders the engine state and feeds pointer input back into
// it. It holds no rules of its own: every decision comes from the
// engine, every pixel from the layout.
type BoardUI struct {
	engine  *game.Engine
	journal *record.Journal
	lay     layout.Layout
	window  fyne.Window

	boardContainer *fyne.Container
	board          *boardWidget
	dotCanvases    map[grid.Dot]*canvas.Circle
	edgeCanvases   map[grid.Edge]*canvas.Line
	boxCanvases    map[grid.Box]*canvas.Rectangle

	player1Label *widget.Label
	player2Label *widget.Label
	turnLabel    *widget.Label

	mu sync.Mutex
}

func NewBoardUI(engine *game.Engine, journal *record.Journal) *BoardUI {
	size := engine.Size()
	ui := &BoardUI{
		engine:         engine,
		journal:        journal,
		lay:            layout.NewLayout(size),
		boardContainer: container.NewWithoutLayout(),
		dotCanvases:    make(map[grid.Dot]*canvas.Circle),
		edgeCanvases:   make(map[grid.Edge]*canvas.Line),
		boxCanvases:    make(map[grid.Box]*canvas.Rectangle),
		player1Label:   widget.NewLabel(""),
		player2Label:   widget.NewLabel(""),
		turnLabel:      widget.NewLabel(""),
	}

	// Z-order: boxes under edges under dots.
	for _, b := range grid.Boxes(size) {
		r := canvas.NewRectangle(themeColor())
		ui.boxCanvases[b] = r
		ui.boardContainer.Add(r)
	}
	for _, e := range grid.Edges(size) {
		l := canvas.NewLine(UnclaimedEdgeColor)
		ui.edgeCanvases[e] = l
		ui.boardContainer.Add(l)
	}
	for _, d := range grid.Dots(size) {
		c := canvas.NewCircle(dotCanvasColor())
		ui.dotCanvases[d] = c
		ui.boardContainer.Add(c)
	}

	ui.board = newBoardWidget(ui)
	ui.reposition(ui.lay)
	ui.refreshStatus()
	return ui
}

// Root is the window content: status bar above the board.
func (ui *BoardUI) Root() fyne.CanvasObject {
	restart := widget.NewButton("Restart", func() { ui.Restart() })
	bar := container.NewHBox(
		ui.player1Label,
		ui.player2Label,
		ui.turnLabel,
		fynelayout.NewSpacer(),
		restart,
	)
	return container.NewBorder(bar, nil, nil, nil, ui.board)
}

// reposition lays every canvas out for the given geometry.
func (ui *BoardUI) reposition(l layout.Layout) {
	ui.lay = l
	for d, c := range ui.dotCanvases {
		p := l.DotPosition(d)
		c.Move(fyne.NewPos(p.X, p.Y))
		c.Resize(fyne.NewSize(l.DotWidth, l.DotWidth))
	}
	for e, line := range ui.edgeCanvases {
		p1, p2 := l.EdgeSegment(e)
		line.Position1 = fyne.NewPos(p1.X, p1.Y)
		line.Position2 = fyne.NewPos(p2.X, p2.Y)
		line.StrokeWidth = l.DotWidth
	}
	for b, r := range ui.boxCanvases {
		rect := l.BoxRect(b)
		r.Move(fyne.NewPos(rect.X, rect.Y))
		r.Resize(fyne.NewSize(rect.W, rect.H))
	}
}

// handleTap maps a pointer position to a candidate edge and plays it.
// Misses and expected rejections are silent.
func (ui *BoardUI) handleTap(pos fyne.Position) {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	e, ok := ui.lay.HitTest(layout.Point{X: pos.X, Y: pos.Y})
	if !ok {
		return
	}

	outcome, err := ui.engine.ApplyMove(e.Kind(), e.Row(), e.Col())
	switch {
	case errors.Is(err, game.ErrAlreadyClaimed), errors.Is(err, game.ErrGameFinished):
		logx.Debugf("move %s rejected: %v", e, err)
		return
	case errors.Is(err, game.ErrOutOfBounds):
		// The hit test only yields edges of this board, so this is an
		// integration bug, not a user mistake.
		logx.Errorf("hit test produced invalid edge %s: %v", e, err)
		return
	case err != nil:
		logx.Errorf("move %s failed: %v", e, err)
		return
	}

	ui.applyOutcome(e, outcome)
}

func (ui *BoardUI) applyOutcome(e grid.Edge, outcome game.MoveOutcome) {
	line := ui.edgeCanvases[e]
	line.StrokeColor = highlightColor(outcome.Edge.By)
	line.Refresh()

	for _, cb := range outcome.BoxesClosed {
		r := ui.boxCanvases[grid.NewBox(cb.Row, cb.Col)]
		r.FillColor = filledColor(cb.Owner)
		r.Refresh()
	}

	ui.journal.Record(outcome)
	ui.refreshStatus()
	logx.Infof("step %d: %s claims %s, score %d-%d",
		ui.engine.ClaimedCount(), outcome.Edge.By, e, outcome.Player1Score, outcome.Player2Score)

	switch {
	case outcome.Phase == game.PhaseFinished:
		go music.PlayGameOver()
	case len(outcome.BoxesClosed) > 0:
		go music.PlayScore()
	default:
		go music.PlayMove()
	}

	if outcome.Phase == game.PhaseFinished {
		logx.Infof("game %s over: %s", ui.journal.Uid, outcome.Outcome)
		ui.showGameOver(outcome.Outcome)
	}
}

func (ui *BoardUI) showGameOver(outcome game.Outcome) {
	dialog.ShowConfirm("Game Over", outcome.String()+"\n\nPlay again?", func(again bool) {
		if again {
			ui.Restart()
		}
	}, ui.window)
}

// Restart resets the engine and repaints the board to its initial
// look. The journal keeps the same file under a fresh game id.
func (ui *BoardUI) Restart() {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	ui.engine.Reset()
	ui.journal.Rotate()

	for _, line := range ui.edgeCanvases {
		line.StrokeColor = UnclaimedEdgeColor
	}
	for _, r := range ui.boxCanvases {
		r.FillColor = themeColor()
	}
	ui.boardContainer.Refresh()
	ui.refreshStatus()
	logx.Infof("game %s started, board size %d", ui.journal.Uid, ui.engine.Size())
}

func (ui *BoardUI) refreshStatus() {
	player1Score, player2Score := ui.engine.Scores()
	ui.player1Label.SetText(fmt.Sprintf("Player1: %d", player1Score))
	ui.player2Label.SetText(fmt.Sprintf("Player2: %d", player2Score))

	if ui.engine.Phase() == game.PhaseFinished {
		ui.turnLabel.SetText(ui.engine.Result().String())
		return
	}
	ui.turnLabel.SetText(ui.engine.CurrentPlayer().String() + " to move")
}

// applyThemeVariant repaints variant-dependent canvases after a
// light/dark switch.
func (ui *BoardUI) applyThemeVariant() {
	for _, c := range ui.dotCanvases {
		c.FillColor = dotCanvasColor()
	}
	for b, r := range ui.boxCanvases {
		if ui.engine.BoxOwner(b) == game.NoPlayer {
			r.FillColor = themeColor()
		}
	}
	ui.boardContainer.Refresh()
}
