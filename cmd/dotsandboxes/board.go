package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"dotsandboxes/pkg/layout"
)

// boardWidget is the tappable board surface. It draws nothing itself;
// it hosts the canvas container and forwards taps through the hit
// test.
type boardWidget struct {
	widget.BaseWidget
	ui *BoardUI
}

func newBoardWidget(ui *BoardUI) *boardWidget {
	b := &boardWidget{ui: ui}
	b.ExtendBaseWidget(b)
	return b
}

func (b *boardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{ui: b.ui}
}

func (b *boardWidget) Tapped(ev *fyne.PointEvent) {
	b.ui.handleTap(ev.Position)
}

// boardRenderer refits the board geometry whenever fyne resizes the
// widget, keeping the hit test and the pixels in agreement.
type boardRenderer struct {
	ui *BoardUI
}

func (r *boardRenderer) Layout(size fyne.Size) {
	span := size.Width
	if size.Height < span {
		span = size.Height
	}

	l := layout.NewLayoutWithDistance(r.ui.engine.Size(), layout.DistanceForSpan(r.ui.engine.Size(), span))
	r.ui.reposition(l)
	r.ui.boardContainer.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	span := layout.NewLayout(r.ui.engine.Size()).Span() / 2
	return fyne.NewSize(span, span)
}

func (r *boardRenderer) Refresh() {
	r.ui.boardContainer.Refresh()
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.ui.boardContainer}
}

func (r *boardRenderer) Destroy() {}
