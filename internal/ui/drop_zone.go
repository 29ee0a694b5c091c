package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DropZone is the drop surface for audio files. It highlights on
// pointer hover and opens a file picker when tapped. Fyne reports
// external file drags only through the window's drop callback, so
// there is no separate drag-over state to render.
type DropZone struct {
	widget.BaseWidget

	promptLabel *widget.Label
	hintLabel   *widget.Label
	iconLabel   *widget.Label
	background  *canvas.Rectangle

	hovered bool

	// Callback for tap (opens the file picker)
	onTapped func()
}

// NewDropZone creates a new drop surface
func NewDropZone(localization *Localization, onTapped func()) *DropZone {
	dz := &DropZone{
		onTapped: onTapped,
	}
	dz.ExtendBaseWidget(dz)

	dz.iconLabel = widget.NewLabel(IconMusic)
	dz.iconLabel.Alignment = fyne.TextAlignCenter

	dz.promptLabel = widget.NewLabel(localization.GetText(KeyDropPrompt))
	dz.promptLabel.Alignment = fyne.TextAlignCenter
	dz.promptLabel.TextStyle = fyne.TextStyle{Bold: true}

	dz.hintLabel = widget.NewLabel(localization.GetText(KeyDropHint))
	dz.hintLabel.Alignment = fyne.TextAlignCenter

	dz.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	dz.background.CornerRadius = 8

	return dz
}

// SetTexts updates the labels after a language change
func (dz *DropZone) SetTexts(localization *Localization) {
	dz.promptLabel.SetText(localization.GetText(KeyDropPrompt))
	dz.hintLabel.SetText(localization.GetText(KeyDropHint))
}

// Tapped opens the file picker
func (dz *DropZone) Tapped(_ *fyne.PointEvent) {
	if dz.onTapped != nil {
		dz.onTapped()
	}
}

// MouseIn implements desktop.Hoverable
func (dz *DropZone) MouseIn(_ *desktop.MouseEvent) {
	dz.hovered = true
	dz.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (dz *DropZone) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (dz *DropZone) MouseOut() {
	dz.hovered = false
	dz.Refresh()
}

// Cursor implements desktop.Cursorable
func (dz *DropZone) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// MinSize returns the minimum size of the drop surface
func (dz *DropZone) MinSize() fyne.Size {
	min := dz.BaseWidget.MinSize()
	if min.Width < DropZoneMinWidth {
		min.Width = DropZoneMinWidth
	}
	if min.Height < DropZoneMinHeight {
		min.Height = DropZoneMinHeight
	}
	return min
}

// CreateRenderer creates the widget renderer
func (dz *DropZone) CreateRenderer() fyne.WidgetRenderer {
	labels := container.NewVBox(
		dz.iconLabel,
		dz.promptLabel,
		dz.hintLabel,
	)

	content := container.NewStack(
		dz.background,
		container.NewCenter(labels),
	)

	return &dropZoneRenderer{
		zone:  dz,
		inner: widget.NewSimpleRenderer(content),
	}
}

type dropZoneRenderer struct {
	zone  *DropZone
	inner fyne.WidgetRenderer
}

func (r *dropZoneRenderer) Layout(size fyne.Size)        { r.inner.Layout(size) }
func (r *dropZoneRenderer) MinSize() fyne.Size           { return r.inner.MinSize() }
func (r *dropZoneRenderer) Objects() []fyne.CanvasObject { return r.inner.Objects() }
func (r *dropZoneRenderer) Destroy()                     { r.inner.Destroy() }

func (r *dropZoneRenderer) Refresh() {
	if r.zone.hovered {
		r.zone.background.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.zone.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	}
	r.zone.background.Refresh()
	r.inner.Refresh()
}
