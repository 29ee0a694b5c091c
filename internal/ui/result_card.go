package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Senko-San-Coder/trackdrop/internal/model"
)

// ResultCard displays a recognized track: artwork, title, artist and a
// play button for the stream URL.
type ResultCard struct {
	widget.BaseWidget

	result *model.RecognitionResult

	artwork     *canvas.Image
	titleLabel  *widget.Label
	artistLabel *widget.Label
	playBtn     *widget.Button

	// Callback for the play button, receives the stream URL (may be empty)
	onPlay func(streamURL string)
}

// NewResultCard creates a new result card, hidden until a result arrives
func NewResultCard(localization *Localization, onPlay func(streamURL string)) *ResultCard {
	rc := &ResultCard{
		onPlay: onPlay,
	}
	rc.ExtendBaseWidget(rc)

	rc.artwork = canvas.NewImageFromResource(theme.MediaMusicIcon())
	rc.artwork.FillMode = canvas.ImageFillContain
	rc.artwork.SetMinSize(fyne.NewSize(ArtworkSize, ArtworkSize))

	rc.titleLabel = widget.NewLabel("")
	rc.titleLabel.Alignment = fyne.TextAlignCenter
	rc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rc.titleLabel.Wrapping = fyne.TextWrapWord

	rc.artistLabel = widget.NewLabel("")
	rc.artistLabel.Alignment = fyne.TextAlignCenter
	rc.artistLabel.Wrapping = fyne.TextWrapWord

	rc.playBtn = widget.NewButtonWithIcon(localization.GetText(KeyPlay), theme.MediaPlayIcon(), rc.onPlayClick)

	rc.Hide()
	return rc
}

// ShowResult fills the card from a recognition result and shows it.
// Missing title or artist fall back to placeholder values; without a
// stream URL the play control is hidden.
func (rc *ResultCard) ShowResult(result *model.RecognitionResult) {
	if result == nil {
		log.Printf("Warning: ShowResult called with nil result")
		return
	}

	rc.result = result
	rc.titleLabel.SetText(result.DisplayTitle())
	rc.artistLabel.SetText(result.DisplayArtist())

	if result.HasStream() {
		rc.playBtn.Show()
	} else {
		rc.playBtn.Hide()
	}

	// Reset artwork until the real image is fetched
	rc.artwork.Resource = theme.MediaMusicIcon()
	rc.artwork.Refresh()

	rc.Show()
	rc.Refresh()
}

// SetArtwork replaces the placeholder artwork with a fetched image
func (rc *ResultCard) SetArtwork(resource fyne.Resource) {
	if resource == nil {
		return
	}
	rc.artwork.Resource = resource
	rc.artwork.Refresh()
}

// Result returns the currently displayed result, nil when none
func (rc *ResultCard) Result() *model.RecognitionResult {
	return rc.result
}

// Clear hides the card and drops the current result
func (rc *ResultCard) Clear() {
	rc.result = nil
	rc.Hide()
}

// SetTexts updates the labels after a language change
func (rc *ResultCard) SetTexts(localization *Localization) {
	rc.playBtn.SetText(localization.GetText(KeyPlay))
}

// onPlayClick handles the play button click
func (rc *ResultCard) onPlayClick() {
	if rc.onPlay == nil {
		return
	}

	streamURL := ""
	if rc.result != nil {
		streamURL = rc.result.StreamURL
	}
	rc.onPlay(streamURL)
}

// CreateRenderer creates the widget renderer
func (rc *ResultCard) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		container.NewCenter(rc.artwork),
		rc.titleLabel,
		rc.artistLabel,
		container.NewCenter(rc.playBtn),
	)

	return widget.NewSimpleRenderer(container.NewPadded(content))
}
