package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/Senko-San-Coder/trackdrop/internal/config"
	"github.com/Senko-San-Coder/trackdrop/internal/model"
	"github.com/Senko-San-Coder/trackdrop/internal/platform"
	"github.com/Senko-San-Coder/trackdrop/internal/upload"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	dropZone     *DropZone
	resultCard   *ResultCard
	uploadSvc    upload.Uploader
	settings     *config.Settings
	localization *Localization

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, uploadSvc upload.Uploader) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		uploadSvc:    uploadSvc,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with upload service: %v", ui.uploadSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Point the upload service at the configured server
	ui.uploadSvc.SetEndpoint(settings.GetServerEndpoint())

	// Set up callback for upload updates
	ui.uploadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create drop surface
	ui.dropZone = NewDropZone(ui.localization, ui.onBrowseClick)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create notification panel under the drop surface (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Create result card (hidden until a recognition completes)
	ui.resultCard = NewResultCard(ui.localization, ui.onPlayStream)

	topPanel := container.NewBorder(nil, nil, nil, settingsBtn, widget.NewLabel(""))

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		container.NewVBox(
			ui.dropZone,
			ui.notificationContainer,
			ui.resultCard,
		),
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	// Window-level drop events drive the drop surface
	ui.window.SetOnDropped(ui.onDropped)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.dropZone.SetTexts(ui.localization)
	ui.resultCard.SetTexts(ui.localization)
}

// onDropped handles files dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		paths = append(paths, uri.Path())
	}

	ui.handleFiles(paths)
}

// handleFiles submits the first dropped audio file for recognition.
// Extra files in a multi-file drop are ignored.
func (ui *RootUI) handleFiles(paths []string) {
	if len(paths) == 0 {
		return
	}

	path := paths[0]
	if len(paths) > 1 {
		log.Printf("Multiple files dropped, using first: %s", path)
	}

	if !platform.IsAudioFile(path) {
		log.Printf("Rejected non-audio file: %s", path)
		ui.showNotification(MsgUnsupportedFile, false)
		return
	}

	ui.submitFile(path)
}

// submitFile hands a file to the upload service
func (ui *RootUI) submitFile(path string) {
	ui.resultCard.Clear()

	task, err := ui.uploadSvc.Submit(path)
	if err != nil {
		log.Printf("Failed to submit file %s: %v", path, err)
		ui.showNotification(upload.UserMessage(err), false)
		return
	}

	log.Printf("Submitted file for recognition: id=%s file=%s", task.ID, task.FileName)
	ui.showNotification(ui.localization.GetText(KeyRecognizing), true)
}

// onBrowseClick opens the file picker from the drop surface
func (ui *RootUI) onBrowseClick() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		ui.handleFiles([]string{reader.URI().Path()})
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(platform.AudioExtensions))
	fileDialog.Show()
}

// onTaskUpdate handles task updates from the upload service
func (ui *RootUI) onTaskUpdate(task *model.UploadTask) {
	log.Printf("Task update received: id=%s gen=%d status=%s", task.ID, task.Generation, task.Status)

	switch task.Status {
	case model.TaskStatusUploading:
		ui.showNotification(ui.localization.GetText(KeyRecognizing), true)

	case model.TaskStatusSuperseded:
		// A newer upload replaced this one, nothing to render

	case model.TaskStatusError:
		ui.showNotification(task.Message, false)

	case model.TaskStatusCompleted:
		ui.hideNotification()
		ui.renderResult(task)
	}
}

// renderResult shows the recognition result and fetches artwork
func (ui *RootUI) renderResult(task *model.UploadTask) {
	result := task.Result
	if result == nil {
		log.Printf("Completed task %s has no result", task.ID)
		return
	}

	fyne.Do(func() {
		ui.resultCard.ShowResult(result)
	})

	// The card hides its play control for streamless results; tell the
	// user why at render time rather than waiting for a click.
	if !result.HasStream() {
		ui.showNotification(MsgNoStreamURL, false)
	}

	if result.HasArtwork() {
		go ui.fetchArtwork(result.ArtworkURL)
	}

	if ui.settings.GetAutoOpenStream() && result.HasStream() {
		go ui.openStream(result.StreamURL)
	}
}

// fetchArtwork downloads cover art off the UI thread and applies it
func (ui *RootUI) fetchArtwork(artworkURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), ArtworkFetchTimeout)
	defer cancel()

	resource, err := FetchArtwork(ctx, nil, artworkURL)
	if err != nil {
		log.Printf("Failed to fetch artwork %s: %v", artworkURL, err)
		return
	}

	fyne.Do(func() {
		ui.resultCard.SetArtwork(resource)
	})
}

// onPlayStream opens the stream URL with the default application
func (ui *RootUI) onPlayStream(streamURL string) {
	if streamURL == "" {
		ui.showNotification(MsgNoStreamURL, false)
		return
	}

	go ui.openStream(streamURL)
}

// openStream opens a stream URL externally
func (ui *RootUI) openStream(streamURL string) {
	log.Printf("Opening stream: %s", streamURL)
	if err := platform.OpenExternal(streamURL); err != nil {
		log.Printf("Failed to open stream %s: %v", streamURL, err)
	}
}

// showNotification displays a message in the notification panel under the
// drop surface. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// Apply changed endpoint and language immediately
		ui.uploadSvc.SetEndpoint(ui.settings.GetServerEndpoint())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}
