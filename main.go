package main

import (
	"fmt"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/Senko-San-Coder/trackdrop/internal/config"
	"github.com/Senko-San-Coder/trackdrop/internal/ui"
	"github.com/Senko-San-Coder/trackdrop/internal/upload"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.senko.trackdrop"
	AppName = "TrackDrop"

	WindowWidth  = 420
	WindowHeight = 480
)

func main() {
	// Log version information
	fmt.Printf("TrackDrop v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	httpClient := &http.Client{
		Timeout: time.Duration(settings.GetRequestTimeout()) * time.Second,
	}
	uploadSvc := upload.NewService(settings.GetServerEndpoint(), httpClient)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, uploadSvc)

	// Show and run
	myWindow.ShowAndRun()
}
