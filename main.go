package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pchrisoc/zymome/internal/config"
	"github.com/pchrisoc/zymome/internal/gallery"
	"github.com/pchrisoc/zymome/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pchrisoc.zymome"
	AppName = "Zymome"

	WindowWidth  float32 = 1000
	WindowHeight float32 = 760
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply gallery theme
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	serverURL := settings.GetServerURL()
	cacheTTL := time.Duration(settings.GetCacheTTLMinutes()) * time.Minute

	client := gallery.NewClient(serverURL)
	images := gallery.NewImageService(serverURL, cacheTTL)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, images)

	// Show and run
	myWindow.ShowAndRun()
}
