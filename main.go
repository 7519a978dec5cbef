package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ytget/tasklist/internal/api"
	"github.com/ytget/tasklist/internal/config"
	"github.com/ytget/tasklist/internal/tasklist"
	"github.com/ytget/tasklist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.tasklist"
	AppName = "Task List"

	metricsShutdownTimeout = 2 * time.Second
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := api.NewMetrics(registry)

	svc, err := api.NewClient(
		settings.GetAPIBaseURL(),
		api.WithTimeout(settings.GetRequestTimeout()),
		api.WithToken(settings.GetAPIToken()),
		api.WithMetrics(metrics),
	)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}
	log.Printf("Using backend %s", svc.BaseURL())

	if addr := settings.GetMetricsAddr(); addr != "" {
		srv := startMetricsServer(addr, registry)
		myApp.Lifecycle().SetOnStopped(func() {
			ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("Error stopping metrics server: %v", err)
			}
		})
	}

	client := tasklist.New(svc)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(myWindow, client, settings)
	root.Start()

	myWindow.ShowAndRun()
}

// startMetricsServer serves /metrics on addr until shut down
func startMetricsServer(addr string, g prometheus.Gatherer) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.MetricsRouter(g),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("Serving metrics on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()
	return srv
}
