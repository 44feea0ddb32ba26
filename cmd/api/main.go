package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"promptlab/pkg/api/compare"
	"promptlab/pkg/api/config"
	"promptlab/pkg/api/history"
	apilibrary "promptlab/pkg/api/library"
	"promptlab/pkg/api/techniques"
	"promptlab/pkg/api/webui"
	corelibrary "promptlab/pkg/core/library"
	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Load the template library
	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		// Try from executable directory
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := corelibrary.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load template library: %v\n", err)
		fmt.Println("  Template endpoints will serve an empty catalog")
	} else {
		fmt.Printf("[LIBRARY] Loaded %d templates from %s\n", corelibrary.Get().Count(), resourcesPath)
	}

	// Initialize playground from config
	cfg := playground.LoadConfig("config/models.yaml")
	mgr := playground.NewManager(cfg)
	pg := playground.New(mgr, store.NewFileStore("outputs"))

	// Optional Postgres-backed run history
	if os.Getenv("DATABASE_URL") != "" {
		ctx := context.Background()
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[WARNING] Database unavailable, falling back to file history: %v\n", err)
		} else {
			repo := store.NewRunsRepo()
			if err := repo.EnsureSchema(ctx); err != nil {
				fmt.Printf("[WARNING] Failed to prepare runs table: %v\n", err)
			} else {
				pg.EnableDB(repo)
				fmt.Println("[CONFIG] Run history backed by Postgres")
			}
		}
	}

	// Config endpoints
	configHandler := config.NewHandler(mgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Technique endpoints
	techniqueHandler := techniques.NewHandler(pg)
	http.HandleFunc("/api/techniques", techniqueHandler.HandleList)
	http.HandleFunc("/api/techniques/run", techniqueHandler.HandleRun)

	// Comparison endpoint
	compareHandler := compare.NewHandler(pg)
	http.HandleFunc("/api/compare", compareHandler.HandleCompare)

	// Template library endpoints
	libraryHandler := apilibrary.NewHandler(pg)
	http.HandleFunc("/api/library", libraryHandler.HandleList)
	http.HandleFunc("/api/library/render", libraryHandler.HandleRender)
	http.HandleFunc("/api/library/run", libraryHandler.HandleRun)

	// Run history endpoint
	historyHandler := history.NewHandler(pg)
	http.HandleFunc("/api/history", historyHandler.HandleList)

	// Playground web page
	http.HandleFunc("/", webui.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET  /")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - GET  /api/techniques")
	fmt.Println("  - POST /api/techniques/run")
	fmt.Println("  - POST /api/compare")
	fmt.Println("  - GET  /api/library")
	fmt.Println("  - POST /api/library/render")
	fmt.Println("  - POST /api/library/run")
	fmt.Println("  - GET  /api/history")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
