package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/harborline/wey-services/trash-pickup/internal/app"
	"github.com/harborline/wey-services/trash-pickup/internal/commands"
)

//go:embed data/2025
var dataFiles embed.FS

//go:embed static/index.html
var indexHTML []byte

func main() {
	// Check for subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hash-password":
			commands.HashPassword(os.Args[2:])
			return
		case "gen-holidays":
			commands.GenHolidays(os.Args[2:])
			return
		case "lookup":
			fsys, dir := dataSource(os.Getenv("DATA_DIR"))
			commands.Lookup(os.Args[2:], fsys, dir)
			return
		}
	}

	app.LoadEnv()

	port := flag.Int("port", app.EnvIntOr("PORT", app.DefaultPort), "Port to listen on")
	dataDir := flag.String("data", app.EnvOr("DATA_DIR", ""), "Reference data directory (default: embedded 2025 data)")
	adminMode := flag.Bool("admin", false, "Enable admin endpoints (protected with Basic Auth)")
	flag.Parse()

	// Load and validate auth credentials (if admin mode)
	if *adminMode {
		if err := app.LoadAuthCredentials(); err != nil {
			log.Fatalf("Failed to load auth credentials: %v", err)
		}
	}

	fsys, dir := dataSource(*dataDir)
	store := app.NewAddressStore(savedAddressPath())

	// Fail closed: no server without complete reference data
	server, err := app.NewServer(fsys, dir, store)
	if err != nil {
		log.Fatalf("Failed to load pickup data: %v", err)
	}
	server.AdminMode = *adminMode

	app.IndexHTML = indexHTML
	server.Routes(http.DefaultServeMux)

	mode := app.ModeServe
	if *adminMode {
		mode = app.ModeAdmin
	}

	data := server.Data()
	log.Printf("Starting trash-pickup in %s mode on http://localhost:%d", mode, *port)
	log.Printf("Reference year %d: %d streets, %d holidays, %d zones",
		data.Year, len(data.Streets), len(data.Holidays), len(data.YardWasteWeeks))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), nil); err != nil {
		log.Fatal(err)
	}
}

// dataSource picks the on-disk data directory when one is configured and
// the embedded 2025 dataset otherwise.
func dataSource(dir string) (fs.FS, string) {
	if dir != "" {
		return os.DirFS(dir), "."
	}
	sub, err := fs.Sub(dataFiles, "data/2025")
	if err != nil {
		log.Fatalf("embedded data: %v", err)
	}
	return sub, "."
}

func savedAddressPath() string {
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Join(cwd, app.SavedAddressFile)
	}
	return app.SavedAddressFile
}
