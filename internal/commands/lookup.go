package commands

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/harborline/wey-services/trash-pickup/internal/app"
	"github.com/harborline/wey-services/trash-pickup/internal/pickup"
)

// Lookup handles the lookup subcommand: a one-shot pickup report on the
// command line. fsys/dir point at the reference data (embedded by
// default).
func Lookup(args []string, fsys fs.FS, dir string) {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	dateStr := fs.String("date", "", "Reference date YYYY-MM-DD (default: today)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trash-pickup lookup [-date YYYY-MM-DD] <address>\n\n")
		fmt.Fprintf(os.Stderr, "Example: trash-pickup lookup \"123 Main Street\"\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	address := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if address == "" {
		fs.Usage()
		os.Exit(2)
	}

	date := time.Now()
	if *dateStr != "" {
		var err error
		date, err = pickup.ParseDate(*dateStr)
		if err != nil {
			color.Red("Invalid date %q (want YYYY-MM-DD)", *dateStr)
			os.Exit(1)
		}
	}

	data, err := pickup.LoadReferenceData(fsys, dir)
	if err != nil {
		color.Red("Failed to load pickup data: %v", err)
		os.Exit(1)
	}

	session := pickup.NewSession(data, date)
	report, err := session.Lookup(address)
	if err != nil {
		color.Red("%s", app.LookupErrorMessage(err))
		os.Exit(1)
	}

	color.New(color.Bold).Printf("📅 %s\n", app.PickupDayMessage(report))

	if report.HolidayShiftApplied {
		color.Yellow("⚠️  %s", app.TrashMessage(report))
	} else {
		color.Green("✅ %s", app.TrashMessage(report))
	}

	switch report.YardWasteStatus {
	case pickup.YardWasteActive:
		color.Green("🍃 %s", app.YardWasteMessage(data, report))
	default:
		fmt.Printf("❌ %s\n", app.YardWasteMessage(data, report))
	}
}
