package commands

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/harborline/wey-services/trash-pickup/internal/pickup"
)

// GenHolidays handles the gen-holidays subcommand: it writes a
// holidays.json for a year from the federal + Massachusetts calendar.
// The object is written by hand so the calendar-order keys survive;
// key order in that file is load-bearing.
func GenHolidays(args []string) {
	fs := flag.NewFlagSet("gen-holidays", flag.ExitOnError)
	year := fs.Int("year", time.Now().Year(), "Calendar year to generate")
	out := fs.String("out", "", "Output file (default: stdout)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trash-pickup gen-holidays [-year N] [-out FILE]\n\n")
		fmt.Fprintf(os.Stderr, "Writes a holidays.json for the given year.\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	holidays := pickup.CollectionHolidays(*year)

	var buf bytes.Buffer
	buf.WriteString("{\n  \"holidays\": {\n")
	for i, h := range holidays {
		date, _ := json.Marshal(h.Date)
		name, _ := json.Marshal(h.Name)
		fmt.Fprintf(&buf, "    %s: %s", date, name)
		if i < len(holidays)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("  }\n}\n")

	if *out == "" {
		fmt.Print(buf.String())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Wrote %d holidays for %d to %s\n", len(holidays), *year, *out)
}
