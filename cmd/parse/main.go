// Command parse runs the schedule text parser on a file (or stdin) and
// prints the extracted records as JSON. Useful for tuning parser settings
// against real SIMAH dumps without going through the API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/erudieto-brandon/cofrat-app/internal/schedule"
)

func main() {
	strategy := flag.String("strategy", "flexible", "parse strategy: fixed, flexible or windowed")
	recordPattern := flag.String("record-pattern", "trailing", "record number pattern: trailing or dotted")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	flag.Parse()

	var (
		text []byte
		err  error
	)
	if flag.NArg() > 0 {
		text, err = os.ReadFile(flag.Arg(0))
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	p := schedule.New(schedule.Options{
		Strategy:      schedule.Strategy(*strategy),
		RecordPattern: schedule.RecordPattern(*recordPattern),
	})
	records := p.Parse(string(text))

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(records); err != nil {
		log.Fatalf("encoding output: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%d records\n", len(records))
}
