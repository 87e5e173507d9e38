// Command analyze runs the naming pipeline against local files and prints the
// recommendation for each as JSON, one object per line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/filewise-ai/filewise/internal/bootstrap"
	"github.com/filewise-ai/filewise/internal/config"
	"github.com/filewise-ai/filewise/internal/core/domain"
)

func main() {
	baseDir := flag.String("base-dir", "", "organization root for folder suggestions (default: the file's directory)")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-base-dir DIR] [-pretty] FILE...")
		os.Exit(2)
	}

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.New(cfg, "filewise-cli")

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	exitCode := 0
	for _, path := range flag.Args() {
		dir := *baseDir
		if dir == "" {
			dir = filepath.Dir(path)
		}

		sample, err := app.Extractor.Sample(path, dir)
		if err != nil {
			log.Printf("%s: %v", path, err)
			exitCode = 1
			continue
		}

		rec, err := app.Workflow.Analyze(ctx, sample)
		if err != nil {
			log.Printf("%s: %v", path, err)
			exitCode = 1
			continue
		}

		result := struct {
			File           string                `json:"file"`
			Recommendation domain.Recommendation `json:"recommendation"`
		}{File: path, Recommendation: rec}
		if err := enc.Encode(result); err != nil {
			log.Printf("%s: encode result: %v", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
