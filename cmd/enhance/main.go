// Command enhance runs the recipe enhancement pipeline offline: it reads an
// enhancement request from a JSON file (or stdin), scores and ranks the
// recipes, and writes the response to stdout. Useful for inspecting scoring
// changes without the API layer.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/recipegenie/core/config"
	"github.com/recipegenie/core/internal/service"
	"github.com/recipegenie/core/internal/validation"
)

func main() {
	input := flag.String("input", "-", "path to an enhancement request JSON file, or - for stdin")
	pretty := flag.Bool("pretty", false, "indent the response JSON")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Logging)

	data, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read request: %v", err)
	}

	req, err := validation.ParseEnhanceRequest(data)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			body, _ := json.MarshalIndent(verrs.Response(), "", "  ")
			fmt.Fprintln(os.Stderr, string(body))
			os.Exit(1)
		}
		log.Fatalf("Invalid request: %v", err)
	}

	pre := service.NewPreprocessor(logger)
	recommender := service.NewRecommender(&cfg.Recommender, pre, logger)
	resp := recommender.Recommend(req)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp); err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
