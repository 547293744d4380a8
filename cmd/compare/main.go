// Command compare is a small host for the similarity package: it reads every .txt file
// under a directory and writes one JSON line per pair and metric to stdout.
//
// Settings come from the file named by SIMILARITY_CONFIG (default similarity.toml), a .env
// file in the working directory and the SIMILARITY_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	similarity "github.com/jdpolicano/go-similarity"
	"github.com/jdpolicano/go-similarity/internal/logging"
)

type resultLine struct {
	Pair   string  `json:"pair"`
	First  string  `json:"first"`
	Second string  `json:"second"`
	Metric string  `json:"metric"`
	Score  float64 `json:"score"`
}

func getAllDocumentPaths(root, ext string) ([]string, error) {
	filePaths := make([]string, 0, 128)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ext {
			filePaths = append(filePaths, path)
		}
		return nil
	})
	return filePaths, err
}

func readDocuments(paths []string, root string) (map[string]string, error) {
	texts := make(map[string]string, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		id, err := filepath.Rel(root, path)
		if err != nil {
			id = path
		}
		texts[id] = string(data)
	}
	return texts, nil
}

func main() {
	logger := logging.NewLogger(os.Stderr, slog.LevelInfo)

	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	configPath := os.Getenv("SIMILARITY_CONFIG")
	if configPath == "" {
		configPath = "similarity.toml"
	}
	opts, err := similarity.LoadOptions(configPath, ".env")
	if err != nil {
		logger.Error("Error loading options", "error", err)
		os.Exit(1)
	}

	paths, err := getAllDocumentPaths(root, ".txt")
	if err != nil {
		logger.Error("Error listing documents", "root", root, "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		logger.Warn("No documents found", "root", root)
	}

	texts, err := readDocuments(paths, root)
	if err != nil {
		logger.Error("Error reading documents", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := similarity.Compare(ctx, similarity.DocumentsFromMap(texts), opts)
	if err != nil {
		logger.Error("Comparison failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, r := range results {
		line := resultLine{
			Pair:   r.Pair.Key(),
			First:  r.Pair.First,
			Second: r.Pair.Second,
			Metric: string(r.Metric),
			Score:  r.Score,
		}
		if err := enc.Encode(line); err != nil {
			logger.Error("Error writing result", "error", err)
			os.Exit(1)
		}
	}
}
