// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/kbsync/catalog"
	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/ingest"
	"github.com/poiesic/kbsync/query"
	"github.com/poiesic/kbsync/webui"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env next to the working directory; flags and real env
	// vars take precedence.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "kbsync",
		Usage: "Bulk-load local folders into Open WebUI knowledge collections and query them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Upload a folder's files into a knowledge collection",
				ArgsUsage: "<folder>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "url",
						Usage:   "Open WebUI base URL",
						Value:   "http://localhost:3000",
						EnvVars: []string{"OPENWEBUI_URL"},
					},
					&cli.StringFlag{
						Name:    "collection",
						Aliases: []string{"c"},
						Usage:   "Knowledge collection name (default: folder name)",
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API key (overrides OPENWEBUI_API_KEY)",
						EnvVars: []string{"OPENWEBUI_API_KEY"},
					},
					&cli.StringFlag{
						Name:  "ext",
						Usage: "Extra extensions to include, e.g. .log,.yaml",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "List files without uploading",
					},
				},
			},
			{
				Name:   "collections",
				Usage:  "List knowledge collections",
				Action: collectionsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "url",
						Usage:   "Open WebUI base URL",
						Value:   "http://localhost:3000",
						EnvVars: []string{"OPENWEBUI_URL"},
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API key (overrides OPENWEBUI_API_KEY)",
						EnvVars: []string{"OPENWEBUI_API_KEY"},
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Answer a question with retrieval over a knowledge collection",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "url",
						Usage:   "Open WebUI base URL",
						Value:   "http://localhost:3000",
						EnvVars: []string{"OPENWEBUI_URL"},
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API key (overrides OPENWEBUI_API_KEY)",
						EnvVars: []string{"OPENWEBUI_API_KEY"},
					},
					&cli.StringFlag{
						Name:     "collection",
						Aliases:  []string{"c"},
						Usage:    "Knowledge collection to search",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "model",
						Usage:   "Model to use for inference",
						Value:   "gemma3:27b",
						EnvVars: []string{"OPENWEBUI_DEFAULT_MODEL"},
					},
				},
			},
		},
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := c.Context

	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one folder argument")
	}

	// Validate all inputs before any network activity.
	root, err := core.ResolveRoot(c.Args().First())
	if err != nil {
		return err
	}

	dryRun := c.Bool("dry-run")
	apiKey := c.String("api-key")
	if err := core.ValidateCredential(apiKey, dryRun); err != nil {
		return err
	}

	name := c.String("collection")
	if name == "" {
		name = filepath.Base(root)
	}

	exts := catalog.DefaultExtensions()
	if extra := c.String("ext"); extra != "" {
		exts.AddList(extra)
	}

	entries, err := catalog.Scan(root, exts)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w in %s", core.ErrNoFiles, root)
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Found %d file(s) to ingest into '%s':\n", len(entries), name)
	for _, entry := range entries {
		fmt.Fprintf(out, "  %s\n", entry.RelPath)
	}

	if dryRun {
		return nil
	}

	client, err := webui.NewClient(webui.Config{BaseURL: c.String("url"), APIKey: apiKey})
	if err != nil {
		return err
	}

	resolver, err := ingest.NewResolver(client)
	if err != nil {
		return err
	}

	// Setup failures are fatal: without a collection nothing can be
	// attached.
	collection, err := resolver.Resolve(ctx, name)
	if err != nil {
		return fmt.Errorf("resolving collection %q: %w", name, err)
	}

	pipeline, err := ingest.NewPipeline(client,
		ingest.WithMonitor(newConsoleMonitor(out, client.BaseURL())))
	if err != nil {
		return err
	}

	summary := pipeline.Run(ctx, entries, collection)
	if summary.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func collectionsCommand(c *cli.Context) error {
	client, err := webui.NewClient(webui.Config{
		BaseURL: c.String("url"),
		APIKey:  c.String("api-key"),
	})
	if err != nil {
		return err
	}

	tool, err := query.NewTool(client)
	if err != nil {
		return err
	}

	collections, err := tool.List(c.Context)
	if err != nil {
		return err
	}

	for _, collection := range collections {
		fmt.Fprintf(c.App.Writer, "%s  (%s)\n", collection.Name, collection.ID)
	}
	return nil
}

func askCommand(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("expected a question argument")
	}
	question := strings.Join(c.Args().Slice(), " ")

	client, err := webui.NewClient(webui.Config{
		BaseURL: c.String("url"),
		APIKey:  c.String("api-key"),
	})
	if err != nil {
		return err
	}

	tool, err := query.NewTool(client)
	if err != nil {
		return err
	}

	answer, err := tool.Answer(c.Context, question, c.String("collection"), c.String("model"))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, answer)
	return nil
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.String("log-level"))
	}

	// Diagnostics go to stderr; stdout is reserved for command output.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
