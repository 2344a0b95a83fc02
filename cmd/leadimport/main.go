// cmd/leadimport imports a CSV file of leads straight into the database,
// using the same pipeline as POST /leads/upload.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/leads-api/internal/application/leadimport"
	"github.com/baechuer/leads-api/internal/config"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/infrastructure/db/postgres"
	"github.com/baechuer/leads-api/internal/logger"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
)

type dbOpener func(dsn string) (*sql.DB, error)

func run(ctx context.Context, args []string, stdout, stderr io.Writer, open dbOpener) int {
	fs := flag.NewFlagSet("leadimport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "path to the CSV file")
	user := fs.String("user", "", "email recorded as the importer")
	dsn := fs.String("dsn", os.Getenv("DATABASE_URL"), "postgres DSN (default $DATABASE_URL)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *file == "" {
		fmt.Fprintln(stderr, "leadimport: -file is required")
		fs.Usage()
		return 2
	}
	if *dsn == "" {
		fmt.Fprintln(stderr, "leadimport: no DSN (set DATABASE_URL or -dsn)")
		return 2
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(stderr, "leadimport: %v\n", err)
		return 1
	}

	db, err := open(*dsn)
	if err != nil {
		fmt.Fprintf(stderr, "leadimport: connect: %v\n", err)
		return 1
	}
	defer db.Close()

	importer := leadimport.New(postgres.NewLeadRepo(db), nil, nil)
	res, err := importer.Import(ctx, leadimport.Upload{
		Filename:  filepath.Base(*file),
		UserEmail: *user,
		Content:   content,
	})
	if err != nil {
		fmt.Fprintf(stderr, "leadimport: %s\n", errorMessage(err))
		return 1
	}

	zlog.Info().
		Str("filename", filepath.Base(*file)).
		Int("created", res.Created).
		Int("failed", len(res.Errors)).
		Msg("leads_imported")

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewImportResultView(res)); err != nil {
		fmt.Fprintf(stderr, "leadimport: %v\n", err)
		return 1
	}
	return 0
}

// errorMessage prefers the client-facing text of domain errors.
func errorMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

func main() {
	_ = godotenv.Load()
	logger.InitWithWriter(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	open := func(dsn string) (*sql.DB, error) { return config.NewDB(dsn, false) }
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, open))
}
