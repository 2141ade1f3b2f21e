// Command migration applies the SQL files under migrations/ against
// the database named by DB_URL. It is a separate binary so deploys can
// run schema changes before the api and ingest processes start.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(command string, args []string) error {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return errors.New("DB_URL is required")
	}

	dir, err := migrationsDir()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dbURL)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("close migration source: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("close migration db: %v", dbErr)
		}
	}()

	switch strings.ToLower(strings.TrimSpace(command)) {
	case "up":
		if err := applied(m.Up()); err != nil {
			return err
		}
		log.Printf("schema up to date (migrations from %s)", dir)
	case "down":
		steps := 1
		if len(args) > 0 {
			steps, err = parseCount(args[0])
			if err != nil {
				return fmt.Errorf("down: %w", err)
			}
		}
		if err := applied(m.Steps(-steps)); err != nil {
			return err
		}
		log.Printf("rolled back %d migration(s)", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied yet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		fmt.Printf("version %d (dirty=%t)\n", version, dirty)
	case "force":
		if len(args) == 0 {
			return errors.New("force needs a version")
		}
		version, err := parseCount(args[0])
		if err != nil {
			return fmt.Errorf("force: %w", err)
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		log.Printf("schema version forced to %d", version)
	case "goto":
		if len(args) == 0 {
			return errors.New("goto needs a target version")
		}
		target, err := parseCount(args[0])
		if err != nil {
			return fmt.Errorf("goto: %w", err)
		}
		if err := applied(m.Migrate(uint(target))); err != nil {
			return err
		}
		log.Printf("schema at version %d", target)
	default:
		usage()
		os.Exit(2)
	}

	return nil
}

// applied treats ErrNoChange as success, already being at the target
// is not a failure.
func applied(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Print("nothing to apply")
		return nil
	}
	return err
}

func parseCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

// migrationsDir prefers MIGRATIONS_DIR, then the repo-relative path
// and the path container images lay the SQL files at.
func migrationsDir() (string, error) {
	for _, candidate := range []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./migrations",
		"/app/migrations",
	} {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}

	return "", errors.New("migration directory not found (set MIGRATIONS_DIR or run from the repo root)")
}

func usage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down [steps]|version|force <v>|goto <v>>\n", name)
	fmt.Fprintf(os.Stderr, "\nDB_URL must point at the target database, for example:\n")
	fmt.Fprintf(os.Stderr, "  DB_URL=postgres://localhost/hockeyhub?sslmode=disable %s up\n", name)
}
