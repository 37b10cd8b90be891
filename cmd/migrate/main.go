// Command migrate applies database migrations from db/migrations against the
// configured PostgreSQL instance.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up|down|steps N|force N|version")
	os.Exit(2)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: loading config: %v", err)
	}

	m, err := migrate.New("file://db/migrations", cfg.DB.DSN())
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	defer m.Close()

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "up":
		run(m.Up())
		log.Println("migrate: up complete")
	case "down":
		run(m.Down())
		log.Println("migrate: down complete")
	case "steps":
		run(m.Steps(intArg()))
		log.Println("migrate: steps complete")
	case "force":
		if err := m.Force(intArg()); err != nil {
			log.Fatalf("migrate: force: %v", err)
		}
		log.Println("migrate: version forced")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("migrate: version: %v", err)
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
	default:
		usage()
	}
}

func run(err error) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate: %v", err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("migrate: no change")
	}
}

func intArg() int {
	if len(os.Args) < 3 {
		usage()
	}
	n, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("migrate: bad numeric argument %q", os.Args[2])
	}
	return n
}
