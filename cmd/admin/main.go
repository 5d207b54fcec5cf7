package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/codingconcepts/env"
	"github.com/golden-vcr/server-common/db"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/golden-vcr/tmi/gen/queries"
	"github.com/golden-vcr/tmi/internal/archive"
	"github.com/golden-vcr/tmi/internal/twitch"
)

type Config struct {
	DatabaseHost     string `env:"PGHOST" required:"true"`
	DatabasePort     int    `env:"PGPORT" required:"true"`
	DatabaseName     string `env:"PGDATABASE" required:"true"`
	DatabaseUser     string `env:"PGUSER" required:"true"`
	DatabasePassword string `env:"PGPASSWORD" required:"true"`
	DatabaseSslMode  string `env:"PGSSLMODE"`
}

func main() {
	// Initialize config from environment vars
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	// Parse args: admin <channel> [limit]
	if len(os.Args) < 2 {
		log.Fatalf("Usage: admin <channel> [limit]")
	}
	channel := twitch.NormalizeChannelName(os.Args[1])
	limit := archive.DefaultLimit
	if len(os.Args) >= 3 {
		value, err := strconv.Atoi(os.Args[2])
		if err != nil || value < 1 {
			log.Fatalf("limit must be a positive integer")
		}
		limit = min(value, archive.MaxLimit)
	}

	// Construct a postgres connection string from our config
	connectionString := db.FormatConnectionString(
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseSslMode,
	)
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		log.Fatalf("error opening database: %v", err)
	}
	defer db.Close()

	// Verify that we can connect to the database
	if err := db.Ping(); err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	// Print recent messages, oldest first
	q := queries.New(db)
	rows, err := q.GetRecentMessages(context.Background(), queries.GetRecentMessagesParams{
		Channel:  channel,
		MaxCount: int32(limit),
	})
	if err != nil {
		log.Fatalf("error getting recent messages: %v", err)
	}
	if len(rows) == 0 {
		fmt.Printf("no messages archived for #%s\n", channel)
		return
	}
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		badges := ""
		if len(row.Badges) > 0 {
			badges = fmt.Sprintf(" [%s]", strings.Join(row.Badges, ","))
		}
		fmt.Printf("%s #%s%s %s: %s\n", row.SentAt.Format("2006-01-02 15:04:05"), channel, badges, row.DisplayName, row.Text)
	}
}
