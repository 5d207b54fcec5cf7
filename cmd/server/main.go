package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codingconcepts/env"
	"github.com/golden-vcr/server-common/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/golden-vcr/tmi/gen/queries"
	"github.com/golden-vcr/tmi/internal/archive"
	"github.com/golden-vcr/tmi/internal/badges"
	"github.com/golden-vcr/tmi/internal/chat"
	"github.com/golden-vcr/tmi/internal/health"
	"github.com/golden-vcr/tmi/internal/inspect"
	"github.com/golden-vcr/tmi/internal/sse"
	"github.com/golden-vcr/tmi/internal/twitch"
)

type Config struct {
	BindAddr   string `env:"BIND_ADDR"`
	ListenPort uint16 `env:"LISTEN_PORT" default:"5004"`

	TwitchChannelNames string `env:"TWITCH_CHANNEL_NAMES" required:"true"`
	TwitchClientId     string `env:"TWITCH_CLIENT_ID" required:"true"`
	TwitchClientSecret string `env:"TWITCH_CLIENT_SECRET" required:"true"`

	ChatConnectTimeout   time.Duration `env:"CHAT_CONNECT_TIMEOUT" default:"10s"`
	ChatMessagesToBuffer int           `env:"CHAT_MESSAGES_TO_BUFFER" default:"64"`
	BadgeRefreshInterval time.Duration `env:"BADGE_REFRESH_INTERVAL" default:"1h"`

	DatabaseHost     string `env:"PGHOST" required:"true"`
	DatabasePort     int    `env:"PGPORT" required:"true"`
	DatabaseName     string `env:"PGDATABASE" required:"true"`
	DatabaseUser     string `env:"PGUSER" required:"true"`
	DatabasePassword string `env:"PGPASSWORD" required:"true"`
	DatabaseSslMode  string `env:"PGSSLMODE"`

	Debug bool `env:"DEBUG"`
}

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	channelNames := twitch.ParseChannelNames(config.TwitchChannelNames)
	if len(channelNames) == 0 {
		log.Fatalf("TWITCH_CHANNEL_NAMES must name at least one channel")
	}

	logger, err := newLogger(config.Debug)
	if err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, close := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill, syscall.SIGTERM)
	defer close()

	// Connect to the database in which chat messages are archived
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
	if err := db.Ping(); err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	q := queries.New(db)

	// Fetch badge catalogs for every channel we're going to join, so that badges can be
	// resolved from the very first message
	twitchClient, err := twitch.NewClient(twitch.Config{
		ClientId:     config.TwitchClientId,
		ClientSecret: config.TwitchClientSecret,
	})
	if err != nil {
		log.Fatalf("error initializing Twitch API client: %v", err)
	}
	store := badges.NewStore(twitchClient, logger)
	if err := store.Refresh(ctx); err != nil {
		log.Fatalf("error fetching global badge catalog: %v", err)
	}
	for _, channelName := range channelNames {
		if err := store.Join(ctx, channelName); err != nil {
			log.Fatalf("error fetching badge catalog for channel %s: %v", channelName, err)
		}
	}

	// Connect to Twitch chat
	agent, err := chat.NewAgent(ctx, logger, store, channelNames, config.ChatConnectTimeout)
	if err != nil {
		log.Fatalf("error initializing Twitch chat agent: %v", err)
	}

	// Every command we receive from chat updates the live chat log and the archive
	chatLog := chat.NewLog(logger, config.ChatMessagesToBuffer)
	recorder := archive.NewRecorder(q, logger)

	chatHandler := sse.NewHandler[*chat.LogEvent](ctx, logger, chatLog.Events())
	chatHandler.MatchFunc = func(req *http.Request, event *chat.LogEvent) bool {
		channel := req.URL.Query().Get("channel")
		return channel == "" || twitch.NormalizeChannelName(channel) == event.Channel
	}
	chatHandler.EventNameFunc = func(event *chat.LogEvent) string {
		return string(event.Type)
	}

	r := mux.NewRouter()
	r.Path("/").Handler(health.NewServer(
		health.Check{Name: "chat", GetStatus: agent.GetStatus, Required: true},
		health.Check{Name: "database", GetStatus: db.Ping, Required: true},
		health.Check{Name: "badges", GetStatus: store.Status},
	))
	r.Path("/chat").Methods("GET").Handler(chatHandler)
	archive.NewServer(q).RegisterRoutes(r.PathPrefix("/history").Subrouter())
	inspect.NewServer(store).RegisterRoutes(r.PathPrefix("/inspect").Subrouter())

	addr := fmt.Sprintf("%s:%d", config.BindAddr, config.ListenPort)
	server := &http.Server{Addr: addr, Handler: cors.Default().Handler(r)}

	logger.Info("Listening", zap.String("addr", addr), zap.Strings("channels", channelNames))
	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(server.ListenAndServe)
	wg.Go(func() error {
		return store.Run(ctx, config.BadgeRefreshInterval)
	})
	wg.Go(func() error {
		return chat.Dispatch(ctx, logger, agent.Commands(), chatLog, recorder)
	})

	<-ctx.Done()
	logger.Info("Shutting down")
	if err := agent.Disconnect(); err != nil {
		logger.Error("Failed to disconnect from Twitch chat", zap.Error(err))
	}
	server.Shutdown(context.Background())

	err = wg.Wait()
	if err == http.ErrServerClosed {
		logger.Info("Server closed")
	} else if err != nil {
		log.Fatalf("error running server: %v", err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
