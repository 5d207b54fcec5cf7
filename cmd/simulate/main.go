package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
)

type Config struct {
	TwitchChannelName string `env:"TWITCH_CHANNEL_NAME" default:"goldenvcr"`
}

func main() {
	// Parse config from environment variables
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	postUrl := flag.String("post", "", "if set, POST the line to this URL (e.g. http://localhost:5004/inspect) and print the response")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: simulate [--post url] [%s]\n", strings.Join(kinds(), "|"))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	// Synthesize a raw line of the requested kind
	line, err := buildLine(flag.Arg(0), config.TwitchChannelName, time.Now())
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(line)
	if *postUrl == "" {
		return
	}

	// Send the line to the inspect endpoint and print the commands it parses to
	res, err := http.Post(*postUrl, "text/plain", strings.NewReader(line))
	if err != nil {
		log.Fatalf("error sending HTTP request: %v", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatalf("error reading response body: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		log.Fatalf("got response %d: %s", res.StatusCode, body)
	}
	fmt.Printf("< %d\n%s", res.StatusCode, body)
}
