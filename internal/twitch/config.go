package twitch

type Config struct {
	ClientId     string `env:"TWITCH_CLIENT_ID" required:"true"`
	ClientSecret string `env:"TWITCH_CLIENT_SECRET" required:"true"`
}
