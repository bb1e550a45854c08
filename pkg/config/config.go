// Package config loads the service configuration from the environment, with
// optional .env files for local development and tests.
package config

import "time"

type DB struct {
	Url string `envconfig:"URL"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[cashcard]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
