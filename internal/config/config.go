package config

import (
	"fmt"

	"github.com/caarlos0/env"
)

type config struct {
	Production    bool   `env:"PRODUCTION" envDefault:"false"`
	Port          string `env:"PORT" envDefault:"80"`
	PostgresUrl   string `env:"POSTGRES_URL,required"`
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@hourly"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func SweepSchedule() string {
	return conf.SweepSchedule
}
