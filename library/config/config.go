package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type HTTPServer struct {
	Host         string        `envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

// Policy holds the circulation rules. Money values are decimal strings.
type Policy struct {
	LoanPeriodDays    int    `envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	FineDailyRate     string `envconfig:"FINE_DAILY_RATE" default:"5.00"`
	LostBookFee       string `envconfig:"LOST_BOOK_FEE" default:"500.00"`
	CardValidityYears int    `envconfig:"CARD_VALIDITY_YEARS" default:"4"`
}

func (p Policy) Domain() (domain.Policy, error) {
	rate, err := decimal.NewFromString(p.FineDailyRate)
	if err != nil {
		return domain.Policy{}, errors.Wrap(err, "FINE_DAILY_RATE")
	}
	fee, err := decimal.NewFromString(p.LostBookFee)
	if err != nil {
		return domain.Policy{}, errors.Wrap(err, "LOST_BOOK_FEE")
	}
	dp := domain.Policy{
		LoanPeriod:    time.Duration(p.LoanPeriodDays) * 24 * time.Hour,
		DailyFineRate: rate,
		LostBookFee:   fee,
		CardValidity:  p.CardValidityYears,
	}
	return dp, dp.Validate()
}

type Config struct {
	Server   HTTPServer
	Database postgres.DB
	Kafka    kafka.Config
	Policy   Policy
	Log      logger.Log
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
