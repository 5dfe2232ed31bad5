// Package domain holds the circulation rules as pure functions over model
// values. Nothing here touches storage; callers persist the results.
package domain

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

type Policy struct {
	LoanPeriod    time.Duration
	DailyFineRate decimal.Decimal
	LostBookFee   decimal.Decimal
	CardValidity  int // years
}

func DefaultPolicy() Policy {
	return Policy{
		LoanPeriod:    14 * day,
		DailyFineRate: decimal.NewFromInt(5),
		LostBookFee:   decimal.NewFromInt(500),
		CardValidity:  4,
	}
}

func (p Policy) Validate() error {
	if p.LoanPeriod <= 0 {
		return errors.New("loan period must be positive")
	}
	if p.DailyFineRate.IsNegative() {
		return errors.New("daily fine rate must not be negative")
	}
	if p.LostBookFee.IsNegative() {
		return errors.New("lost book fee must not be negative")
	}
	if p.CardValidity <= 0 {
		return errors.New("card validity must be positive")
	}
	return nil
}
