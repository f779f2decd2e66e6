// Package session holds the customer-data record a kiosk walk-up builds.
// The wizard and the trade-in estimator write into it at their terminal
// steps; nothing reads it back mid-flow. A Session replaces the ambient
// "customer data bag" pattern with an explicit object passed down.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/tradein"
)

// CustomerData is the flattened record handed to the inventory hand-off.
type CustomerData struct {
	ModelName          string
	CabLabel           string
	Colors             []string
	BudgetMin          float64
	BudgetMax          float64
	DownPaymentPercent int

	HasTrade       bool
	HasPayoff      bool
	PayoffAmount   float64
	MonthlyPayment float64
	FinancedWith   string
	TradeYear      string
	TradeMake      string
	TradeModel     string
	TradeMileage   string

	// Trade estimate, present once the estimator has run.
	TradeValueLow      float64
	TradeValue         float64
	TradeValueHigh     float64
	AppraisalRequested bool
}

// Session is one customer's visit. Writes merge into the record; each
// apply call only touches the fields its source owns.
type Session struct {
	mu        sync.RWMutex
	id        string
	startedAt time.Time
	updatedAt time.Time
	data      CustomerData
}

// New starts a session for a fresh walk-up.
func New() *Session {
	now := time.Now()
	return &Session{
		id:        uuid.NewString(),
		startedAt: now,
		updatedAt: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// StartedAt returns when the customer started.
func (s *Session) StartedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startedAt
}

// Snapshot returns a copy of the current record.
func (s *Session) Snapshot() CustomerData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// ApplyDeal merges a completed wizard summary. Trade estimate fields are
// left alone; the estimator owns those.
func (s *Session) ApplyDeal(sum deal.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ModelName = sum.ModelName
	s.data.CabLabel = sum.CabLabel
	s.data.Colors = append([]string(nil), sum.Colors...)
	s.data.BudgetMin = sum.BudgetMin
	s.data.BudgetMax = sum.BudgetMax
	s.data.DownPaymentPercent = sum.DownPaymentPercent
	s.data.HasTrade = sum.HasTrade
	s.data.HasPayoff = sum.HasPayoff
	s.data.PayoffAmount = sum.PayoffAmount
	s.data.MonthlyPayment = sum.MonthlyPayment
	s.data.FinancedWith = sum.FinancedWith
	s.data.TradeYear = sum.TradeVehicle.Year
	s.data.TradeMake = sum.TradeVehicle.Make
	s.data.TradeModel = sum.TradeVehicle.Model
	s.data.TradeMileage = sum.TradeVehicle.Mileage
	s.updatedAt = time.Now()
}

// ApplyTrade merges a trade-in estimator outcome. The wizard's selection
// fields are left alone.
func (s *Session) ApplyTrade(out tradein.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.HasTrade = true
	s.data.HasPayoff = out.Data.OwesOnVehicle()
	s.data.PayoffAmount = out.Data.PayoffAmount
	s.data.MonthlyPayment = out.Data.MonthlyPayment
	s.data.FinancedWith = out.Data.FinancedWith
	s.data.TradeYear = out.Data.Year
	s.data.TradeMake = out.Data.Make
	s.data.TradeModel = out.Data.Model
	s.data.TradeMileage = out.Data.Mileage
	s.data.TradeValueLow = out.Estimate.Low
	s.data.TradeValue = out.Estimate.Mid
	s.data.TradeValueHigh = out.Estimate.High
	s.data.AppraisalRequested = out.AppraisalRequested
	s.updatedAt = time.Now()
}

// Reset clears the record for the next walk-up under a new identifier.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = uuid.NewString()
	s.data = CustomerData{}
	s.startedAt = time.Now()
	s.updatedAt = s.startedAt
}
