package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crestline/showroom/internal/config"
	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/tradein"
)

// ============================================================================
// Lot Fixtures
// ============================================================================

// FixtureLot returns a small lot snapshot covering trucks, SUVs and a sold
// unit, enough to exercise counting and filtering.
func FixtureLot() []dealer.Vehicle {
	return []dealer.Vehicle{
		{VIN: "1GCUYDED5KZ900001", Year: 2025, Make: "Chevrolet", Model: "Silverado 1500", Trim: "LT", Color: "Summit White", MSRP: 48300, Status: "in_stock", StockNo: "T25-9001"},
		{VIN: "1GCUYDED5KZ900002", Year: 2025, Make: "Chevrolet", Model: "Silverado 1500", Trim: "RST", Color: "Black", MSRP: 53900, Status: "in_stock", StockNo: "T25-9002"},
		{VIN: "1GNSKCKC5KR900003", Year: 2025, Make: "Chevrolet", Model: "Tahoe", Trim: "Premier", Color: "Black", MSRP: 64900, Status: "in_stock", StockNo: "T25-9003"},
		{VIN: "3GNAXUEG5PL900004", Year: 2025, Make: "Chevrolet", Model: "Equinox", Trim: "LT", Color: "Cacti Green", MSRP: 31100, Status: "sold", StockNo: "T25-9004"},
	}
}

// FixtureVehicle returns a single in-stock truck.
func FixtureVehicle() dealer.Vehicle {
	return FixtureLot()[0]
}

// ============================================================================
// Trade-In Fixtures
// ============================================================================

// FixtureTradeData returns a complete owned-outright trade record ready for
// an estimate call.
func FixtureTradeData() tradein.TradeData {
	data := tradein.NewTradeData()
	data.Year = "2019"
	data.Make = "Chevrolet"
	data.Model = "Equinox"
	data.Trim = "LT"
	data.Mileage = "61000"
	data.VIN = "2GNFLFEK5H6200001"
	data.AnswerPayoff(false)
	data.Condition = finance.ConditionGood
	return *data
}

// FixtureTradeDataWithPayoff returns a trade record with an outstanding loan.
func FixtureTradeDataWithPayoff() tradein.TradeData {
	data := FixtureTradeData()
	data.AnswerPayoff(true)
	data.PayoffAmount = 12500
	data.MonthlyPayment = 389
	data.FinancedWith = "GM Financial"
	return data
}

// FixtureEstimate returns a plausible value range for the fixture trade.
func FixtureEstimate() tradein.Estimate {
	return tradein.Estimate{Low: 9450, Mid: 10500, High: 11550}
}

// FixtureDecoded returns the decode result for the fixture trade VIN.
func FixtureDecoded() tradein.DecodedVehicle {
	return tradein.DecodedVehicle{Year: "2019", Make: "Chevrolet", Model: "Equinox", Trim: "LT"}
}

// FixtureAppraisalRequest returns a booking request for the fixture trade.
func FixtureAppraisalRequest() dealer.AppraisalRequest {
	return dealer.AppraisalRequest{
		SessionID:    "sess-fixture",
		Year:         "2019",
		Make:         "Chevrolet",
		Model:        "Equinox",
		Mileage:      "61000",
		VIN:          "2GNFLFEK5H6200001",
		EstimatedMid: 10500,
	}
}

// ============================================================================
// Deal Fixtures
// ============================================================================

// FixtureSummary returns a finished deal for a crew cab truck with a trade.
func FixtureSummary() deal.Summary {
	return deal.Summary{
		ModelName:          "Silverado 1500",
		CabLabel:           "Crew Cab",
		Colors:             []string{"Summit White", "Black"},
		BudgetMin:          300,
		BudgetMax:          650,
		DownPaymentPercent: 10,
		HasTrade:           true,
		HasPayoff:          true,
		PayoffAmount:       12500,
		MonthlyPayment:     389,
		FinancedWith:       "GM Financial",
	}
}

// ============================================================================
// Config Fixtures
// ============================================================================

// FixtureConfig returns an offline config rooted in test temp directories,
// so nothing touches the real cache or config paths.
func FixtureConfig(t testing.TB) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ConfigDir = t.TempDir()
	cfg.CacheDir = t.TempDir()
	cfg.Offline = true
	cfg.LogLevel = "error"
	return cfg
}

// WriteConfigFile writes YAML config content to a temp file and returns its
// path.
func WriteConfigFile(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}
