// Package constants defines application-wide constants for the Showroom kiosk.
// All constants are typed to ensure type safety and prevent accidental misuse.
package constants

import "time"

// Application metadata
const (
	// AppName is the application name used in logs, configs, and user messages.
	AppName string = "showroom"
	// AppDescription is a short description of the application.
	AppDescription string = "Dealership Deal-Builder Kiosk"
)

// ExitCode represents process exit codes for different termination scenarios.
type ExitCode int

const (
	// ExitSuccess indicates the application completed successfully.
	ExitSuccess ExitCode = iota
	// ExitError indicates a general error occurred.
	ExitError
	// ExitValidation indicates invalid input or configuration.
	ExitValidation
	// ExitGateway indicates the dealer gateway failed to start or serve.
	ExitGateway
	// ExitUserAbort indicates the user cancelled the operation.
	ExitUserAbort
)

// Int returns the exit code as an int for use with os.Exit().
func (e ExitCode) Int() int {
	return int(e)
}

// Timeouts for various operations. These are tuned so the kiosk always
// responds within a few seconds even when the dealer gateway is unreachable.
const (
	// InventoryTimeout is the hard deadline for the inventory count fetch.
	// The category screen must never spin longer than this.
	InventoryTimeout time.Duration = 5 * time.Second
	// DealerCallTimeout is the deadline for VIN decode and estimate calls.
	DealerCallTimeout time.Duration = 10 * time.Second
	// GatewayShutdownTimeout bounds graceful shutdown of the serve command.
	GatewayShutdownTimeout time.Duration = 15 * time.Second
)

// Budget slider bounds, in monthly dollars and percent. The payment slider
// moves in steps of 25, the down payment slider in steps of 5.
const (
	// MinMonthlyPayment is the lowest selectable target monthly payment.
	MinMonthlyPayment int = 300
	// MaxMonthlyPayment is the highest selectable target monthly payment.
	MaxMonthlyPayment int = 2000
	// MonthlyPaymentStep is the payment slider increment.
	MonthlyPaymentStep int = 25
	// MinDownPaymentPercent is the lowest selectable down payment percent.
	MinDownPaymentPercent int = 0
	// MaxDownPaymentPercent is the highest selectable down payment percent.
	MaxDownPaymentPercent int = 30
	// DownPaymentStep is the down payment slider increment.
	DownPaymentStep int = 5
)

// Finance defaults used by the buying-power calculator.
const (
	// BuyingPowerAPR is the fixed APR assumed when inverting the annuity.
	BuyingPowerAPR float64 = 0.07
	// LongTermThreshold is the 84-month loan amount above which the
	// 84-month term is offered instead of 72. The comparison is strict.
	LongTermThreshold float64 = 20000
	// ShortTermMonths is the default finance term.
	ShortTermMonths int = 72
	// LongTermMonths is the extended finance term for larger loans.
	LongTermMonths int = 84
)

// VINLength is the only VIN length the kiosk accepts for decode requests.
// Full checksum validation is delegated to the dealer gateway.
const VINLength int = 17

// File names and default paths
const (
	// DefaultConfigDir is the default configuration directory relative to $HOME.
	DefaultConfigDir string = ".config/showroom"
	// DefaultCacheDir is the default cache directory relative to $HOME.
	DefaultCacheDir string = ".cache/showroom"
	// DefaultLogFile is the default log file name.
	DefaultLogFile string = "showroom.log"
	// ConfigFileName is the configuration file name.
	ConfigFileName string = "config.yaml"
	// InventoryDBName is the local inventory cache database file name.
	InventoryDBName string = "inventory.db"
)
