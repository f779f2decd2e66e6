// Package cli provides command-line argument parsing for the Showroom
// application. It supports subcommands, global flags, and command-specific
// flags with both short and long variants. The parser integrates with the
// config package to provide a unified configuration experience.
package cli

// GlobalFlags holds flags common to all commands.
// These flags can be specified before the command name and affect
// the overall behavior of the application.
type GlobalFlags struct {
	// Verbose enables detailed output for debugging and troubleshooting.
	Verbose bool

	// Quiet suppresses non-essential output, only showing errors.
	Quiet bool

	// Offline runs the kiosk against the local inventory cache instead of
	// the dealer gateway.
	Offline bool

	// ConfigFile specifies a custom configuration file path.
	ConfigFile string

	// LogFile specifies the path to write log output.
	LogFile string

	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string

	// NoColor disables colored terminal output.
	NoColor bool
}

// KioskFlags holds kiosk command specific flags.
// These flags control the showroom-floor session.
type KioskFlags struct {
	// GatewayURL overrides the dealer gateway base URL.
	GatewayURL string

	// Theme selects the kiosk color theme.
	Theme string

	// DealerName overrides the dealership name shown in the header.
	DealerName string
}

// ServeFlags holds serve command specific flags.
// These flags control the dealer gateway service.
type ServeFlags struct {
	// Addr is the address the gateway binds to.
	Addr string
}

// CatalogFlags holds catalog command specific flags.
// These flags filter and format the lineup listing.
type CatalogFlags struct {
	// Category limits output to a single category slug.
	Category string

	// JSON outputs the catalog in JSON format.
	JSON bool
}

// Validate checks GlobalFlags for conflicting options.
// It returns an error if incompatible flags are set together.
func (f *GlobalFlags) Validate() error {
	if f.Verbose && f.Quiet {
		return &FlagError{
			Flag:    "verbose/quiet",
			Message: "cannot use --verbose and --quiet together",
		}
	}
	return nil
}

// FlagError represents an error with a command-line flag.
type FlagError struct {
	Flag    string
	Message string
}

// Error implements the error interface.
func (e *FlagError) Error() string {
	return "flag error: " + e.Flag + ": " + e.Message
}
