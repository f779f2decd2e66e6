package cli

// Command represents a CLI command type.
type Command int

const (
	// CommandNone represents no command or an unrecognized command.
	CommandNone Command = iota

	// CommandKiosk represents the kiosk command that runs the showroom TUI.
	CommandKiosk

	// CommandServe represents the serve command that runs the dealer gateway.
	CommandServe

	// CommandCatalog represents the catalog command that prints the lineup.
	CommandCatalog

	// CommandVersion represents the version command for displaying build information.
	CommandVersion

	// CommandHelp represents the help command for showing usage information.
	CommandHelp
)

// String returns the command name as a string.
func (c Command) String() string {
	switch c {
	case CommandKiosk:
		return "kiosk"
	case CommandServe:
		return "serve"
	case CommandCatalog:
		return "catalog"
	case CommandVersion:
		return "version"
	case CommandHelp:
		return "help"
	default:
		return ""
	}
}

// IsValid returns true if the command is a recognized command.
func (c Command) IsValid() bool {
	return c > CommandNone && c <= CommandHelp
}

// CommandInfo holds metadata about a command.
type CommandInfo struct {
	// Name is the primary command name.
	Name string

	// Aliases are alternative names for the command.
	Aliases []string

	// Description is a brief description of what the command does.
	Description string

	// Usage shows how to invoke the command.
	Usage string

	// LongDescription provides detailed help text for the command.
	LongDescription string
}

// Commands returns all available commands with their metadata.
func Commands() []CommandInfo {
	return []CommandInfo{
		{
			Name:        "kiosk",
			Aliases:     []string{"k", "run"},
			Description: "Run the showroom-floor deal builder",
			Usage:       "showroom kiosk [flags]",
			LongDescription: `Run the full-screen deal builder on a showroom kiosk.

The kiosk walks a customer from category selection through budget and
trade-in to a deal summary. Inventory counts and trade valuations come
from the dealer gateway; with --offline the kiosk serves from its local
cache instead.

Flags:
  --gateway URL   Dealer gateway base URL
  --theme NAME    Color theme (crestline-dark, crestline-light)
  --dealer NAME   Dealership name shown in the header

Examples:
  showroom kiosk                                   Run against the configured gateway
  showroom kiosk --gateway http://dms.local:9500   Point at a specific gateway
  showroom --offline kiosk                         Run from the local cache`,
		},
		{
			Name:        "serve",
			Aliases:     []string{"s", "gateway"},
			Description: "Run the dealer gateway service",
			Usage:       "showroom serve [flags]",
			LongDescription: `Run the dealer gateway the kiosks talk to.

The gateway serves lot inventory, VIN decoding, trade valuations and
appraisal booking over HTTP. A fresh inventory database is seeded with
a demo fleet so new installs have a lot to show.

Flags:
  --addr ADDR   Bind address (default from config, e.g. :9500)

Examples:
  showroom serve               Serve on the configured address
  showroom serve --addr :9500  Serve on a specific port`,
		},
		{
			Name:        "catalog",
			Aliases:     []string{"c", "lineup"},
			Description: "Print the vehicle lineup",
			Usage:       "showroom catalog [flags]",
			LongDescription: `Print the catalog the kiosk sells from.

Shows each category with its models, cab options and color lists.
Useful for checking what an updated catalog file will put in front of
customers.

Flags:
  --category SLUG   Show a single category (e.g. trucks)
  --json            Output the catalog in JSON format

Examples:
  showroom catalog                    Print the full lineup
  showroom catalog --category trucks  Print one category
  showroom catalog --json             Output as JSON for scripting`,
		},
		{
			Name:        "version",
			Aliases:     []string{"v"},
			Description: "Show version information",
			Usage:       "showroom version",
			LongDescription: `Display version information about showroom.

Shows the version number, build time, and git commit hash.`,
		},
		{
			Name:        "help",
			Aliases:     []string{"h"},
			Description: "Show help for a command",
			Usage:       "showroom help [command]",
			LongDescription: `Display help information.

When called without arguments, shows general help and available commands.
When called with a command name, shows detailed help for that command.

Examples:
  showroom help        Show general help
  showroom help kiosk  Show help for the kiosk command`,
		},
	}
}

// GetCommandInfo returns the CommandInfo for a given command.
// Returns nil if the command is not found.
func GetCommandInfo(cmd Command) *CommandInfo {
	if !cmd.IsValid() {
		return nil
	}

	cmds := Commands()
	for i := range cmds {
		if cmds[i].Name == cmd.String() {
			return &cmds[i]
		}
	}
	return nil
}

// ParseCommand parses a string into a Command.
// It recognizes both primary command names and aliases.
func ParseCommand(s string) Command {
	for _, info := range Commands() {
		if s == info.Name {
			return commandFromName(info.Name)
		}
		for _, alias := range info.Aliases {
			if s == alias {
				return commandFromName(info.Name)
			}
		}
	}
	return CommandNone
}

// commandFromName converts a command name string to a Command type.
func commandFromName(name string) Command {
	switch name {
	case "kiosk":
		return CommandKiosk
	case "serve":
		return CommandServe
	case "catalog":
		return CommandCatalog
	case "version":
		return CommandVersion
	case "help":
		return CommandHelp
	default:
		return CommandNone
	}
}
