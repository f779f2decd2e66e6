package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/crestline/showroom/internal/app"
	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/cli"
	"github.com/crestline/showroom/internal/config"
	"github.com/crestline/showroom/internal/constants"
)

// CLI encapsulates the command-line interface for Showroom.
type CLI struct {
	parser *cli.Parser
	config *config.Config
}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{
		parser: cli.NewParser(constants.AppName, Version, BuildTime, GitCommit),
	}
}

// Run parses arguments and executes the appropriate command.
// It returns an exit code suitable for os.Exit().
func (c *CLI) Run(args []string) int {
	result, err := c.parser.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run '%s help' for usage.\n", constants.AppName)
		return constants.ExitValidation.Int()
	}

	if err := c.loadConfig(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return constants.ExitError.Int()
	}

	c.applyGlobalFlags(result.GlobalFlags)

	if result.ShowHelp {
		return c.showHelp(result)
	}

	return c.executeCommand(result)
}

// loadConfig loads configuration from file and environment.
func (c *CLI) loadConfig(result *cli.ParseResult) error {
	configPath := result.GlobalFlags.ConfigFile
	if configPath == "" {
		configPath = config.DefaultConfig().ConfigPath()
	}

	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	c.config = cfg
	return nil
}

// applyGlobalFlags applies CLI global flags to the configuration.
// CLI flags take precedence over config file values.
func (c *CLI) applyGlobalFlags(flags cli.GlobalFlags) {
	if flags.Verbose {
		c.config.Verbose = true
	}
	if flags.Quiet {
		c.config.Quiet = true
	}
	if flags.Offline {
		c.config.Offline = true
	}
	if flags.LogFile != "" {
		c.config.LogFile = flags.LogFile
	}
	if flags.LogLevel != "" {
		c.config.LogLevel = flags.LogLevel
	}
	if flags.NoColor {
		c.config.NoColor = true
	}
}

// showHelp displays help information and returns an exit code.
func (c *CLI) showHelp(result *cli.ParseResult) int {
	if result.HelpCommand != "" {
		fmt.Print(c.parser.CommandUsage(result.HelpCommand))
	} else {
		fmt.Print(c.parser.Usage())
	}
	return constants.ExitSuccess.Int()
}

// executeCommand runs the appropriate command handler.
func (c *CLI) executeCommand(result *cli.ParseResult) int {
	switch result.Command {
	case cli.CommandVersion:
		return c.cmdVersion()
	case cli.CommandKiosk:
		return c.cmdKiosk(result)
	case cli.CommandServe:
		return c.cmdServe(result)
	case cli.CommandCatalog:
		return c.cmdCatalog(result)
	default:
		fmt.Print(c.parser.Usage())
		return constants.ExitSuccess.Int()
	}
}

// cmdVersion displays version information.
func (c *CLI) cmdVersion() int {
	fmt.Print(c.parser.VersionString())
	return constants.ExitSuccess.Int()
}

// cmdKiosk runs the showroom-floor deal builder.
func (c *CLI) cmdKiosk(result *cli.ParseResult) int {
	if result.KioskFlags.GatewayURL != "" {
		c.config.GatewayURL = result.KioskFlags.GatewayURL
	}
	if result.KioskFlags.Theme != "" {
		c.config.Theme = result.KioskFlags.Theme
	}
	if result.KioskFlags.DealerName != "" {
		c.config.DealerName = result.KioskFlags.DealerName
	}

	application := c.newApp()
	ctx := context.Background()

	if err := application.InitializeWithConfig(ctx, c.config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitError.Int()
	}
	defer func() { _ = application.Shutdown() }()

	if err := application.RunKiosk(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitError.Int()
	}
	return constants.ExitSuccess.Int()
}

// cmdServe runs the dealer gateway service.
func (c *CLI) cmdServe(result *cli.ParseResult) int {
	if result.ServeFlags.Addr != "" {
		c.config.GatewayAddr = result.ServeFlags.Addr
	}

	application := c.newApp()
	ctx := context.Background()

	if err := application.InitializeWithConfig(ctx, c.config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitGateway.Int()
	}

	if err := application.RunServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitGateway.Int()
	}
	return constants.ExitSuccess.Int()
}

// cmdCatalog prints the vehicle lineup the kiosk sells from.
func (c *CLI) cmdCatalog(result *cli.ParseResult) int {
	cat, err := catalog.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitError.Int()
	}

	categories := cat.Categories
	if slug := result.CatalogFlags.Category; slug != "" {
		category, ok := cat.CategoryBySlug(slug)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category: %s\n", slug)
			return constants.ExitValidation.Int()
		}
		categories = []catalog.Category{category}
	}

	if result.CatalogFlags.JSON {
		out, err := json.MarshalIndent(categories, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return constants.ExitError.Int()
		}
		fmt.Println(string(out))
		return constants.ExitSuccess.Int()
	}

	for _, category := range categories {
		fmt.Printf("%s (%s)\n", category.Name, category.Tagline)
		for _, model := range category.Models {
			fmt.Printf("  %s\n", model.Name)
			if model.HasCabOptions() {
				fmt.Printf("    Cabs:   %s\n", strings.Join(model.CabOptions, ", "))
			}
			fmt.Printf("    Colors: %s\n", strings.Join(cat.ColorsFor(model), ", "))
		}
		fmt.Println()
	}
	return constants.ExitSuccess.Int()
}

func (c *CLI) newApp() *app.App {
	return app.New(app.Options{
		Version:         Version,
		BuildTime:       BuildTime,
		GitCommit:       GitCommit,
		ShutdownTimeout: constants.GatewayShutdownTimeout,
	})
}
