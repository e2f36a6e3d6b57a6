package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Humans-Not-Required/blog/client"
)

var (
	flagURL     string
	flagKey     string
	flagTimeout time.Duration
	flagVerbose bool
	flagNoColor bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "blogctl",
	Short:   "Manage blogs, posts and comments on a blog service from the terminal",
	Version: client.Version,
	Long: `Blogctl talks to a blog service over its HTTP API: create blogs,
publish and edit posts, search, render previews and pull feeds.

The service URL and manage key come from --url/--key, a .env file, or the
BLOG_URL and BLOG_KEY environment variables, in that order.`,
	// Errors are printed by fail with the exact cause; cobra's own reprint
	// and usage dump would just add noise.
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// newClient builds a client from the persistent flags, falling back to the
// environment for anything not set explicitly.
func newClient() (*client.Client, error) {
	var opts []client.Option
	if flagURL != "" {
		opts = append(opts, client.WithBaseURL(flagURL))
	}
	if flagKey != "" {
		opts = append(opts, client.WithManageKey(flagKey))
	}
	if flagTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(flagTimeout))
	}
	if flagVerbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		logger.SetOutput(os.Stderr)
		opts = append(opts, client.WithLogger(logger))
	}
	return client.NewFromEnv(opts...)
}

func fail(err error) error {
	errColor := color.New(color.FgRed, color.Bold)
	if flagNoColor {
		errColor.DisableColor()
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", errColor.Sprint("Error:"), err)
	return err
}

func okColor() *color.Color {
	c := color.New(color.FgGreen, color.Bold)
	if flagNoColor {
		c.DisableColor()
	}
	return c
}

func headingColor() *color.Color {
	c := color.New(color.FgBlue, color.Bold)
	if flagNoColor {
		c.DisableColor()
	}
	return c
}

func init() {
	// A .env next to the binary is a convenience for local use; a missing
	// file is not an error.
	_ = godotenv.Load()

	RootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Base URL of the blog service (default $BLOG_URL or "+client.DefaultBaseURL+")")
	RootCmd.PersistentFlags().StringVar(&flagKey, "key", "", "Manage key for write operations (default $BLOG_KEY)")
	RootCmd.PersistentFlags().DurationVarP(&flagTimeout, "timeout", "t", 0, "Request timeout")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every request to stderr")
	RootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	// Add subcommands to root command
	RootCmd.AddCommand(healthCmd)
	RootCmd.AddCommand(blogsCmd)
	RootCmd.AddCommand(postsCmd)
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(previewCmd)
}
