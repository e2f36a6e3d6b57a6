package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the blog service is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wait, _ := cmd.Flags().GetDuration("wait")
		interval, _ := cmd.Flags().GetDuration("interval")

		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		ctx := context.Background()
		if wait > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, wait)
			defer cancel()
			if err := c.WaitHealthy(ctx, interval); err != nil {
				return fail(fmt.Errorf("service did not become healthy within %s: %w", wait, err))
			}
		}

		h, err := c.Health(ctx)
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s %s (version %s)\n", okColor().Sprint("●"), h.Status, h.Version)
		return nil
	},
}

func init() {
	healthCmd.Flags().Duration("wait", 0, "Keep polling until healthy, up to this long")
	healthCmd.Flags().Duration("interval", time.Second, "Poll interval used with --wait")
}
