package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [FILE]",
	Short: "Render markdown to HTML without publishing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		content, err := readContent(path)
		if err != nil {
			return fail(err)
		}

		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		res, err := c.Preview(context.Background(), content)
		if err != nil {
			return fail(err)
		}

		fmt.Println(res.HTML)
		return nil
	},
}
