package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Humans-Not-Required/blog/client"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search posts across public blogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		semantic, _ := cmd.Flags().GetBool("semantic")
		blogID, _ := cmd.Flags().GetString("blog")

		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		ctx := context.Background()
		if semantic {
			hits, err := c.SearchSemantic(ctx, args[0], client.SemanticSearchParams{
				Limit:  limit,
				BlogID: blogID,
			})
			if err != nil {
				return fail(err)
			}
			for _, h := range hits {
				fmt.Printf("%.3f  %s/%s\n", h.Similarity, h.BlogID, h.PostID)
			}
			return nil
		}

		hits, err := c.Search(ctx, args[0], client.SearchParams{Limit: limit, Offset: offset})
		if err != nil {
			return fail(err)
		}
		for _, h := range hits {
			fmt.Printf("%s  %s (%s)\n", headingColor().Sprint(h.Slug), h.Title, h.BlogName)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", 0, "Maximum number of results")
	searchCmd.Flags().Int("offset", 0, "Skip this many results")
	searchCmd.Flags().Bool("semantic", false, "Use semantic similarity instead of full-text search")
	searchCmd.Flags().String("blog", "", "Restrict semantic search to one blog")
}
