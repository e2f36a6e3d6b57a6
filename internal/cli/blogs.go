package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Humans-Not-Required/blog/client"
)

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "Create and inspect blogs",
}

var blogsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new blog and print its manage key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		desc, _ := cmd.Flags().GetString("description")
		private, _ := cmd.Flags().GetBool("private")

		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		params := client.CreateBlogParams{Name: name, Description: desc}
		if private {
			public := false
			params.IsPublic = &public
		}

		created, err := c.CreateBlog(context.Background(), params)
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s created blog %s\n", okColor().Sprint("✓"), created.ID)
		fmt.Printf("  view:   %s\n", created.ViewURL)
		fmt.Printf("  manage: %s\n", created.ManageURL)
		fmt.Printf("  %s %s\n", headingColor().Sprint("manage key (shown once):"), created.ManageKey)
		return nil
	},
}

var blogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List public blogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		blogs, err := c.ListBlogs(context.Background())
		if err != nil {
			return fail(err)
		}

		for _, b := range blogs {
			fmt.Printf("%s  %s\n", headingColor().Sprint(b.ID), b.Name)
		}
		return nil
	},
}

var blogsGetCmd = &cobra.Command{
	Use:   "get BLOG_ID",
	Short: "Show one blog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		b, err := c.GetBlog(context.Background(), args[0])
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s %s\n", headingColor().Sprint(b.ID), b.Name)
		if b.Description != "" {
			fmt.Printf("  %s\n", b.Description)
		}
		fmt.Printf("  public: %v, created: %s\n", b.IsPublic, b.CreatedAt)
		return nil
	},
}

var blogsStatsCmd = &cobra.Command{
	Use:   "stats BLOG_ID",
	Short: "Show post, comment and tag counts for a blog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		s, err := c.Stats(context.Background(), args[0])
		if err != nil {
			return fail(err)
		}

		fmt.Printf("posts: %d, comments: %d\n", s.PostCount, s.CommentCount)
		for tag, n := range s.TagCounts {
			fmt.Printf("  #%s: %d\n", tag, n)
		}
		return nil
	},
}

func init() {
	blogsCreateCmd.Flags().String("name", "", "Blog name")
	blogsCreateCmd.Flags().String("description", "", "Blog description")
	blogsCreateCmd.Flags().Bool("private", false, "Hide the blog from public listings")
	_ = blogsCreateCmd.MarkFlagRequired("name")

	blogsCmd.AddCommand(blogsCreateCmd)
	blogsCmd.AddCommand(blogsListCmd)
	blogsCmd.AddCommand(blogsGetCmd)
	blogsCmd.AddCommand(blogsStatsCmd)
}
