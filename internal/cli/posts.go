package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Humans-Not-Required/blog/client"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Publish, edit and read posts",
}

var postsCreateCmd = &cobra.Command{
	Use:   "create BLOG_ID",
	Short: "Publish a post from a markdown file or stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		file, _ := cmd.Flags().GetString("file")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		draft, _ := cmd.Flags().GetBool("draft")
		author, _ := cmd.Flags().GetString("author")

		content, err := readContent(file)
		if err != nil {
			return fail(err)
		}

		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		params := client.CreatePostParams{
			Title:      title,
			Content:    content,
			Tags:       tags,
			AuthorName: author,
		}
		if draft {
			params.Status = "draft"
		}

		post, err := c.CreatePost(context.Background(), args[0], params)
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s published %s (%s)\n", okColor().Sprint("✓"), post.Slug, post.ID)
		return nil
	},
}

var postsListCmd = &cobra.Command{
	Use:   "list BLOG_ID",
	Short: "List posts in a blog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		posts, err := c.ListPosts(context.Background(), args[0], client.ListPostsParams{
			Tag:    tag,
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return fail(err)
		}

		for _, p := range posts {
			line := fmt.Sprintf("%s  %s", headingColor().Sprint(p.Slug), p.Title)
			if len(p.Tags) > 0 {
				line += "  [" + strings.Join(p.Tags, ", ") + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var postsGetCmd = &cobra.Command{
	Use:   "get BLOG_ID SLUG",
	Short: "Print a post's markdown source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		p, err := c.GetPost(context.Background(), args[0], args[1])
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s\n\n%s\n", headingColor().Sprint(p.Title), p.Content)
		return nil
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete BLOG_ID POST_ID",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return fail(err)
		}

		if _, err := c.DeletePost(context.Background(), args[0], args[1]); err != nil {
			return fail(err)
		}

		fmt.Printf("%s deleted %s\n", okColor().Sprint("✓"), args[1])
		return nil
	},
}

var postsPinCmd = &cobra.Command{
	Use:   "pin BLOG_ID POST_ID",
	Short: "Pin a post to the top of its blog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return fail(err)
		}
		if _, err := c.PinPost(context.Background(), args[0], args[1]); err != nil {
			return fail(err)
		}
		fmt.Printf("%s pinned %s\n", okColor().Sprint("✓"), args[1])
		return nil
	},
}

var postsUnpinCmd = &cobra.Command{
	Use:   "unpin BLOG_ID POST_ID",
	Short: "Unpin a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return fail(err)
		}
		if _, err := c.UnpinPost(context.Background(), args[0], args[1]); err != nil {
			return fail(err)
		}
		fmt.Printf("%s unpinned %s\n", okColor().Sprint("✓"), args[1])
		return nil
	},
}

// readContent reads markdown from the given file, or stdin when the path is
// empty or "-".
func readContent(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func init() {
	postsCreateCmd.Flags().String("title", "", "Post title")
	postsCreateCmd.Flags().StringP("file", "f", "", "Markdown file to publish (defaults to stdin)")
	postsCreateCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	postsCreateCmd.Flags().Bool("draft", false, "Create as a draft instead of publishing")
	postsCreateCmd.Flags().String("author", "", "Author name")
	_ = postsCreateCmd.MarkFlagRequired("title")

	postsListCmd.Flags().String("tag", "", "Only posts carrying this tag")
	postsListCmd.Flags().Int("limit", 0, "Maximum number of posts")
	postsListCmd.Flags().Int("offset", 0, "Skip this many posts")

	postsCmd.AddCommand(postsCreateCmd)
	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsGetCmd)
	postsCmd.AddCommand(postsDeleteCmd)
	postsCmd.AddCommand(postsPinCmd)
	postsCmd.AddCommand(postsUnpinCmd)
}
