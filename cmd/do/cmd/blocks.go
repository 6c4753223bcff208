package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Abhinay9346/portfolio"
	"github.com/Abhinay9346/portfolio/internal/markdown"
	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/spf13/cobra"
)

func BlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks <slug|file>",
		Short: "Print the blocks a post renders to",
		Long: "Print the block sequence the line renderer produces for an embedded post " +
			"(by slug) or a markdown file on disk. Frontmatter is stripped from files.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, name, err := loadContent(args[0])
			if err != nil {
				return err
			}

			if markdown.HasUnterminatedFence(content) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s has an unterminated code fence, everything after it renders as code\n", name)
			}

			return printBlocks(cmd.OutOrStdout(), markdown.Render(content))
		},
	}
}

// loadContent reads arg as a file when one exists at that path, else looks it
// up as a post slug.
func loadContent(arg string) (content, name string, err error) {
	info, statErr := os.Stat(arg)
	if statErr == nil && !info.IsDir() {
		source, err := os.ReadFile(arg)
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", arg, err)
		}
		return string(markdown.NewParser().Body(source)), arg, nil
	}

	blog, err := service.NewBlogService(portfolio.ContentFS)
	if err != nil {
		return "", "", err
	}

	post, err := blog.Post(arg)
	if err != nil {
		return "", "", fmt.Errorf("%w (known slugs: %v)", err, blog.Slugs())
	}
	return post.Content, post.Slug, nil
}

func printBlocks(out io.Writer, blocks []markdown.Block) error {
	w := bufio.NewWriter(out)

	for i, block := range blocks {
		fmt.Fprintf(w, "%3d  %-9s", i+1, block.Kind())

		switch b := block.(type) {
		case markdown.CodeBlock:
			lang := b.Language
			if lang == "" {
				lang = "-"
			}
			fmt.Fprintf(w, " lang=%s lines=%d\n", lang, len(b.Lines))
			for _, line := range b.Lines {
				fmt.Fprintf(w, "       | %s\n", line)
			}
		case markdown.Heading:
			fmt.Fprintf(w, " %q\n", b.Text)
		case markdown.BoldLine:
			fmt.Fprintf(w, " %q\n", b.Text)
		case markdown.Paragraph:
			fmt.Fprintf(w, " %q\n", b.Text)
		case markdown.BulletList:
			fmt.Fprintf(w, " items=%d\n", len(b.Items))
			for _, item := range b.Items {
				fmt.Fprintf(w, "       - %s\n", item)
			}
		case markdown.NumberedList:
			fmt.Fprintf(w, " items=%d\n", len(b.Items))
			for n, item := range b.Items {
				fmt.Fprintf(w, "       %d. %s\n", n+1, item)
			}
		default:
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "%d blocks\n", len(blocks))
	return w.Flush()
}
