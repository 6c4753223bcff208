package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/Abhinay9346/portfolio/internal/db"
	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/Abhinay9346/portfolio/internal/repository"
	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/spf13/cobra"
)

func MessagesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List recent contact form messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			database, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close(database)

			// Listing never notifies, so no email service is wired.
			contact := service.NewContactService(repository.NewContactRepository(database), nil)
			messages, err := contact.Recent(limit)
			if err != nil {
				return err
			}

			return printMessages(cmd.OutOrStdout(), messages)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of messages to show")
	return cmd
}

func printMessages(out io.Writer, messages []*model.ContactMessage) error {
	if len(messages) == 0 {
		_, err := fmt.Fprintln(out, "No messages.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tMESSAGE")
	for _, m := range messages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Name, m.Email, preview(m.Message, 60))
	}
	return tw.Flush()
}

// preview flattens s to one line and cuts it to max runes.
func preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
