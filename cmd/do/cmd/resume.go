package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Abhinay9346/portfolio/internal/storage"
	"github.com/spf13/cobra"
)

func ResumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Manage the resume served at /resume",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "upload <file>",
			Short: "Upload a resume PDF to the configured bucket under RESUME_KEY",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := loadConfig()
				store, err := storage.New(cfg)
				if err != nil {
					return err
				}
				if store == nil {
					return fmt.Errorf("storage not configured: set S3_BUCKET, or copy the file to %s", cfg.ResumePath)
				}

				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open resume: %w", err)
				}
				defer f.Close()

				err = store.Save(cmd.Context(), cfg.ResumeKey, f, contentType(args[0]))
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s as %s\n", args[0], cfg.ResumeKey)
				return nil
			},
		},
		&cobra.Command{
			Use:   "url",
			Short: "Print a presigned download URL for the stored resume",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := loadConfig()
				store, err := storage.New(cfg)
				if err != nil {
					return err
				}
				if store == nil {
					return fmt.Errorf("storage not configured: set S3_BUCKET")
				}

				url, err := store.PresignedURL(cmd.Context(), cfg.ResumeKey, cfg.S3PresignExpiry)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			},
		},
	)

	return cmd
}

func contentType(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
