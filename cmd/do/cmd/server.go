package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"
)

type serverOptions struct {
	host string
	port string
	key  string
	unit string
	dir  string
	yes  bool
}

// ServerCmd manages the systemd service running the site on the deploy host.
func ServerCmd() *cobra.Command {
	opts := &serverOptions{}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Deploy and inspect the production server over SSH",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.host == "" {
				return fmt.Errorf("--host is required or set SSH_HOST env")
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.host, "host", os.Getenv("SSH_HOST"), "SSH host (user@host) or set SSH_HOST env")
	flags.StringVar(&opts.port, "port", "22", "SSH port")
	flags.StringVar(&opts.key, "key", "", "Path to SSH private key (default: ssh-agent, then ~/.ssh/id_ed25519)")
	flags.StringVar(&opts.unit, "unit", "portfolio", "systemd unit running the server")
	flags.StringVar(&opts.dir, "dir", "/opt/portfolio", "Install directory on the host")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Skip confirmation prompts")

	cmd.AddCommand(
		serverStatusCmd(opts),
		serverLogsCmd(opts),
		serverRestartCmd(opts),
		serverDeployCmd(opts),
	)
	return cmd
}

type unitStatus struct {
	Unit        string `json:"unit"`
	Load        string `json:"load"`
	Active      string `json:"active"`
	Sub         string `json:"sub"`
	Description string `json:"description"`
}

func serverStatusCmd(opts *serverOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the service state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(opts, func(client *ssh.Client) error {
				unit := serviceUnit(opts.unit)
				output, err := runRemote(client, "systemctl list-units --type=service --all --no-pager --output=json "+shellQuote(unit))
				if err != nil {
					return fmt.Errorf("systemctl: %w", err)
				}

				status, err := findUnit(output, unit)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-8s %-10s %s\n", "UNIT", "ACTIVE", "SUB", "DESCRIPTION")
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-8s %-10s %s\n", status.Unit, status.Active, status.Sub, status.Description)
				return nil
			})
		},
	}
}

func serverLogsCmd(opts *serverOptions) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent service logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(opts, func(client *ssh.Client) error {
				journal := fmt.Sprintf("journalctl -u %s -n %d --no-pager", shellQuote(serviceUnit(opts.unit)), lines)
				return streamRemote(client, journal, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "Number of log lines")
	return cmd
}

func serverRestartCmd(opts *serverOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Restart the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := serviceUnit(opts.unit)
			if !opts.yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Restart "+unit+" on "+opts.host+"?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			return withClient(opts, func(client *ssh.Client) error {
				output, err := runRemote(client, "systemctl restart "+shellQuote(unit))
				if err != nil {
					return fmt.Errorf("restart %s: %w: %s", unit, err, strings.TrimSpace(output))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restarted %s.\n", unit)
				return nil
			})
		},
	}
}

func serverDeployCmd(opts *serverOptions) *cobra.Command {
	var arch string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build a linux binary, upload it and restart the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			unit := serviceUnit(opts.unit)
			if !opts.yes && !confirm(cmd.InOrStdin(), out, "Deploy to "+opts.host+" and restart "+unit+"?") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			if err := runGen(false); err != nil {
				return err
			}

			local := "bin/portfolio-linux-" + arch
			fmt.Fprintf(out, "Building %s...\n", local)
			err := runLocal([]string{"GOOS=linux", "GOARCH=" + arch, "CGO_ENABLED=0"},
				"go", "build", "-trimpath", "-ldflags=-s -w", "-o", local, "./cmd/server")
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}

			return withClient(opts, func(client *ssh.Client) error {
				binary := path.Join(opts.dir, "portfolio")
				staged := binary + ".new"

				fmt.Fprintf(out, "Uploading to %s...\n", staged)
				if err := upload(client, local, staged, 0o755); err != nil {
					return err
				}

				fmt.Fprintf(out, "Restarting %s...\n", unit)
				swap := fmt.Sprintf("mv %s %s && systemctl restart %s", shellQuote(staged), shellQuote(binary), shellQuote(unit))
				output, err := runRemote(client, swap)
				if err != nil {
					return fmt.Errorf("activate release: %w: %s", err, strings.TrimSpace(output))
				}

				fmt.Fprintln(out, "Deployed.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&arch, "arch", "amd64", "GOARCH of the host")
	return cmd
}

func withClient(opts *serverOptions, fn func(*ssh.Client) error) error {
	client, err := sshConnect(opts.host, opts.port, opts.key)
	if err != nil {
		return fmt.Errorf("ssh connect: %w", err)
	}
	defer client.Close()
	return fn(client)
}

func serviceUnit(name string) string {
	if strings.HasSuffix(name, ".service") {
		return name
	}
	return name + ".service"
}

// findUnit picks unit out of `systemctl list-units --output=json`.
func findUnit(output, unit string) (unitStatus, error) {
	var units []unitStatus
	if err := json.Unmarshal([]byte(output), &units); err != nil {
		return unitStatus{}, fmt.Errorf("parse systemctl output: %w", err)
	}

	for _, u := range units {
		if u.Unit == unit {
			return u, nil
		}
	}
	return unitStatus{}, fmt.Errorf("unit %s not found on host", unit)
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s Type 'yes' to confirm: ", question)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
