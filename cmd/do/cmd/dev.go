package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"
)

func DevCmd() *cobra.Command {
	var appPort, proxyPort string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run the server under air with live reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(appPort, proxyPort)
		},
	}
	cmd.Flags().StringVar(&appPort, "app-port", "8090", "Port the server listens on")
	cmd.Flags().StringVar(&proxyPort, "proxy-port", "8080", "Port of the air live reload proxy")
	return cmd
}

func runDev(appPort, proxyPort string) error {
	airPath, err := exec.LookPath("air")
	if err != nil {
		fmt.Println("Missing binary: air")
		fmt.Println("Install with:")
		fmt.Println("  go install github.com/air-verse/air@latest")
		return fmt.Errorf("air not found")
	}

	fmt.Println("Building bin/do...")
	build := exec.Command("go", "build", "-o", "bin/do", "./cmd/do")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		return fmt.Errorf("failed to build do: %w", err)
	}

	// Posts are embedded, so markdown edits need a rebuild too.
	airArgs := []string{
		"air",
		"-c", "/dev/null",
		"-root", ".",
		"-build.cmd", "./bin/do gen && go build -o ./tmp/main ./cmd/server",
		"-build.bin", "./tmp/main",
		"-build.delay", "100",
		"-build.exclude_dir", "bin,node_modules,tmp,data,_examples",
		"-build.exclude_regex", "_templ.go$|_test.go$|output\\.css$",
		"-build.include_ext", "go,templ,css,js,md,sql",
		"-build.kill_delay", "500ms",
		"-build.send_interrupt", "true",
		"-proxy.enabled", "true",
		"-proxy.proxy_port", proxyPort,
		"-proxy.app_port", appPort,
	}

	env := append(os.Environ(), "PORT="+appPort)
	if os.Getenv("APP_ENV") == "" {
		env = append(env, "APP_ENV=development")
	}
	if os.Getenv("APP_URL") == "" {
		env = append(env, "APP_URL=http://localhost:"+proxyPort)
	}

	return syscall.Exec(airPath, airArgs, env)
}
