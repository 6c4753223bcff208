package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

const (
	cssInput  = "assets/css/input.css"
	cssOutput = "assets/css/output.css"
	viewsDir  = "internal/ui"
)

type generator struct {
	name   string
	bin    string
	args   []string
	skipFn func() bool
}

func GenCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Run code generators (templ, tailwind) in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even when outputs are up to date")
	return cmd
}

func runGen(force bool) error {
	var missing []string
	for _, bin := range []string{"templ", "tailwindcss"} {
		if _, err := exec.LookPath(bin); err != nil {
			missing = append(missing, bin)
		}
	}
	if len(missing) > 0 {
		fmt.Println("Missing binaries:", missing)
		fmt.Println("Install with:")
		fmt.Println("  go install github.com/a-h/templ/cmd/templ@latest")
		fmt.Println("  # tailwindcss: https://tailwindcss.com/blog/standalone-cli")
		return fmt.Errorf("missing required binaries: %v", missing)
	}

	generators := []generator{
		{
			name:   "templ",
			bin:    "templ",
			args:   []string{"generate", "-path", viewsDir},
			skipFn: templUpToDate,
		},
		{
			name:   "tailwindcss",
			bin:    "tailwindcss",
			args:   []string{"-i", cssInput, "-o", cssOutput, "--minify"},
			skipFn: tailwindUpToDate,
		},
	}

	start := time.Now()
	var wg sync.WaitGroup
	errCh := make(chan error, len(generators))

	for _, g := range generators {
		wg.Add(1)
		go func(g generator) {
			defer wg.Done()

			if !force && g.skipFn() {
				fmt.Printf("[%s] skipped\n", g.name)
				return
			}

			genStart := time.Now()
			run := exec.Command(g.bin, g.args...)
			run.Stdout = os.Stdout
			run.Stderr = os.Stderr
			if err := run.Run(); err != nil {
				errCh <- fmt.Errorf("%s: %w", g.name, err)
				return
			}
			fmt.Printf("[%s] done (%s)\n", g.name, time.Since(genStart).Round(time.Millisecond))
		}(g)
	}

	wg.Wait()
	close(errCh)

	var failed bool
	for err := range errCh {
		fmt.Println("error:", err)
		failed = true
	}
	if failed {
		return fmt.Errorf("generation failed")
	}

	fmt.Printf("done (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// templUpToDate reports whether every .templ file has a newer _templ.go.
func templUpToDate() bool {
	for _, src := range filesWithSuffix(viewsDir, ".templ") {
		if !isUpToDate(generatedName(src), []string{src}) {
			return false
		}
	}
	return true
}

// tailwindUpToDate checks output.css against everything tailwind scans for
// class names.
func tailwindUpToDate() bool {
	inputs := []string{cssInput}
	inputs = append(inputs, filesWithSuffix(viewsDir, ".templ")...)
	inputs = append(inputs, filesWithSuffix(viewsDir, ".go")...)
	inputs = append(inputs, filesWithSuffix("assets/js", ".js")...)
	return isUpToDate(cssOutput, inputs)
}

func generatedName(templFile string) string {
	return strings.TrimSuffix(templFile, ".templ") + "_templ.go"
}

func filesWithSuffix(root, suffix string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasSuffix(path, suffix) && !strings.HasSuffix(path, "_test.go") {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// isUpToDate reports whether output exists and is newer than every input.
// Missing inputs are ignored.
func isUpToDate(output string, inputs []string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return false
	}

	for _, input := range inputs {
		inInfo, err := os.Stat(input)
		if err != nil {
			continue
		}
		if inInfo.ModTime().After(outInfo.ModTime()) {
			return false
		}
	}
	return true
}
