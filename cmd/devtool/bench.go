package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const benchPackages = "./internal/..."

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run and manage benchmarks: bench [run|save|baseline|compare]"
}

func (c *BenchCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.runAll()
	}

	switch args[0] {
	case "run":
		return c.runAll()
	case "save":
		return c.runAndSave(fmt.Sprintf("%s.txt", time.Now().Format("20060102-150405")))
	case "baseline":
		return c.runAndSave("baseline.txt")
	case "compare":
		return c.compare()
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func benchCmd() *exec.Cmd {
	return exec.Command("go", "test", "-run=^$", "-bench=.", "-benchmem", "-count=5", benchPackages)
}

func (c *BenchCommand) runAll() error {
	PrintHeader("Running all benchmarks...")
	cmd := benchCmd()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (c *BenchCommand) runAndSave(filename string) error {
	PrintHeader("Running benchmarks and saving results...")
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(resultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	cmd := benchCmd()
	cmd.Stdout = io.MultiWriter(os.Stdout, f)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("benchmark execution failed: %w", err)
	}

	PrintSuccess("Results saved to %s", path)
	return nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(resultsDir, "baseline.txt")
	if _, err := os.Stat(baseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}

	if err := c.runAndSave("current.txt"); err != nil {
		return err
	}

	if _, err := exec.LookPath("benchstat"); err != nil {
		PrintWarning("benchstat not installed. Install with: go install golang.org/x/perf/cmd/benchstat@latest")
		return nil
	}

	cmd := exec.Command("benchstat", baseline, filepath.Join(resultsDir, "current.txt"))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
