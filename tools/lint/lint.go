package main

import (
	"fmt"
	"os"
	"os/exec"
)

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v failed: %v", name, args, err)
	}
	return nil
}

func main() {
	failed := false

	steps := []struct {
		label string
		name  string
		args  []string
	}{
		{"go fmt", "go", []string{"fmt", "./..."}},
		{"go vet", "go", []string{"vet", "./..."}},
		{"golangci-lint", "golangci-lint", []string{"run", "./..."}},
		{"staticcheck install", "go", []string{"install", "honnef.co/go/tools/cmd/staticcheck@latest"}},
		{"staticcheck", "staticcheck", []string{"./..."}},
	}

	for _, s := range steps {
		fmt.Printf("==> %s\n", s.label)
		if err := run(s.name, s.args...); err != nil {
			fmt.Println(err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("lint clean")
}
