package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/nextep/internal/adapter"
	"github.com/mmcdole/nextep/internal/adapter/source"
	"github.com/mmcdole/nextep/internal/domain"
	"github.com/mmcdole/nextep/internal/service"
	"github.com/mmcdole/nextep/internal/tui/styles"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

// verifyQuery is searched once to check a new API key
const verifyQuery = "Inception"

func newSetupCmd(opts *rootOptions) *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Store your OMDb API key in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(opts, skipVerify)
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save the key without a test search")

	return cmd
}

func runSetup(opts *rootOptions, skipVerify bool) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer := setupLogger(cfg)
	defer closer.Close()

	fmt.Println()
	fmt.Println("nextep setup")
	fmt.Println("━━━━━━━━━━━━")
	fmt.Println("Get a free key at https://www.omdbapi.com/apikey.aspx")
	fmt.Println()

	apiKey, err := promptAPIKey()
	if err != nil {
		return err
	}
	cfg.OMDb.APIKey = apiKey

	if !skipVerify {
		client, err := source.NewClientFromConfig(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create OMDb client: %w", err)
		}
		if err := verifyWithSpinner(service.NewCatalogService(client, logger)); err != nil {
			fmt.Printf("✗ Key check failed: %v\n", err)
			return fmt.Errorf("API key was not saved")
		}
		fmt.Println("✓ Key accepted")
	}

	path := opts.cfgFile
	if path == "" {
		path = adapter.DefaultConfigFile()
	}
	if err := adapter.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Printf("✓ Configuration saved to %s\n", path)
	fmt.Println()
	fmt.Println("Run nextep to start exploring.")

	return nil
}

// promptAPIKey reads the key without echo when stdin is a terminal
func promptAPIKey() (string, error) {
	fmt.Print("OMDb API key: ")

	var input string
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println() // Add newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		input = string(b)
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		input = line
	}

	key := strings.TrimSpace(input)
	if key == "" {
		return "", fmt.Errorf("API key cannot be empty")
	}
	return key, nil
}

// verifyWithSpinner runs a test search while animating a spinner.
// A "not found" answer still proves the key works.
func verifyWithSpinner(catalog *service.CatalogService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)
	go func() {
		_, err := catalog.Search(ctx, domain.SearchQuery{Text: verifyQuery, Page: 1})
		resultCh <- err
	}()

	frame := 0
	fmt.Printf("\r%s Checking key...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			return keyCheckResult(err)

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking key...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("key check timed out")
		}
	}
}

// keyCheckResult decides whether a test search proved the key valid
func keyCheckResult(err error) error {
	if err == nil {
		return nil
	}
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) && strings.Contains(strings.ToLower(upstreamErr.Message), "not found") {
		return nil
	}
	return err
}
