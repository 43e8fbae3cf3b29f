package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var releasesURL = "https://api.github.com/repos/dverney/quizine/releases/latest"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("quizine", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}
		if version == "(devel)" {
			fmt.Println("Development build; skipping update check.")
			return nil
		}

		latest, err := latestRelease(cmd.Context())
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}

		if semver.Compare(latest, version) > 0 {
			fmt.Printf("Update available: %s\n", latest)
		} else {
			fmt.Println("Already up to date.")
		}
		return nil
	},
}

// latestRelease fetches the newest release tag from GitHub.
func latestRelease(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from release API", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}

	if !semver.IsValid(release.TagName) {
		return "", fmt.Errorf("release tag %q is not a valid version", release.TagName)
	}
	return release.TagName, nil
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
