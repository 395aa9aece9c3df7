// Command chartlens reviews patient document batches: highlight
// segmentation, timeline projection and milestone tracking.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/chartlens-cli/internal/adapters/driven/config/file"
	milestonefile "github.com/custodia-labs/chartlens-cli/internal/adapters/driven/milestones/file"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driven/records/memory"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/chartlens-cli/internal/connectors/recordapi"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chartlens-cli/internal/core/services"
	"github.com/custodia-labs/chartlens-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chartlens: loading config: %v\n", err)
		os.Exit(1)
	}

	records := newRecordClient(configStore)
	milestones := newMilestoneSource(configStore)

	reviewService := services.NewReviewService(records, milestones)
	settingsService := services.NewSettingsService(configStore)

	cli.SetVersion(version)
	cli.SetServices(reviewService, settingsService)
	cli.SetBackendSelector(func(apiURL string, demo bool) {
		var override driven.RecordClient
		switch {
		case demo:
			override = memory.NewDemoClient()
		case apiURL != "":
			override = recordapi.NewClient(apiURL)
		default:
			return
		}
		cli.SetServices(services.NewReviewService(override, milestones), settingsService)
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRecordClient returns the configured record API client, or the bundled
// demo data set when no API base URL is configured.
func newRecordClient(configStore driven.ConfigStore) driven.RecordClient {
	baseURL := configStore.GetString("api.base_url")
	if baseURL == "" {
		logger.Debug("no api.base_url configured, using demo records")
		return memory.NewDemoClient()
	}
	return recordapi.NewClient(baseURL)
}

// newMilestoneSource returns the milestone file source. The path comes from
// config, falling back to milestones.json next to the config file.
func newMilestoneSource(configStore driven.ConfigStore) driven.MilestoneSource {
	path := configStore.GetString("timeline.milestones_path")
	if path == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil
		}
		path = filepath.Join(home, ".chartlens", "milestones.json")
	}
	return milestonefile.NewSource(path)
}
