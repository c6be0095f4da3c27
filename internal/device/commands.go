// SPDX-License-Identifier: Apache-2.0

package device

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/associo/tallysync/internal/service"
)

// record parses the capture parameters and appends one visit to the
// pending queue.
func (a *App) record(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("record", flag.ContinueOnError)
	questionnaireID := flags.Int64("questionnaire", 0, "questionnaire ID")
	siteID := flags.Int64("site", 0, "site ID")
	localityID := flags.Int64("locality", 0, "locality ID of the visitor origin (optional)")
	adults := flags.Int("adults", 0, "number of adult visitors")
	children := flags.Int("children", 0, "number of child visitors")
	occurredAt := flags.String("at", "", "visit timestamp override, RFC 3339 (operator mode only)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	input := service.RecordInput{
		QuestionnaireID: *questionnaireID,
		SiteID:          *siteID,
		AdultCount:      *adults,
		ChildCount:      *children,
	}
	if *localityID != 0 {
		input.LocalityID = localityID
	}
	if *occurredAt != "" {
		at, err := time.Parse(time.RFC3339, *occurredAt)
		if err != nil {
			return fmt.Errorf("invalid -at value: %w", err)
		}
		input.OccurredAt = &at
	}

	recorded, err := a.services.Visit.Record(ctx, input)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	fmt.Printf("recorded visit %s (%d visitors)\n", recorded.LocalID, recorded.TotalCount())

	// Best effort: a freshly recorded visit is worth an immediate upload
	// attempt; an offline device just keeps it queued.
	if _, err := a.services.Sync.SyncOnce(ctx); err != nil &&
		!errors.Is(err, service.ErrOffline) && !errors.Is(err, service.ErrSyncInProgress) {
		a.logger.Warn().Err(err).Msg("post-record sync attempt failed")
	}

	return nil
}

// syncOnce forces one sync attempt and prints its outcome.
func (a *App) syncOnce(ctx context.Context) error {
	stats, err := a.services.Sync.SyncOnce(ctx)
	switch {
	case errors.Is(err, service.ErrOffline):
		fmt.Println("server unreachable, records stay queued")
		return nil
	case err != nil:
		return fmt.Errorf("sync: %w", err)
	}

	fmt.Printf("submitted=%d acked=%d created=%d quarantined=%d remaining=%d\n",
		stats.Submitted, stats.Acked, stats.Created, stats.Quarantined, stats.Remaining)
	return nil
}

// showConfig fetches and prints the campaign configuration for this
// device's credential.
func (a *App) showConfig(ctx context.Context) error {
	campaignConfig, err := a.server.FetchConfig(ctx)
	if err != nil {
		return fmt.Errorf("fetch campaign config: %w", err)
	}
	return printJSON(campaignConfig)
}

// searchLocalities runs a merged local+remote locality search.
func (a *App) searchLocalities(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("localities", flag.ContinueOnError)
	query := flags.String("q", "", "search query (name substring or postal-code prefix)")
	limit := flags.Int("limit", 0, "maximum number of results")
	if err := flags.Parse(args); err != nil {
		return err
	}

	localities, err := a.services.RefCache.Search(ctx, *query, *limit)
	if err != nil {
		return fmt.Errorf("search localities: %w", err)
	}
	return printJSON(localities)
}

// inspect prints one of the local record inventories.
func (a *App) inspect(ctx context.Context, inventory string) error {
	var (
		data any
		err  error
	)

	switch inventory {
	case "pending":
		data, err = a.services.Visit.Pending(ctx)
	case "history":
		data, err = a.services.Visit.History(ctx)
	case "quarantine":
		data, err = a.services.Visit.Quarantined(ctx)
	}
	if err != nil {
		return fmt.Errorf("inspect %s: %w", inventory, err)
	}

	return printJSON(data)
}

func printJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
