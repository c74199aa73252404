package ingest

import (
	"context"
	"time"

	"github.com/AngelCh415/DASH_GO/internal/utils"
)

// GetJSONWithRetry fetches and decodes url into dst, retrying transient
// failures with exponential backoff plus jitter.
func GetJSONWithRetry(ctx context.Context, c HTTPClient, url string, dst any) error {
	b := utils.NewBackoff(100*time.Millisecond, 150*time.Millisecond, 2)
	return b.Do(func(int) error {
		return getJSON(ctx, c, url, dst)
	})
}
