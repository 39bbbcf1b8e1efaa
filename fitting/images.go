package fitting

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// LoadImage is the default reference loader. It handles the three reference
// shapes that appear in sessions: base64 data URLs (inline face captures),
// http(s) URLs, and local file paths from the upload directory.
func LoadImage(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "data:") {
		idx := strings.Index(ref, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URL")
		}
		return base64.StdEncoding.DecodeString(ref[idx+1:])
	}

	if strings.HasPrefix(ref, "http") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, err
		}
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch image, status: %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	return os.ReadFile(ref)
}
