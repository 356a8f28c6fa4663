package download

import (
	"context"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// Downloader runs one download request to completion.
type Downloader interface {
	// Run validates req, runs the external tool and forwards each output line to
	// onStatus. Validation failures are returned as error; process failures are
	// reported through a Failed outcome.
	Run(ctx context.Context, req model.DownloadRequest, onStatus func(string)) (model.Outcome, error)
}
