package ssechunk

import (
	"context"
	_ "embed"
	"io"
	"strings"

	"github.com/aretw0/ssechunk/pkg/fixture"
	"github.com/aretw0/ssechunk/pkg/runner"
)

//go:embed VERSION
var rawVersion string

// Version is the released version of ssechunk.
var Version = strings.TrimSpace(rawVersion)

// Stream writes text to w as an SSE stream of content events of at most
// chunkSize code points, followed by a done event.
func Stream(ctx context.Context, w io.Writer, text string, chunkSize int) error {
	fx := fixture.Fixture{
		Text:      text,
		ChunkSize: chunkSize,
		Preview:   fixture.DefaultPreview,
		DoneLimit: fixture.DefaultDoneLimit,
	}
	return runner.NewRunner().Stream(ctx, fx, w)
}
