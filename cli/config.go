package cli

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/finsync"
	"gopkg.in/yaml.v3"
)

// loadConfig decodes the YAML client options stored at URL.
func loadConfig(ctx context.Context, fs afs.Service, URL string, options *finsync.Options) error {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, options); err != nil {
		return fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return nil
}
