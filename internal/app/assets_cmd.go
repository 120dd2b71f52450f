// Where: cli/internal/app/assets_cmd.go
// What: Demo asset bundle commands.
// Why: Let users fetch the public demo data the demo scenario mounts.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/skyfield-robotics/navbox/cli/internal/assets"
	"github.com/skyfield-robotics/navbox/cli/internal/config"
	"github.com/skyfield-robotics/navbox/cli/internal/ui"
)

func runAssetsPull(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cfg := config.LoadGlobalConfigOrDefault()
	bucket, region := assets.Source(cfg.Assets.Bucket, cfg.Assets.Region)

	destDir, err := deps.Assets.DestDir()
	if err != nil {
		return exitWithError(out, err)
	}

	ctx := context.Background()
	fetcher, err := deps.Assets.NewFetcher(ctx, region, "", "")
	if err != nil {
		return exitWithError(out, err)
	}

	console.Info(fmt.Sprintf("Pulling demo assets from s3://%s (%s)", bucket, region))

	puller := assets.Puller{Fetcher: fetcher}
	written, err := puller.Pull(ctx, bucket, assets.DefaultKeys, destDir)
	if err != nil {
		return exitWithError(out, err)
	}

	for _, path := range written {
		console.ItemPlain(path)
	}
	console.Success(fmt.Sprintf("Pulled %d asset(s) into %s", len(written), destDir))
	return 0
}
