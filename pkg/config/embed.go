package config

import (
	"embed"
	"io/fs"
)

//go:embed embedded
var embeddedAssets embed.FS

// EmbeddedAssets returns the default-file templates the kit ships,
// rooted so logging.yml and compose.yml sit at the top level. Pass it
// as Options.AssetSource to seed from the binary instead of a package
// directory on disk.
func EmbeddedAssets() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}
