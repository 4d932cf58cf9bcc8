package catalog

import "embed"

//go:embed locales/*.ftl
var localeFS embed.FS

// LoadEmbedded loads the default tables shipped with the binary.
func (c *Catalog) LoadEmbedded() error {
	return c.LoadFS(localeFS, "locales")
}
