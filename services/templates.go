package services

import (
	"ingress-errors/config"

	"github.com/spf13/afero"
)

// NewTemplates returns a read-only filesystem rooted at the templates
// directory. Paths resolving outside of the directory fail to open.
func NewTemplates(cfg *config.Config) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.TemplatesDir))
}
