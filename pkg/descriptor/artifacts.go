package descriptor

import (
	"io"

	"github.com/matzehuels/pomgen/pkg/packaging"
	"github.com/matzehuels/pomgen/pkg/paths"
)

// LoggingConfigFile is the name of the logging configuration installed in
// the focused module's resources.
const LoggingConfigFile = "log4j.properties"

// CreateArtifacts creates the descriptor like Create and then installs the
// provider's auxiliary files. For the root module this is the logging
// configuration. Auxiliary files are best effort: failures are logged and
// never fail the call.
func (e *Engine) CreateArtifacts(req Request) (*Result, error) {
	res, err := e.Create(req)
	if err != nil {
		return nil, err
	}
	if req.Module == "" && req.Provider.LoggingTemplate != "" {
		if path, err := e.installLoggingConfig(req.Provider); err != nil {
			e.logger.Warn("unable to install logging configuration", "err", err)
		} else {
			res.Artifacts = append(res.Artifacts, path)
		}
	}
	return res, nil
}

func (e *Engine) installLoggingConfig(p *packaging.Provider) (string, error) {
	src, err := packaging.OpenLoggingTemplate(p)
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := e.paths.ResolveFocused(paths.SrcMainResources, LoggingConfigFile)
	dst, err := e.store.OpenForWrite(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	e.logger.Info("installed logging configuration", "path", path)
	return path, nil
}
