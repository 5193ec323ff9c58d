package fptree

import (
	"fpgrowth/internal/config"
	"fpgrowth/internal/logging"
)

// NewWithConfig builds a tree the same way New does, then applies the
// loaded configuration's default thresholds and, whenever cfg.Logger.Path
// is set, initializes the shared logger from cfg.Logger (on every call,
// not only the first). It is a
// convenience constructor for hosts that keep a config.Config around;
// it opens no listener and runs no request loop of its own.
func NewWithConfig(items []string, cfg *config.Config) (*Tree, error) {
	t, err := New(items)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return t, nil
	}
	if !t.SetSupport(cfg.Mining.DefaultSupport) {
		return nil, t.lastErr
	}
	if !t.SetConfidence(cfg.Mining.DefaultConfidence) {
		return nil, t.lastErr
	}
	if cfg.Logger.Path != "" {
		if err := logging.InitLogger(
			cfg.Logger.ProjectName,
			cfg.Logger.Path,
			int(cfg.Logger.MaxAge.Hours()/24),
			int(cfg.Logger.RotationTime.Hours()),
			cfg.Logger.RotationSize,
			cfg.Logger.SentryDsn,
		); err != nil {
			return nil, err
		}
	}
	return t, nil
}
