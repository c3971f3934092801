package ruleset

import (
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Config locates a rule set file.
type Config struct {
	Path string `env:"RULESET_PATH,required"`
}

// Load reads Config from the environment (RULESET_PATH, or prefix+RULESET_PATH
// when a prefix is given) and loads the referenced file.
func Load(log *slog.Logger, prefix ...string) (validator.Fields, error) {
	var cfg Config
	p := ""
	if len(prefix) > 0 {
		p = prefix[0]
	}
	if err := config.LoadWithPrefix(&cfg, p); err != nil {
		return nil, err
	}
	return FromConfig(cfg, log)
}

// FromConfig loads the rule set cfg points to. log may be nil.
func FromConfig(cfg Config, log *slog.Logger) (validator.Fields, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	fields, err := LoadFile(cfg.Path)
	if err != nil {
		log.Error("failed to load rule set",
			logger.Component("ruleset"),
			logger.Source(cfg.Path),
			logger.Error(err),
		)
		return nil, err
	}

	log.Debug("rule set loaded",
		logger.Component("ruleset"),
		logger.Source(cfg.Path),
		slog.Int("attributes", len(fields)),
	)
	return fields, nil
}
