package ruleset

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse rule set YAML")
	ErrFailedToReadFile  = errors.New("failed to read rule set file")
	ErrInvalidRuleset    = errors.New("invalid rule set")
	ErrEmptyRuleset      = errors.New("rule set defines no attributes")
)
