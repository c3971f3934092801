// Package ruleset loads validator rule chains from YAML documents.
//
// A rule set maps attribute names to pipe-separated rule strings, token lists,
// or mappings with a display name and per-rule message overrides. Document
// order is preserved and becomes the evaluation order of the resulting
// validator.Fields.
//
//	email: required|email
//	nickname: [nullable, string, "regex:^[a-z0-9_|]+$"]
//	age:
//	  name: Age
//	  rules: nullable|numeric|min:18
//	  messages:
//	    min: ":attribute must be at least 18."
//
// Load reads RULESET_PATH through the config package.
package ruleset
