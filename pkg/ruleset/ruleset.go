package ruleset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// definition is the mapping form of one attribute.
type definition struct {
	Name     string            `yaml:"name"`
	Rules    yaml.Node         `yaml:"rules"`
	Messages map[string]string `yaml:"messages"`
}

// Parse reads a YAML document mapping attribute names to rule chains.
// Attribute order in the document is kept. Each attribute is one of:
//
//	first_name: required|string|max:255
//	tags: [nullable, array, "max:5"]
//	age:
//	  name: Age
//	  rules: numeric|min:18
//	  messages:
//	    min: ":attribute must be an adult age."
func Parse(content []byte) (validator.Fields, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyRuleset
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected mapping at document root, got %s", ErrInvalidRuleset, kindName(root.Kind))
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptyRuleset
	}

	fields := make(validator.Fields, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		attribute := strings.TrimSpace(keyNode.Value)
		if attribute == "" {
			return nil, fmt.Errorf("%w: empty attribute name at line %d", ErrInvalidRuleset, keyNode.Line)
		}

		reg, err := parseAttribute(valueNode)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", attribute, err)
		}
		fields = append(fields, validator.Attr(attribute, reg))
	}

	return fields, nil
}

// LoadFile reads and parses a rule set file.
func LoadFile(path string) (validator.Fields, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	fields, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}

func parseAttribute(node *yaml.Node) (*validator.Registration, error) {
	switch node.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		return parseRules(node, "", nil)
	case yaml.MappingNode:
		var def definition
		if err := node.Decode(&def); err != nil {
			return nil, errors.Join(ErrInvalidRuleset, err)
		}
		if def.Rules.Kind == 0 {
			return nil, fmt.Errorf("%w: missing rules", ErrInvalidRuleset)
		}
		return parseRules(&def.Rules, def.Name, def.Messages)
	default:
		return nil, fmt.Errorf("%w: unexpected %s", ErrInvalidRuleset, kindName(node.Kind))
	}
}

func parseRules(node *yaml.Node, name string, messages map[string]string) (*validator.Registration, error) {
	var (
		reg *validator.Registration
		err error
	)

	switch node.Kind {
	case yaml.ScalarNode:
		reg, err = validator.Parse(node.Value, messages)
	case yaml.SequenceNode:
		tokens := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: rule at line %d must be a string", ErrInvalidRuleset, item.Line)
			}
			tokens = append(tokens, item.Value)
		}
		reg, err = validator.ParseTokens(tokens, messages)
	default:
		return nil, fmt.Errorf("%w: rules must be a string or a list, got %s", ErrInvalidRuleset, kindName(node.Kind))
	}
	if err != nil {
		return nil, err
	}

	if name != "" {
		reg.SetName(name)
	}
	return reg, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty node"
	}
}
