package quickfill

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Sets []ValueSet `yaml:"sets"`
}

// LoadCatalog reads a YAML catalog file:
//
//	sets:
//	  - name: Severity
//	    values: [Critical, High, Medium, Low]
//	    aliases: {Urgent: Critical}
//	    headers: [Sev]
func LoadCatalog(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseCatalog(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func ParseCatalog(b []byte) (Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Sets) == 0 {
		return nil, fmt.Errorf("catalog has no sets")
	}
	for i, s := range f.Sets {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("set %d: missing name", i)
		}
		if len(s.Values) == 0 {
			return nil, fmt.Errorf("set %q: no values", s.Name)
		}
		for alias, target := range s.Aliases {
			if _, ok := NormalizeToSet(target, s.Values, nil); !ok {
				return nil, fmt.Errorf("set %q: alias %q targets unknown value %q", s.Name, alias, target)
			}
		}
	}
	return Catalog(f.Sets), nil
}
