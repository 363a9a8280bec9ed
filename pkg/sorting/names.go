package sorting

import (
	"sort"
	"strings"

	"github.com/arthur-debert/xf/pkg/errors"
)

// byName maps the --sort keywords to the primary strategy they select.
// Keyed strategies fall through to Natural on ties.
var byName = map[string]func() Strategy{
	"name":     Natural,
	"natural":  Natural,
	"path":     ByPath,
	"ext":      func() Strategy { return ByExtension(Natural()) },
	"size":     func() Strategy { return BySize(Natural()) },
	"date":     func() Strategy { return ByDate(Natural()) },
	"time":     func() Strategy { return ByTime(Natural()) },
	"datetime": func() Strategy { return ByDateTime(Natural()) },
}

// Named returns the strategy for a --sort keyword.
func Named(name string) (Strategy, error) {
	build, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown sort %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Names lists the accepted --sort keywords.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
