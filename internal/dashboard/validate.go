package dashboard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	derrors "github.com/dashcraft/cli/internal/errors"
)

// Component id validation regex.
// Ids must start with a letter and contain only letters, digits, hyphens, and
// underscores, so that the PascalCase form is a valid JavaScript identifier.
var componentIDRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateComponentID checks if a string is a valid component id.
func ValidateComponentID(id string) error {
	if id == "" {
		return derrors.NewConfigError(
			"component id is required",
			"", "components[].id",
			"Give every component a non-empty id.",
		)
	}

	if !componentIDRegex.MatchString(id) {
		return derrors.NewConfigError(
			fmt.Sprintf("invalid component id %q: must start with a letter and contain only letters, digits, hyphens, and underscores", id),
			"", "components[].id",
			"Rename the component so its id yields a valid symbol name.",
		)
	}

	return nil
}

// SymbolName converts a component id to the PascalCase symbol name used in
// the generated source stub.
// Examples: "chart" -> "Chart", "sales-table" -> "SalesTable".
func SymbolName(id string) string {
	var result strings.Builder
	capitalizeNext := true

	for _, r := range id {
		if r == '-' || r == '_' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// Validate checks the dashboard configuration before any filesystem mutation.
//
// Every component id must be a valid identifier fragment, and no two
// components may collide on the output file name or the normalized symbol
// name. The first violation is returned.
func (d *Dashboard) Validate() error {
	seenIDs := make(map[string]string, len(d.Components))
	seenSymbols := make(map[string]string, len(d.Components))

	for _, c := range d.Components {
		if err := ValidateComponentID(c.ID); err != nil {
			return err
		}

		if prev, ok := seenIDs[c.ID]; ok {
			return derrors.NewConflictError(
				fmt.Sprintf("duplicate component id %q: both would generate src/components/%s.js", c.ID, prev),
				"components[].id",
				"Component ids must be unique within a dashboard.",
			)
		}
		seenIDs[c.ID] = c.ID

		symbol := SymbolName(c.ID)
		if prev, ok := seenSymbols[symbol]; ok {
			return derrors.NewConflictError(
				fmt.Sprintf("component ids %q and %q both normalize to symbol %q", prev, c.ID, symbol),
				"components[].id",
				"Rename one of the components so their symbol names differ.",
			)
		}
		seenSymbols[symbol] = c.ID
	}

	return nil
}
