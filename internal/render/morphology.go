package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hanacaraka/aksara/internal/aksara"
)

// MorphologySentinel is shown when the result carries no analyzed words.
const MorphologySentinel = "No morphology data available"

// MorphologyBlocks renders one block per analyzed word: identity line,
// dictionary status, and, when present, the root plus enumerated morphemes
// and features. Feature keys are sorted; the wire format is a JSON object,
// so no insertion order survives anyway.
func MorphologyBlocks(words []aksara.WordAnalysis) string {
	if len(words) == 0 {
		return MorphologySentinel
	}

	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString("\n")
		}

		status := "not in dictionary"
		if w.InDictionary {
			status = "in dictionary"
		}
		fmt.Fprintf(&b, "Word %d: %s\n", i+1, Sanitize(w.Word))
		fmt.Fprintf(&b, "  POS:     %s\n", Sanitize(w.POS))
		fmt.Fprintf(&b, "  Meaning: %s\n", Sanitize(w.Meaning))
		fmt.Fprintf(&b, "  Status:  %s\n", status)

		if w.Morphology == nil {
			continue
		}

		fmt.Fprintf(&b, "  Root:    %s\n", Sanitize(w.Morphology.Root))
		if len(w.Morphology.Morphemes) > 0 {
			b.WriteString("  Morphemes:\n")
			for j, m := range w.Morphology.Morphemes {
				if m.Meaning != "" {
					fmt.Fprintf(&b, "    %d. %s '%s' (%s)\n", j+1, m.Type, Sanitize(m.Value), Sanitize(m.Meaning))
				} else {
					fmt.Fprintf(&b, "    %d. %s '%s'\n", j+1, m.Type, Sanitize(m.Value))
				}
			}
		}
		if len(w.Morphology.Features) > 0 {
			b.WriteString("  Features:\n")
			keys := make([]string, 0, len(w.Morphology.Features))
			for k := range w.Morphology.Features {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for j, k := range keys {
				fmt.Fprintf(&b, "    %d. %s = %s\n", j+1, Sanitize(k), Sanitize(w.Morphology.Features[k]))
			}
		}
	}
	return b.String()
}
