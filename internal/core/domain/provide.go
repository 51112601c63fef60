package domain

import (
	"bufio"
	"regexp"
	"strings"
)

// provideRe matches a provide declaration: exactly one quoted dotted
// identifier terminated by a statement separator. Anything else on the line
// disqualifies it.
var provideRe = regexp.MustCompile(`^goog\.provide\(['"]([A-Za-z_$][\w$.]*)['"]\);\s*$`)

// ScanProvides walks emitted compiler output line by line and returns the
// namespace identities the output declares, in file order. Lines that are not
// well-formed provide declarations are skipped; scanning never fails, it only
// returns fewer or zero identities.
func ScanProvides(output string) []NamespaceID {
	var ids []NamespaceID

	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		m := provideRe.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		ids = append(ids, ParseProvidedName(m[1]))
	}

	return ids
}
