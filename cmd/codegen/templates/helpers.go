package templates

import (
	"strconv"
	"strings"
)

// numbered lists prefix0, prefix1, ... prefix(n-1), comma separated. It
// names the type parameters and locals of the generated combinators.
func numbered(prefix string, n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}
	return strings.Join(names, ", ")
}
