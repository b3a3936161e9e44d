//go:build deepwatch_prod

package reactivity_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// production builds drop developer warnings.
func assertWarned(t *testing.T, buf *bytes.Buffer, _ string) {
	t.Helper()
	assert.Empty(t, buf.String())
}
