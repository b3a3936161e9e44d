//go:build !deepwatch_prod

package reactivity_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertWarned(t *testing.T, buf *bytes.Buffer, msg string) {
	t.Helper()
	assert.Contains(t, buf.String(), msg)
}
