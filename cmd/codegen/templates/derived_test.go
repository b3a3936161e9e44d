package templates_test

import (
	"go/format"
	"strings"
	"testing"

	"github.com/delaneyj/deepwatch/cmd/codegen/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedGen(t *testing.T) {
	src := templates.DerivedGen(3)

	assert.True(t, strings.HasPrefix(src, "// Code generated by cmd/codegen. DO NOT EDIT."))
	for _, fn := range []string{"Derived1[", "Derived2[", "Derived3[", "Watch1[", "Watch2[", "Watch3["} {
		assert.Contains(t, src, "func "+fn)
	}
	assert.NotContains(t, src, "Derived4")
	assert.Contains(t, src, "func Derived3[T0, T1, T2, O any](")
	assert.Contains(t, src, "return get(v0, v1, v2)")

	// the output must be valid Go
	_, err := format.Source([]byte(src))
	require.NoError(t, err)
}

func TestDerivedGenZero(t *testing.T) {
	src := templates.DerivedGen(0)
	assert.NotContains(t, src, "func ")
	_, err := format.Source([]byte(src))
	require.NoError(t, err)
}
