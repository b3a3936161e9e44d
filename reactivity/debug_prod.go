//go:build deepwatch_prod

package reactivity

const devMode = false
