//go:build !deepwatch_prod

package reactivity

// devMode enables debugger events and developer warnings. Build with the
// deepwatch_prod tag to compile both out.
const devMode = true
