//go:build !salad_strict

package salad

// defaultStrict is the strict mode of loaders built without WithStrict.
// Build with -tags salad_strict to turn it on.
const defaultStrict = false
