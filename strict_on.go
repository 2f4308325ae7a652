//go:build salad_strict

package salad

const defaultStrict = true
