//go:build width64

package layout

// FixedWidth is the component count of Fixed.
const FixedWidth = 64
