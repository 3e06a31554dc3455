//go:build width4

package layout

// FixedWidth is the component count of Fixed.
const FixedWidth = 4
