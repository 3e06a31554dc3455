//go:build !width4 && !width64

package layout

// FixedWidth is the component count of Fixed. Select another value with the
// width4 or width64 build tags.
const FixedWidth = 16
