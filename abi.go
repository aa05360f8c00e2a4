package cairo

// ABIVersion is the cairo release whose public header the enumerations
// in this package mirror. Codes added by later releases decode as
// unknown values.
const ABIVersion = "1.12"

// EnumABI describes one mirrored C enumeration.
type EnumABI struct {
	CType  string     `yaml:"c_type"`
	GoType string     `yaml:"go_type"`
	Values []ValueABI `yaml:"values"`
}

// ValueABI is one enumerator with its discriminant.
type ValueABI struct {
	CName string `yaml:"c_name"`
	Name  string `yaml:"name"`
	Value int32  `yaml:"value"`
	// Synthetic values exist only on the Go side and have no
	// counterpart in cairo.h.
	Synthetic bool `yaml:"synthetic,omitempty"`
}

// ABI returns every mirrored enumeration in header order. The result is
// freshly allocated on each call.
func ABI() []EnumABI {
	return []EnumABI{
		statuses.abi(),
		antialiases.abi(),
		fillRules.abi(),
		lineCaps.abi(),
		lineJoins.abi(),
		operators.abi(),
		pathDataTypes.abi(),
		contents.abi(),
		extends.abi(),
		filters.abi(),
		patternTypes.abi(),
		fontSlants.abi(),
		fontWeights.abi(),
		textClusterFlags.abi(),
		fontTypes.abi(),
		subpixelOrders.abi(),
		hintStyles.abi(),
		hintMetrics.abi(),
	}
}
