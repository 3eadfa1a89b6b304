//go:build ua_nostatusdescriptions

package statuscode

// DescriptionsEnabled reports whether the registry table is compiled in.
const DescriptionsEnabled = false

// Descriptions reports that no registry table is available.
func Descriptions() (*Table, bool) {
	return nil, false
}
