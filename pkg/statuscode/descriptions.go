//go:build !ua_nostatusdescriptions

package statuscode

import (
	"fmt"
	"sync"
)

var registryTable = sync.OnceValue(func() *Table {
	t, err := NewTable(registryEntries())
	if err != nil {
		panic(fmt.Sprintf("invalid generated status code registry: %v", err))
	}
	return t
})

// DescriptionsEnabled reports whether the registry table is compiled in.
const DescriptionsEnabled = true

// Descriptions returns the registry table. The table is built on first use
// and shared read-only afterwards.
func Descriptions() (*Table, bool) {
	return registryTable(), true
}
