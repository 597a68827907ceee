package caseset

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a short stable identifier for a case set, so a report
// can be traced back to the exact cases that produced it. The hash chains
// every field of every case with NUL separators; order matters, since the
// harness iterates cases in order.
func Fingerprint(cases []*Case) string {
	d := xxhash.New()
	for _, c := range cases {
		d.WriteString(c.Name)
		d.Write([]byte{0})
		d.WriteString(c.Text)
		d.Write([]byte{0})
		d.WriteString(c.Pattern)
		d.Write([]byte{0})
		d.WriteString(c.Expected)
		d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
