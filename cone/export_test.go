// White-box instrumentation for tests: the extreme-ray caching contract is
// stated in terms of "the expensive primitive did not run again", so the
// run counter needs a test-only window.

package cone

// DualDescriptionRuns reports how many dual-description conversions this
// cone has performed. Test-only.
func (c *Cone) DualDescriptionRuns() int { return c.ddRuns }
