package types

// PartitionReport tallies one partition of a corpus load.
type PartitionReport struct {
	Partition  string // partition file name
	Index      int    // position in discovery order
	Loaded     int    // rows committed
	Skipped    int    // malformed records dropped with a warning
	Unresolved int    // works left with a null author reference
	Err        error  // non-nil when the partition's transaction rolled back
}

// Failed reports whether the partition's commit was rolled back.
func (p PartitionReport) Failed() bool {
	return p.Err != nil
}

// RunReport summarizes a corpus load: one entry per partition, in order.
// A run always completes; failed partitions are tallied, not fatal.
type RunReport struct {
	Corpus     string
	Partitions []PartitionReport
}

// Succeeded counts partitions that committed.
func (r RunReport) Succeeded() int {
	n := 0
	for _, p := range r.Partitions {
		if !p.Failed() {
			n++
		}
	}
	return n
}

// Failed counts partitions that rolled back.
func (r RunReport) Failed() int {
	return len(r.Partitions) - r.Succeeded()
}

// Loaded sums committed rows across partitions.
func (r RunReport) Loaded() int {
	n := 0
	for _, p := range r.Partitions {
		n += p.Loaded
	}
	return n
}

// Skipped sums malformed records dropped across partitions.
func (r RunReport) Skipped() int {
	n := 0
	for _, p := range r.Partitions {
		n += p.Skipped
	}
	return n
}

// Unresolved sums works recorded with a null author reference.
func (r RunReport) Unresolved() int {
	n := 0
	for _, p := range r.Partitions {
		n += p.Unresolved
	}
	return n
}
