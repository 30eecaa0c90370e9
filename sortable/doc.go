// Package sortable provides wrapper types for primitive values that order
// themselves, and the glue to feed them to the step-by-step sort engines.
//
// # Overview
//
// The [Sortable] interface extends [github.com/amp-labs/stepsort/compare.Comparable]
// with a LessThan method. Any type implementing it can be sorted with
// [github.com/amp-labs/stepsort/stepsort.NewSortable]:
//
//	buf := []sortable.String{"pear", "apple", "fig"}
//	seq, err := stepsort.NewSortable(stepsort.Insertion, buf)
//	if err != nil {
//	    return err
//	}
//	for snapshot := range seq.All() {
//	    fmt.Println(snapshot)
//	}
//
// Ready-made wrappers exist for [Int], [Byte] and [String].
//
// # Custom types
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// LessThan must be a strict total order. The engines never check this; a
// broken order gives a permutation that is not sorted.
package sortable
