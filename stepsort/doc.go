// Package stepsort sorts a caller-owned slice in place while exposing every
// intermediate state as a snapshot the caller pulls one at a time.
//
// # Engines
//
// Five engines are available, selected by [Kind]: [Bubble], [Insertion],
// [Merge], [Quick] and [Selection]. Each one decides where it stops to show
// its progress, and that yield order is part of the contract:
//
//   - Bubble stops after every swap and quits after a pass with no swaps.
//   - Insertion stops after every swap.
//   - Selection stops after every comparison of its minimum scan, then once
//     more after moving the minimum into place.
//   - Merge stops after every element placed by a merge, then once more when
//     a level is done.
//   - Quick stops after every step of the partition scan, then once more
//     after placing the pivot.
//
// # Pulling snapshots
//
//	buf := []int{3, 1, 2}
//
//	seq, err := stepsort.New(stepsort.Bubble, buf)
//	if err != nil {
//	    return err
//	}
//	defer seq.Stop()
//
//	for {
//	    snapshot, ok := seq.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(snapshot) // [1 3 2], then [1 2 3]
//	}
//
// A snapshot is the live buffer, not a copy. It is only valid until the
// next pull; clone it if it has to outlive that.
//
// # Cancellation
//
// A caller may stop pulling at any point. [Sequence.Stop] releases the
// suspended engine. At every point where a snapshot is handed out the buffer
// holds a permutation of the original values, so stopping never drops or
// duplicates an element.
//
// A Sequence is not safe for concurrent use, and nothing else may touch the
// buffer while a sort is in progress.
package stepsort
