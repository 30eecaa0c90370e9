// Package consumer holds the code on the other side of a stepsort.Sequence:
// the driver loop that pulls snapshots, and the consumers that do something
// with each one (count it, record it, check it, hash it, write it, draw it).
//
// The sort engines know nothing about any of this. The operation count is
// just a Counter, owned by whoever runs the sort.
//
//	counter := &consumer.Counter{}
//	result, err := consumer.Drain(ctx, seq, []consumer.Consumer[int]{
//	    counter,
//	    consumer.NewRenderer(os.Stdout, consumer.WithTitle(seq.Kind().Title())),
//	})
package consumer
