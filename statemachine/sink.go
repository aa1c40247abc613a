package statemachine

// Sink is the push-based terminal for a streaming apply. A producer calls
// Next zero or more times, in order, then calls exactly one of Complete or
// Error. No call may follow Complete or Error.
//
// This mirrors io.atomix.utils.stream.StreamHandler from the system this
// module's contract was distilled from: a callback sink rather than a pull
// iterator, since the manager must be able to re-frame and forward each
// chunk as it arrives without buffering the whole response.
type Sink interface {
	// Next delivers one chunk of the stream.
	Next(chunk []byte) error
	// Complete signals that no further chunks will be produced.
	Complete()
	// Error signals that the stream ended abnormally; no further chunks
	// will be produced.
	Error(err error)
}

// funcSink adapts three closures into a Sink. Useful for wrapping one sink
// in another without declaring a named type at every call site.
type funcSink struct {
	next     func([]byte) error
	complete func()
	error    func(error)
}

func (sink *funcSink) Next(chunk []byte) error {
	return sink.next(chunk)
}

func (sink *funcSink) Complete() {
	sink.complete()
}

func (sink *funcSink) Error(err error) {
	sink.error(err)
}

// NewSink builds a Sink from three closures.
func NewSink(next func([]byte) error, complete func(), onError func(error)) Sink {
	return &funcSink{next: next, complete: complete, error: onError}
}
