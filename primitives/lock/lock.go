package lock

import (
	"fmt"
	"io"

	"github.com/jrife/statemux/statemachine"
	"github.com/jrife/statemux/statemachine/service"
	"github.com/jrife/statemux/utils/lvstream"
)

// Lock is a single-holder mutual exclusion primitive. Unlike a real
// mutex it never blocks: a Lock request against a held lock fails
// immediately rather than queuing, since the manager's apply path may
// never suspend (only a hosted service's own streaming methods may).
type Lock struct {
	holder string
	fence  uint64
	locked bool
}

// New builds an unlocked Lock. Suitable for use as a
// statemachine/service.Type.
func New() service.PrimitiveService {
	return &Lock{}
}

var _ service.PrimitiveService = (*Lock)(nil)

// Init has nothing to set up; the zero value is unlocked.
func (l *Lock) Init(ctx statemachine.Context) error {
	return nil
}

func decodeRequest(payload []byte) (*LockPrimitiveRequest, error) {
	request := &LockPrimitiveRequest{}

	if err := request.Unmarshal(payload); err != nil {
		return nil, statemachine.ErrDecode
	}

	return request, nil
}

// ApplyCommand handles lock and unlock, the lock's mutating operations.
func (l *Lock) ApplyCommand(ctx statemachine.Context, command []byte) ([]byte, error) {
	request, err := decodeRequest(command)

	if err != nil {
		return nil, err
	}

	switch request.Op {
	case OpLock:
		holder := request.Lock.Holder

		if l.locked && l.holder != holder {
			return (&LockPrimitiveResponse{Op: OpLock, Lock: &LockResponse{Acquired: false}}).Marshal()
		}

		if !l.locked {
			l.fence++
		}

		l.locked = true
		l.holder = holder

		return (&LockPrimitiveResponse{Op: OpLock, Lock: &LockResponse{Acquired: true, Fence: l.fence}}).Marshal()
	case OpUnlock:
		holder := request.Unlock.Holder
		released := l.locked && l.holder == holder

		if released {
			l.locked = false
			l.holder = ""
		}

		return (&LockPrimitiveResponse{Op: OpUnlock, Unlock: &UnlockResponse{Released: released}}).Marshal()
	default:
		return nil, fmt.Errorf("lock: %d is not a valid command operation", request.Op)
	}
}

// ApplyCommandStream has no streaming commands.
func (l *Lock) ApplyCommandStream(ctx statemachine.Context, command []byte, sink statemachine.Sink) error {
	result, err := l.ApplyCommand(ctx, command)

	if err != nil {
		sink.Error(err)

		return nil
	}

	if err := sink.Next(result); err != nil {
		return err
	}

	sink.Complete()

	return nil
}

// ApplyQuery handles is-locked, the lock's only query.
func (l *Lock) ApplyQuery(ctx statemachine.Context, query []byte) ([]byte, error) {
	request, err := decodeRequest(query)

	if err != nil {
		return nil, err
	}

	if request.Op != OpIsLocked {
		return nil, fmt.Errorf("lock: %d is not a valid query operation", request.Op)
	}

	response := &IsLockedResponse{Locked: l.locked}

	if l.locked {
		response.Holder = l.holder
		response.Fence = l.fence
	}

	return (&LockPrimitiveResponse{Op: OpIsLocked, IsLocked: response}).Marshal()
}

// ApplyQueryStream has no streaming queries.
func (l *Lock) ApplyQueryStream(ctx statemachine.Context, query []byte, sink statemachine.Sink) error {
	result, err := l.ApplyQuery(ctx, query)

	if err != nil {
		sink.Error(err)

		return nil
	}

	if err := sink.Next(result); err != nil {
		return err
	}

	sink.Complete()

	return nil
}

// Snapshot writes the lock's holder, fence and locked state as a single
// length-delimited record.
func (l *Lock) Snapshot(output io.Writer) error {
	data, err := (&Snapshot{Holder: l.holder, Fence: l.fence, Locked: l.locked}).Marshal()

	if err != nil {
		return err
	}

	return lvstream.WriteOne(output, data)
}

// Restore replaces the lock's state from a snapshot previously produced
// by Snapshot.
func (l *Lock) Restore(input io.Reader) error {
	data, err := lvstream.ReadOne(input)

	if err != nil {
		return err
	}

	var snapshot Snapshot

	if err := snapshot.Unmarshal(data); err != nil {
		return err
	}

	l.holder = snapshot.Holder
	l.fence = snapshot.Fence
	l.locked = snapshot.Locked

	return nil
}

// CanDelete reports true unconditionally: a lock never needs the commands
// that produced its current state to stay in the log once it has been
// snapshotted.
func (l *Lock) CanDelete(index uint64) bool {
	return true
}
