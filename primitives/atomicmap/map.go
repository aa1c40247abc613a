package atomicmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/jrife/statemux/statemachine"
	"github.com/jrife/statemux/statemachine/service"
	"github.com/jrife/statemux/utils/lvstream"
)

// Map is an ordered string -> []byte map, its entries kept in a
// github.com/emirpasic/gods treemap the same way storage/kv's fake map
// keeps its entries, so iteration order is deterministic across replicas.
type Map struct {
	entries *treemap.Map
}

// New builds an empty Map. Suitable for use as a
// statemachine/service.Type.
func New() service.PrimitiveService {
	return &Map{entries: treemap.NewWith(func(a, b interface{}) int {
		return strings.Compare(a.(string), b.(string))
	})}
}

var _ service.PrimitiveService = (*Map)(nil)

// Init has nothing to set up; the empty treemap is a valid map.
func (m *Map) Init(ctx statemachine.Context) error {
	return nil
}

func decodeRequest(payload []byte) (*MapRequest, error) {
	request := &MapRequest{}

	if err := request.Unmarshal(payload); err != nil {
		return nil, statemachine.ErrDecode
	}

	return request, nil
}

// ApplyCommand handles put, remove and clear -- the map's mutating
// operations.
func (m *Map) ApplyCommand(ctx statemachine.Context, command []byte) ([]byte, error) {
	request, err := decodeRequest(command)

	if err != nil {
		return nil, err
	}

	switch request.Op {
	case OpPut:
		previous, existed := m.entries.Get(request.Put.Key)
		m.entries.Put(request.Put.Key, request.Put.Value)

		response := &PutResponse{Existed: existed}

		if existed {
			response.PreviousValue = previous.([]byte)
		}

		return (&MapResponse{Op: OpPut, Put: response}).Marshal()
	case OpRemove:
		previous, existed := m.entries.Get(request.Remove.Key)
		m.entries.Remove(request.Remove.Key)

		response := &RemoveResponse{Existed: existed}

		if existed {
			response.PreviousValue = previous.([]byte)
		}

		return (&MapResponse{Op: OpRemove, Remove: response}).Marshal()
	case OpClear:
		m.entries.Clear()

		return (&MapResponse{Op: OpClear, Clear: &ClearResponse{}}).Marshal()
	default:
		return nil, fmt.Errorf("atomicmap: %d is not a valid command operation", request.Op)
	}
}

// ApplyCommandStream has no streaming commands.
func (m *Map) ApplyCommandStream(ctx statemachine.Context, command []byte, sink statemachine.Sink) error {
	result, err := m.ApplyCommand(ctx, command)

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

// ApplyQuery handles get and size, the map's non-streaming read
// operations.
func (m *Map) ApplyQuery(ctx statemachine.Context, query []byte) ([]byte, error) {
	request, err := decodeRequest(query)

	if err != nil {
		return nil, err
	}

	switch request.Op {
	case OpGet:
		value, existed := m.entries.Get(request.Get.Key)

		response := &GetResponse{Existed: existed}

		if existed {
			response.Value = value.([]byte)
		}

		return (&MapResponse{Op: OpGet, Get: response}).Marshal()
	case OpSize:
		return (&MapResponse{Op: OpSize, Size: &SizeResponse{Size: int64(m.entries.Size())}}).Marshal()
	default:
		return nil, fmt.Errorf("atomicmap: %d is not a valid query operation", request.Op)
	}
}

// ApplyQueryStream handles the map's only streaming read, Entries: every
// key/value pair in ascending key order, one Entry per sink chunk.
func (m *Map) ApplyQueryStream(ctx statemachine.Context, query []byte, sink statemachine.Sink) error {
	request, err := decodeRequest(query)

	if err != nil {
		sink.Error(err)

		return nil
	}

	if request.Op != OpEntries {
		sink.Error(fmt.Errorf("atomicmap: %d is not a valid streaming query operation", request.Op))

		return nil
	}

	iter := m.entries.Iterator()
	iter.Begin()

	for iter.Next() {
		entry := &Entry{Key: iter.Key().(string), Value: iter.Value().([]byte)}

		data, err := entry.Marshal()

		if err != nil {
			sink.Error(err)

			return nil
		}

		if err := sink.Next(data); err != nil {
			return err
		}
	}

	sink.Complete()

	return nil
}

// Snapshot writes every entry as a length-delimited Entry record, in
// ascending key order, terminated by a record with an empty key -- the
// same end-of-sequence sentinel storage/kv's snapshot encoding uses for
// bucket boundaries.
func (m *Map) Snapshot(output io.Writer) error {
	iter := m.entries.Iterator()
	iter.Begin()

	for iter.Next() {
		entry := &Entry{Key: iter.Key().(string), Value: iter.Value().([]byte)}

		data, err := entry.Marshal()

		if err != nil {
			return err
		}

		if err := lvstream.WriteOne(output, data); err != nil {
			return err
		}
	}

	terminator, err := (&Entry{}).Marshal()

	if err != nil {
		return err
	}

	return lvstream.WriteOne(output, terminator)
}

// Restore replaces the map's contents from a snapshot previously produced
// by Snapshot.
func (m *Map) Restore(input io.Reader) error {
	m.entries.Clear()

	for {
		data, err := lvstream.ReadOne(input)

		if err != nil {
			return err
		}

		var entry Entry

		if err := entry.Unmarshal(data); err != nil {
			return err
		}

		if entry.Key == "" {
			return nil
		}

		m.entries.Put(entry.Key, entry.Value)
	}
}

// CanDelete reports true unconditionally: the map never needs the
// commands that produced its current state to stay in the log once it has
// been snapshotted.
func (m *Map) CanDelete(index uint64) bool {
	return true
}
