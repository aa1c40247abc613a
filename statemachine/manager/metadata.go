package manager

import (
	"github.com/emirpasic/gods/maps/treemap"
	"go.uber.org/zap"

	"github.com/jrife/statemux/statemachine/protocol"
	"github.com/jrife/statemux/utils/stream"
)

// idIterator adapts a treemap.Iterator over (ServiceId, *instance.Instance)
// pairs into a utils/stream.Stream of ServiceId, so the type filter applied
// to a metadata request can reuse stream.Filter instead of a bespoke loop.
type idIterator struct {
	iter treemap.Iterator
}

func (s *idIterator) Next() bool {
	return s.iter.Next()
}

func (s *idIterator) Value() interface{} {
	return s.iter.Key().(protocol.ServiceId)
}

func (s *idIterator) Error() error {
	return nil
}

// listServices returns, in ascending (Type, Name) order, the ServiceIds of
// every hosted instance whose Type matches typeFilter, capped at the first
// limit matches. An empty typeFilter matches every instance; a non-positive
// limit is unbounded.
func listServices(services *treemap.Map, typeFilter string, limit int32, logger *zap.Logger) []protocol.ServiceId {
	iter := services.Iterator()
	iter.Begin()

	var s stream.Stream = &idIterator{iter: iter}

	if typeFilter != "" {
		s = stream.Filter(func(value interface{}) bool {
			return value.(protocol.ServiceId).Type == typeFilter
		})(s)
	}

	if limit > 0 {
		s = stream.Limit(int(limit))(s)
	}

	s = stream.Log(logger)(s)

	ids := []protocol.ServiceId{}

	for s.Next() {
		ids = append(ids, s.Value().(protocol.ServiceId))
	}

	return ids
}
