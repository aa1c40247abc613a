// Package client is a thin, non-reflective client library for the
// counter, map, and lock primitives, built directly on envelope bytes the
// way transport/clients built typed client handles directly on the
// generated RPC stubs.
package client

import (
	"context"
	"fmt"

	"github.com/jrife/statemux/primitives/atomicmap"
	"github.com/jrife/statemux/primitives/counter"
	"github.com/jrife/statemux/primitives/lock"
	"github.com/jrife/statemux/statemachine/protocol"
	"github.com/jrife/statemux/transport"
	"github.com/jrife/statemux/utils/uuid"
)

// NewHolderToken generates a unique holder identity for acquiring a lock,
// for callers that don't already have a stable identity of their own.
func NewHolderToken() string {
	return uuid.MustUUID()
}

// executor is the subset of transport.Client (and transport.Server) this
// package needs: it works equally well wrapping a remote connection or an
// in-process transport.NewServer adapter, which has no Close to call.
type executor interface {
	ExecuteCommand(ctx context.Context, envelope []byte) ([]byte, error)
	ExecuteCommandStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error
	ExecuteQuery(ctx context.Context, envelope []byte) ([]byte, error)
	ExecuteQueryStream(ctx context.Context, envelope []byte, onChunk func([]byte) error) error
}

// Client is a handle onto a running multiplexer. It never interprets
// response payloads itself; that belongs to the per-primitive handles
// returned by Counter, Map and Lock.
type Client struct {
	transport executor
}

// New wraps a transport.Client as a Client.
func New(t transport.Client) *Client {
	return &Client{transport: t}
}

// NewLocal wraps a transport.Server directly, for callers running a
// multiplexer in-process with no network transport in between.
func NewLocal(s transport.Server) *Client {
	return &Client{transport: s}
}

// Create explicitly creates the named instance of typeName. Most callers
// do not need this: a command against a missing instance creates it
// implicitly.
func (c *Client) Create(ctx context.Context, typeName, name string) error {
	return c.request(ctx, protocol.NewCreateRequest(id(typeName, name)))
}

// Delete removes the named instance.
func (c *Client) Delete(ctx context.Context, typeName, name string) error {
	return c.request(ctx, protocol.NewDeleteRequest(id(typeName, name)))
}

// Services lists the ServiceIds of every instance whose type matches
// typeFilter, or every instance if typeFilter is empty.
func (c *Client) Services(ctx context.Context, typeFilter string) ([]protocol.ServiceId, error) {
	return c.ServicesLimit(ctx, typeFilter, 0)
}

// ServicesLimit is Services capped at the first limit matches. A
// non-positive limit is unbounded.
func (c *Client) ServicesLimit(ctx context.Context, typeFilter string, limit int32) ([]protocol.ServiceId, error) {
	data, err := protocol.EncodeRequest(protocol.NewMetadataRequestLimit(typeFilter, limit))

	if err != nil {
		return nil, err
	}

	respData, err := c.transport.ExecuteQuery(ctx, data)

	if err != nil {
		return nil, err
	}

	resp, err := protocol.DecodeResponse(respData)

	if err != nil {
		return nil, err
	}

	if resp.Metadata == nil {
		return nil, fmt.Errorf("client: expected a metadata response, got kind %s", resp.Kind)
	}

	return resp.Metadata.Services, nil
}

// Counter returns a handle onto the named counter instance.
func (c *Client) Counter(name string) *CounterHandle {
	return &CounterHandle{client: c, id: id("counter", name)}
}

// Map returns a handle onto the named map instance.
func (c *Client) Map(name string) *MapHandle {
	return &MapHandle{client: c, id: id("map", name)}
}

// Lock returns a handle onto the named lock instance.
func (c *Client) Lock(name string) *LockHandle {
	return &LockHandle{client: c, id: id("lock", name)}
}

func id(typeName, name string) protocol.ServiceId {
	return protocol.ServiceId{Type: typeName, Name: name}
}

func (c *Client) request(ctx context.Context, req *protocol.ServiceRequest) error {
	data, err := protocol.EncodeRequest(req)

	if err != nil {
		return err
	}

	_, err = c.transport.ExecuteCommand(ctx, data)

	return err
}

func (c *Client) command(ctx context.Context, svcId protocol.ServiceId, payload []byte) ([]byte, error) {
	data, err := protocol.EncodeRequest(protocol.NewCommandRequest(svcId, payload))

	if err != nil {
		return nil, err
	}

	respData, err := c.transport.ExecuteCommand(ctx, data)

	if err != nil {
		return nil, err
	}

	return commandPayload(respData)
}

func (c *Client) query(ctx context.Context, svcId protocol.ServiceId, payload []byte) ([]byte, error) {
	data, err := protocol.EncodeRequest(protocol.NewQueryRequest(svcId, payload))

	if err != nil {
		return nil, err
	}

	respData, err := c.transport.ExecuteQuery(ctx, data)

	if err != nil {
		return nil, err
	}

	return queryPayload(respData)
}

func commandPayload(data []byte) ([]byte, error) {
	resp, err := protocol.DecodeResponse(data)

	if err != nil {
		return nil, err
	}

	if resp.Command == nil {
		return nil, fmt.Errorf("client: expected a command response, got kind %s", resp.Kind)
	}

	return resp.Command.Payload, nil
}

func queryPayload(data []byte) ([]byte, error) {
	resp, err := protocol.DecodeResponse(data)

	if err != nil {
		return nil, err
	}

	if resp.Query == nil {
		return nil, fmt.Errorf("client: expected a query response, got kind %s", resp.Kind)
	}

	return resp.Query.Payload, nil
}

// CounterHandle operates on one named counter instance.
type CounterHandle struct {
	client *Client
	id     protocol.ServiceId
}

// Set replaces the counter's value and returns its previous value.
func (h *CounterHandle) Set(ctx context.Context, value int64) (int64, error) {
	req := &counter.CounterRequest{Op: counter.OpSet, Set: &counter.SetRequest{Value: value}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return 0, err
	}

	return resp.Set.PreviousValue, nil
}

// Get reads the counter's current value.
func (h *CounterHandle) Get(ctx context.Context) (int64, error) {
	req := &counter.CounterRequest{Op: counter.OpGet, Get: &counter.GetRequest{}}

	resp, err := h.query(ctx, req)

	if err != nil {
		return 0, err
	}

	return resp.Get.Value, nil
}

// CheckAndSet sets the counter to update if its current value is expect.
func (h *CounterHandle) CheckAndSet(ctx context.Context, expect, update int64) (bool, error) {
	req := &counter.CounterRequest{Op: counter.OpCheckAndSet, CheckAndSet: &counter.CheckAndSetRequest{Expect: expect, Update: update}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return false, err
	}

	return resp.CheckAndSet.Succeeded, nil
}

// Increment adds delta to the counter, or one if delta is zero.
func (h *CounterHandle) Increment(ctx context.Context, delta int64) (int64, error) {
	req := &counter.CounterRequest{Op: counter.OpIncrement, Increment: &counter.IncrementRequest{Delta: delta}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return 0, err
	}

	return resp.Increment.NextValue, nil
}

// Decrement subtracts delta from the counter, or one if delta is zero.
func (h *CounterHandle) Decrement(ctx context.Context, delta int64) (int64, error) {
	req := &counter.CounterRequest{Op: counter.OpDecrement, Decrement: &counter.DecrementRequest{Delta: delta}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return 0, err
	}

	return resp.Decrement.NextValue, nil
}

func (h *CounterHandle) apply(ctx context.Context, req *counter.CounterRequest) (*counter.CounterResponse, error) {
	payload, err := req.Marshal()

	if err != nil {
		return nil, err
	}

	respPayload, err := h.client.command(ctx, h.id, payload)

	if err != nil {
		return nil, err
	}

	resp := &counter.CounterResponse{}

	if err := resp.Unmarshal(respPayload); err != nil {
		return nil, err
	}

	return resp, nil
}

func (h *CounterHandle) query(ctx context.Context, req *counter.CounterRequest) (*counter.CounterResponse, error) {
	payload, err := req.Marshal()

	if err != nil {
		return nil, err
	}

	respPayload, err := h.client.query(ctx, h.id, payload)

	if err != nil {
		return nil, err
	}

	resp := &counter.CounterResponse{}

	if err := resp.Unmarshal(respPayload); err != nil {
		return nil, err
	}

	return resp, nil
}

// MapHandle operates on one named map instance.
type MapHandle struct {
	client *Client
	id     protocol.ServiceId
}

// Put inserts or overwrites the value at key, returning the value it
// replaced, if any.
func (h *MapHandle) Put(ctx context.Context, key string, value []byte) ([]byte, bool, error) {
	req := &atomicmap.MapRequest{Op: atomicmap.OpPut, Put: &atomicmap.PutRequest{Key: key, Value: value}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return nil, false, err
	}

	return resp.Put.PreviousValue, resp.Put.Existed, nil
}

// Get reads the value at key.
func (h *MapHandle) Get(ctx context.Context, key string) ([]byte, bool, error) {
	req := &atomicmap.MapRequest{Op: atomicmap.OpGet, Get: &atomicmap.GetRequest{Key: key}}

	resp, err := h.query(ctx, req)

	if err != nil {
		return nil, false, err
	}

	return resp.Get.Value, resp.Get.Existed, nil
}

// Remove deletes the entry at key, returning the value it held, if any.
func (h *MapHandle) Remove(ctx context.Context, key string) ([]byte, bool, error) {
	req := &atomicmap.MapRequest{Op: atomicmap.OpRemove, Remove: &atomicmap.RemoveRequest{Key: key}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return nil, false, err
	}

	return resp.Remove.PreviousValue, resp.Remove.Existed, nil
}

// Clear empties the map.
func (h *MapHandle) Clear(ctx context.Context) error {
	req := &atomicmap.MapRequest{Op: atomicmap.OpClear, Clear: &atomicmap.ClearRequest{}}

	_, err := h.apply(ctx, req)

	return err
}

// Size reads the number of entries in the map.
func (h *MapHandle) Size(ctx context.Context) (int64, error) {
	req := &atomicmap.MapRequest{Op: atomicmap.OpSize, Size: &atomicmap.SizeRequest{}}

	resp, err := h.query(ctx, req)

	if err != nil {
		return 0, err
	}

	return resp.Size.Size, nil
}

// Entries streams every entry in the map, in ascending key order,
// invoking onEntry once per entry.
func (h *MapHandle) Entries(ctx context.Context, onEntry func(key string, value []byte) error) error {
	req := &atomicmap.MapRequest{Op: atomicmap.OpEntries, Entries: &atomicmap.EntriesRequest{}}

	payload, err := req.Marshal()

	if err != nil {
		return err
	}

	data, err := protocol.EncodeRequest(protocol.NewQueryRequest(h.id, payload))

	if err != nil {
		return err
	}

	return h.client.transport.ExecuteQueryStream(ctx, data, func(chunk []byte) error {
		chunkPayload, err := queryPayload(chunk)

		if err != nil {
			return err
		}

		entry := &atomicmap.Entry{}

		if err := entry.Unmarshal(chunkPayload); err != nil {
			return err
		}

		return onEntry(entry.Key, entry.Value)
	})
}

func (h *MapHandle) apply(ctx context.Context, req *atomicmap.MapRequest) (*atomicmap.MapResponse, error) {
	payload, err := req.Marshal()

	if err != nil {
		return nil, err
	}

	respPayload, err := h.client.command(ctx, h.id, payload)

	if err != nil {
		return nil, err
	}

	resp := &atomicmap.MapResponse{}

	if err := resp.Unmarshal(respPayload); err != nil {
		return nil, err
	}

	return resp, nil
}

func (h *MapHandle) query(ctx context.Context, req *atomicmap.MapRequest) (*atomicmap.MapResponse, error) {
	payload, err := req.Marshal()

	if err != nil {
		return nil, err
	}

	respPayload, err := h.client.query(ctx, h.id, payload)

	if err != nil {
		return nil, err
	}

	resp := &atomicmap.MapResponse{}

	if err := resp.Unmarshal(respPayload); err != nil {
		return nil, err
	}

	return resp, nil
}

// LockHandle operates on one named lock instance.
type LockHandle struct {
	client *Client
	id     protocol.ServiceId
}

// Acquire attempts to acquire the lock for holder, returning the fencing
// token it was granted if successful.
func (h *LockHandle) Acquire(ctx context.Context, holder string) (acquired bool, fence uint64, err error) {
	req := &lock.LockPrimitiveRequest{Op: lock.OpLock, Lock: &lock.LockRequest{Holder: holder}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return false, 0, err
	}

	return resp.Lock.Acquired, resp.Lock.Fence, nil
}

// Release releases the lock on behalf of holder.
func (h *LockHandle) Release(ctx context.Context, holder string) (bool, error) {
	req := &lock.LockPrimitiveRequest{Op: lock.OpUnlock, Unlock: &lock.UnlockRequest{Holder: holder}}

	resp, err := h.apply(ctx, req)

	if err != nil {
		return false, err
	}

	return resp.Unlock.Released, nil
}

// IsLocked reads the lock's current holder, fence and locked state.
func (h *LockHandle) IsLocked(ctx context.Context) (locked bool, holder string, fence uint64, err error) {
	req := &lock.LockPrimitiveRequest{Op: lock.OpIsLocked, IsLocked: &lock.IsLockedRequest{}}

	resp, err := h.query(ctx, req)

	if err != nil {
		return false, "", 0, err
	}

	return resp.IsLocked.Locked, resp.IsLocked.Holder, resp.IsLocked.Fence, nil
}

func (h *LockHandle) apply(ctx context.Context, req *lock.LockPrimitiveRequest) (*lock.LockPrimitiveResponse, error) {
	payload, err := req.Marshal()

	if err != nil {
		return nil, err
	}

	respPayload, err := h.client.command(ctx, h.id, payload)

	if err != nil {
		return nil, err
	}

	resp := &lock.LockPrimitiveResponse{}

	if err := resp.Unmarshal(respPayload); err != nil {
		return nil, err
	}

	return resp, nil
}

func (h *LockHandle) query(ctx context.Context, req *lock.LockPrimitiveRequest) (*lock.LockPrimitiveResponse, error) {
	payload, err := req.Marshal()

	if err != nil {
		return nil, err
	}

	respPayload, err := h.client.query(ctx, h.id, payload)

	if err != nil {
		return nil, err
	}

	resp := &lock.LockPrimitiveResponse{}

	if err := resp.Unmarshal(respPayload); err != nil {
		return nil, err
	}

	return resp, nil
}
