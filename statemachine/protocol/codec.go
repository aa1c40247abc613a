package protocol

import (
	"io"

	"github.com/jrife/statemux/utils/lvstream"
)

// EncodeRequest serializes a ServiceRequest to a single protobuf message,
// with no length prefix.
func EncodeRequest(request *ServiceRequest) ([]byte, error) {
	return request.Marshal()
}

// DecodeRequest parses a ServiceRequest from bytes previously produced by
// EncodeRequest. On failure it returns the underlying protobuf error; the
// manager maps that onto statemachine.ErrDecode.
func DecodeRequest(data []byte) (*ServiceRequest, error) {
	request := &ServiceRequest{}

	if err := request.Unmarshal(data); err != nil {
		return nil, err
	}

	return request, nil
}

// EncodeResponse serializes a ServiceResponse.
func EncodeResponse(response *ServiceResponse) ([]byte, error) {
	return response.Marshal()
}

// DecodeResponse parses a ServiceResponse from bytes previously produced by
// EncodeResponse.
func DecodeResponse(data []byte) (*ServiceResponse, error) {
	response := &ServiceResponse{}

	if err := response.Unmarshal(data); err != nil {
		return nil, err
	}

	return response, nil
}

// WriteServiceId appends a length-delimited ServiceId record to output,
// the framing the snapshot stream uses throughout: a length-delimited
// ServiceId record followed immediately by that service's own
// (self-delimiting) snapshot bytes.
func WriteServiceId(output io.Writer, id ServiceId) error {
	data, err := id.Marshal()
	if err != nil {
		return err
	}

	return lvstream.WriteOne(output, data)
}

// ReadServiceId reads one length-delimited ServiceId record previously
// written by WriteServiceId, leaving input positioned at the first byte of
// the following service's own snapshot payload.
func ReadServiceId(input io.Reader) (ServiceId, error) {
	var id ServiceId

	record, err := lvstream.ReadOne(input)

	if err != nil {
		return id, err
	}

	if err := id.Unmarshal(record); err != nil {
		return id, err
	}

	return id, nil
}
