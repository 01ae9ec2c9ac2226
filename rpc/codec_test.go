package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestCodec_WireFieldNames(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	data, err := jsonCodec{}.Marshal(&CreateOrderRequest{
		Title:      "T",
		Type:       OrderTypeMobileApp,
		Price:      10.5,
		Deadline:   timestamppb.New(deadline),
		ClientName: "C",
		UserID:     "u",
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"clientName":"C"`)
	assert.Contains(t, string(data), `"userId":"u"`)
	assert.Contains(t, string(data), `"type":1`)

	var decoded CreateOrderRequest
	require.NoError(t, jsonCodec{}.Unmarshal(data, &decoded))
	assert.Equal(t, OrderTypeMobileApp, decoded.Type)
	assert.True(t, deadline.Equal(decoded.Deadline.AsTime()))
}

func TestCodec_EmptyPayload(t *testing.T) {
	var req DeleteOrderRequest
	assert.NoError(t, jsonCodec{}.Unmarshal(nil, &req))
	assert.Zero(t, req.ID)

	assert.Error(t, jsonCodec{}.Unmarshal([]byte("{"), &req))
}
