package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_PlainStruct(t *testing.T) {
	c := jsonCodec{}
	st := int32(103)
	b, err := c.Marshal(&UpdateProfileRequest{UserId: "u1", Status: &st})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"u1","status":103}`, string(b))

	var got UpdateProfileRequest
	require.NoError(t, c.Unmarshal(b, &got))
	require.NotNil(t, got.Status)
	assert.Equal(t, int32(103), *got.Status)
	assert.Nil(t, got.Sex)
}

func TestCodec_ProtoMessage(t *testing.T) {
	c := jsonCodec{}
	b, err := c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
	require.NoError(t, c.Unmarshal(b, &emptypb.Empty{}))
}

func TestCodec_UnmarshalError(t *testing.T) {
	var resp CreateEntryResponse
	err := jsonCodec{}.Unmarshal([]byte("{"), &resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json codec")
}
