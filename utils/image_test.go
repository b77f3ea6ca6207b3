package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEchoedImagePlainBase64(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01}
	decoded, err := DecodeEchoedImage(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeEchoedImageDataURL(t *testing.T) {
	raw := []byte("fake-jpeg-bytes")
	value := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
	decoded, err := DecodeEchoedImage(value)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeEchoedImageEmpty(t *testing.T) {
	decoded, err := DecodeEchoedImage("")
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeEchoedImageGarbage(t *testing.T) {
	_, err := DecodeEchoedImage("!!not base64!!")
	assert.Error(t, err)
}
