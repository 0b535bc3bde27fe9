package util

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 红色像素 PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8DwHwAFBQIAX8jx0gAAAABJRU5ErkJggg=="

func TestSanitizeWord(t *testing.T) {
	assert.Equal(t, "dragon", SanitizeWord("Dragon"))
	assert.Equal(t, "icecream2", SanitizeWord("Ice-Cream 2!"))
	assert.Equal(t, "", SanitizeWord("¡¿ !"))
	assert.Equal(t, "nio", SanitizeWord("niño"))
}

func TestDecodeDataURI(t *testing.T) {
	fromURI, err := DecodeDataURI("data:image/png;base64,"+tinyPNG, 1024)
	require.NoError(t, err)
	raw, err := DecodeDataURI(tinyPNG, 1024)
	require.NoError(t, err)
	assert.Equal(t, fromURI, raw)

	_, err = DecodeDataURI("data:image/png,"+tinyPNG, 1024)
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, err = DecodeDataURI("not base64 at all!", 1024)
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, err = DecodeDataURI("", 1024)
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, err = DecodeDataURI(tinyPNG, 10)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDecodeAndValidate(t *testing.T) {
	data, mimeType, err := DecodeAndValidate("data:image/png;base64,"+tinyPNG, 1024, AllowedImageTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.NotEmpty(t, data)

	text := base64.StdEncoding.EncodeToString([]byte("hello world, not an image"))
	_, mimeType, err = DecodeAndValidate(text, 1024, AllowedImageTypes)
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.True(t, strings.HasPrefix(mimeType, "text/plain"))
}

func TestValidateMimeTypeWebm(t *testing.T) {
	webmHeader := []byte{0x1A, 0x45, 0xDF, 0xA3, 0x01, 0x00, 0x00, 0x00}
	mimeType, err := ValidateMimeType(bytes.NewReader(webmHeader), AllowedVideoTypes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(mimeType, MimeVideo))
}

func TestSignVideoStreamArgs(t *testing.T) {
	args := SignVideoStream("raw.webm", "sign_loop.mp4").GetArgs()

	assert.Contains(t, args, "scale=720:720:force_original_aspect_ratio=decrease,pad=720:720:(ow-iw)/2:(oh-ih)/2")
	assert.Contains(t, args, "-an")
	assert.Contains(t, args, "libx264")
	assert.Contains(t, args, "+faststart")
	assert.Contains(t, args, "-y")
	assert.Contains(t, args, "sign_loop.mp4")
}

func TestParseProbeOutput(t *testing.T) {
	out := `{"streams":[{"codec_type":"audio"},{"codec_type":"video","width":720,"height":720}],
		"format":{"duration":"2.500000","size":"12345","format_name":"mov,mp4,m4a"}}`

	info, err := parseProbeOutput(out, 1)
	require.NoError(t, err)
	assert.Equal(t, 720, info.Width)
	assert.Equal(t, 2.5, info.Duration)
	assert.Equal(t, int64(12345), info.Size)
	assert.Equal(t, "mov", info.Format)
}
