package util

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/", "video/webm"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	// 检测 MIME 类型
	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, fmt.Errorf("%w: %s", ErrInvalidFileType, mimeType)
}

// SanitizeWord 小写并只保留 [a-z0-9]，用作文件路径和主键
func SanitizeWord(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DecodeDataURI 解码 "data:<mime>;base64,<payload>" 或纯 base64 字符串，超过 maxBytes 返回 ErrPayloadTooLarge
func DecodeDataURI(data string, maxBytes int64) ([]byte, error) {
	payload := strings.TrimSpace(data)
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 || !strings.HasSuffix(payload[:comma], ";base64") {
			return nil, fmt.Errorf("%w: malformed data uri", ErrInvalidDataURI)
		}
		payload = payload[comma+1:]
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}

	if maxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(payload))) > maxBytes+2 {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrPayloadTooLarge, maxBytes)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	if maxBytes > 0 && int64(len(decoded)) > maxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrPayloadTooLarge, maxBytes)
	}
	return decoded, nil
}

// DecodeAndValidate 解码后校验内容类型
func DecodeAndValidate(data string, maxBytes int64, allowedTypes []string) ([]byte, string, error) {
	decoded, err := DecodeDataURI(data, maxBytes)
	if err != nil {
		return nil, "", err
	}
	mimeType, err := ValidateMimeType(bytes.NewReader(decoded), allowedTypes)
	if err != nil {
		return nil, mimeType, err
	}
	return decoded, mimeType, nil
}
