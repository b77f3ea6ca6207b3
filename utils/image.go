package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

// ReadUploadedImage drains the multipart file into memory. Images are stored
// inline in the product document, so the whole payload is needed.
func ReadUploadedImage(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read uploaded image: %w", err)
	}
	return data, nil
}

// DecodeEchoedImage turns the img form field a client echoes back on PUT into
// raw bytes. Clients send either plain base64 or a full data URL
// ("data:image/png;base64,...."); the prefix is stripped before decoding.
func DecodeEchoedImage(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}

	if strings.Contains(value, "data:image/") {
		if idx := strings.Index(value, ","); idx != -1 {
			value = value[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode echoed image: %w", err)
	}
	return data, nil
}
