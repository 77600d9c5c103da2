package datauri

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Encode renders data as an inline data URI with standard (unwrapped) base64.
func Encode(data []byte, mime string) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// EncodeFile reads path and encodes its contents as a data URI. The MIME type
// is inferred from the file extension when mime is empty.
func EncodeFile(path, mime string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read media %s: %w", path, err)
	}
	if strings.TrimSpace(mime) == "" {
		mime = InferMIME(path)
	}
	return Encode(data, mime), nil
}

// InferMIME maps the known media extensions onto their MIME types. Unknown
// extensions fall back to application/octet-stream.
func InferMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return "video/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
