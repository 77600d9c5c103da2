package datauri

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEncode(t *testing.T) {
	got := Encode([]byte("hello"), "video/mp4")
	want := "data:video/mp4;base64,aGVsbG8="
	if got != want {
		t.Fatalf("unexpected data URI: got %q want %q", got, want)
	}
}

func TestEncodeEmptyPayload(t *testing.T) {
	got := Encode(nil, "image/jpeg")
	if got != "data:image/jpeg;base64," {
		t.Fatalf("unexpected empty-payload URI: %q", got)
	}
}

func TestEncodeFileInfersMIME(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp3")
	if err := os.WriteFile(path, []byte{0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}

	uri, err := EncodeFile(path, "")
	if err != nil {
		t.Fatalf("EncodeFile returned error: %v", err)
	}
	if uri != "data:audio/mpeg;base64,AQI=" {
		t.Fatalf("unexpected URI: %q", uri)
	}
}

func TestEncodeFileMissing(t *testing.T) {
	if _, err := EncodeFile(filepath.Join(t.TempDir(), "absent.mp4"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInferMIME(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"video.mp4", "video/mp4"},
		{"audio.MP3", "audio/mpeg"},
		{"thumb.jpg", "image/jpeg"},
		{"thumb.JPEG", "image/jpeg"},
		{"notes.txt", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}
	for _, tc := range cases {
		if got := InferMIME(tc.path); got != tc.want {
			t.Errorf("InferMIME(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
