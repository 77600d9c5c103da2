package metadata

import (
	"strings"

	"golang.org/x/text/language"
)

// MediaRefs holds the inline data-URI references embedded in an artifact. A
// nil entry means the project has no media of that kind yet.
type MediaRefs struct {
	VideoMP4     *string `json:"video_mp4"`
	AudioMP3     *string `json:"audio_mp3"`
	ThumbnailJPG *string `json:"thumbnail_jpg"`
}

// Record is the structured metadata block embedded in every artifact. Field
// order matches the serialized JSON layout.
type Record struct {
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Date       *string   `json:"date"`
	Theme      *string   `json:"theme"`
	Tags       []string  `json:"tags"`
	Voice      *string   `json:"voice"`
	Template   string    `json:"template"`
	FontSize   *string   `json:"font_size"`
	Lang       *string   `json:"lang"`
	Paragraphs []string  `json:"paragraphs"`
	CreatedAt  string    `json:"created_at"`
	ModifiedAt *string   `json:"modified_at,omitempty"`
	Media      MediaRefs `json:"media"`
}

// NormalizeLang canonicalizes a BCP-47 language tag ("EN-us" becomes "en-US").
// Tags that do not parse are returned verbatim so upstream values survive.
func NormalizeLang(lang string) string {
	trimmed := strings.TrimSpace(lang)
	if trimmed == "" {
		return trimmed
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	return tag.String()
}
