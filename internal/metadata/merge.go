package metadata

import "time"

// Patch describes a partial update to a record. Nil fields leave the existing
// value untouched. Media entries are merged key-by-key so replacing the
// thumbnail never clobbers the video or audio references.
type Patch struct {
	Title      *string
	Date       *string
	Theme      *string
	Tags       *[]string
	Voice      *string
	Template   *string
	FontSize   *string
	Lang       *string
	Paragraphs *[]string
	Media      MediaPatch
}

// MediaPatch carries optional replacements for individual media references.
type MediaPatch struct {
	VideoMP4     *string
	AudioMP3     *string
	ThumbnailJPG *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Date == nil && p.Theme == nil && p.Tags == nil &&
		p.Voice == nil && p.Template == nil && p.FontSize == nil && p.Lang == nil &&
		p.Paragraphs == nil && p.Media == MediaPatch{}
}

// Merge applies patch on top of existing and stamps ModifiedAt with now. The
// input record is not mutated.
func Merge(existing Record, patch Patch, now time.Time) Record {
	merged := existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Date != nil {
		merged.Date = patch.Date
	}
	if patch.Theme != nil {
		merged.Theme = patch.Theme
	}
	if patch.Tags != nil {
		merged.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Voice != nil {
		merged.Voice = patch.Voice
	}
	if patch.Template != nil {
		merged.Template = *patch.Template
	}
	if patch.FontSize != nil {
		merged.FontSize = patch.FontSize
	}
	if patch.Lang != nil {
		normalized := NormalizeLang(*patch.Lang)
		merged.Lang = &normalized
	}
	if patch.Paragraphs != nil {
		merged.Paragraphs = append([]string(nil), (*patch.Paragraphs)...)
	}
	if patch.Media.VideoMP4 != nil {
		merged.Media.VideoMP4 = patch.Media.VideoMP4
	}
	if patch.Media.AudioMP3 != nil {
		merged.Media.AudioMP3 = patch.Media.AudioMP3
	}
	if patch.Media.ThumbnailJPG != nil {
		merged.Media.ThumbnailJPG = patch.Media.ThumbnailJPG
	}
	stamp := now.UTC().Format(time.RFC3339)
	merged.ModifiedAt = &stamp
	return merged
}
