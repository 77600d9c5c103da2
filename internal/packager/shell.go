package packager

import (
	"fmt"
	"regexp"
	"strings"
)

// The presentation shell is fixed across artifacts: the document is visually
// the thumbnail, the description carries the readable paragraphs, and the
// metadata block carries the machine-readable record.
const (
	scriptOpen  = `<script type="application/json">`
	scriptClose = `</script>`
)

type shellParams struct {
	Width      int
	Height     int
	Title      string
	Paragraphs []string
	MetaJSON   string // serialized record, already "<"-escaped
	ThumbURI   string // empty when the project has no thumbnail
}

// renderShell assembles the full artifact document.
func renderShell(p shellParams) string {
	var b strings.Builder
	b.Grow(512 + len(p.MetaJSON) + len(p.ThumbURI))

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		p.Width, p.Height, p.Width, p.Height)
	b.WriteString("\n  <title>")
	b.WriteString(escapeXMLText(p.Title))
	b.WriteString("</title>\n  <desc>")
	b.WriteString(escapeXMLText(strings.Join(p.Paragraphs, "\n\n")))
	b.WriteString("</desc>\n  <metadata>\n")
	b.WriteString(`    <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` + "\n")
	b.WriteString("      <rdf:Description>\n        ")
	b.WriteString(scriptOpen)
	b.WriteString(p.MetaJSON)
	b.WriteString(scriptClose)
	b.WriteString("\n      </rdf:Description>\n    </rdf:RDF>\n  </metadata>\n")
	if p.ThumbURI != "" {
		fmt.Fprintf(&b, `  <image id="thumb" href="%s" x="0" y="0" width="%d" height="%d"/>`+"\n",
			p.ThumbURI, p.Width, p.Height)
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// escapeXMLText escapes freeform text for embedding in an XML text node.
func escapeXMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

var (
	scriptRE    = regexp.MustCompile(`(?s)<script type="application/json">(.*?)</script>`)
	thumbHrefRE = regexp.MustCompile(`(<image[^>]*id="thumb"[^>]*href=")[^"]*(")`)
)

// extractScript locates the embedded metadata JSON and reports its exact byte
// offsets so updates can splice a replacement without reparsing the document.
func extractScript(text string) (payload string, start, end int, ok bool) {
	loc := scriptRE.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", 0, 0, false
	}
	return text[loc[2]:loc[3]], loc[2], loc[3], true
}

// replaceThumbHref rewrites the visible thumbnail reference. It reports
// whether an image element was present to rewrite; artifacts built without a
// thumbnail have none, and the metadata update alone carries the change.
func replaceThumbHref(text, uri string) (string, bool) {
	if !thumbHrefRE.MatchString(text) {
		return text, false
	}
	return thumbHrefRE.ReplaceAllString(text, "${1}"+uri+"${2}"), true
}
