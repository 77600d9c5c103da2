package repair

import (
	"regexp"
	"strings"
)

// rule is a single text-level rewrite targeting one known malformation class.
// Rules run in order and each must be idempotent on its own output.
type rule struct {
	name  string
	apply func(string) string
}

var rules = []rule{
	{name: "boolean media attributes", apply: fixBareBooleanAttrs},
	{name: "stray angle brackets in description", apply: escapeDescriptionText},
}

// Apply runs the ordered repair rules over the artifact text. It never fails:
// when no rule matches, the input is returned unchanged and the caller decides
// whether the repair helped by re-validating. Apply(Apply(x)) == Apply(x).
func Apply(text string) string {
	for _, r := range rules {
		text = r.apply(text)
	}
	return text
}

// Names lists the rule names in execution order, for diagnostics.
func Names() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

var (
	mediaTagRE = regexp.MustCompile(`(?is)<(?:video|audio)\b[^>]*>`)
	boolAttrRE = regexp.MustCompile(`(\s)(controls|autoplay|loop|muted)([\s/>])`)
	descRE     = regexp.MustCompile(`(?s)(<desc>)(.*?)(</desc>)`)
	// Simple tags without attributes are the only markup the shell ever places
	// inside a description, so only those are restored after escaping.
	escapedTagRE = regexp.MustCompile(`&lt;(/?[a-zA-Z][a-zA-Z0-9]*)&gt;`)
)

// fixBareBooleanAttrs rewrites value-less boolean attributes on embedded media
// elements (<video controls>) into strict-XML form (controls="controls").
func fixBareBooleanAttrs(text string) string {
	return mediaTagRE.ReplaceAllStringFunc(text, func(tag string) string {
		// Adjacent bare attributes share whitespace, so a single pass can
		// leave the second one untouched. Iterate to a fixpoint.
		for {
			rewritten := boolAttrRE.ReplaceAllString(tag, `$1$2="$2"$3`)
			if rewritten == tag {
				return tag
			}
			tag = rewritten
		}
	})
}

// escapeDescriptionText escapes stray angle brackets in the freeform <desc>
// body, then restores simple tags the document intended to keep so real markup
// is not double-escaped.
func escapeDescriptionText(text string) string {
	return descRE.ReplaceAllStringFunc(text, func(block string) string {
		parts := descRE.FindStringSubmatch(block)
		if parts == nil {
			return block
		}
		body := parts[2]
		body = strings.ReplaceAll(body, "<", "&lt;")
		body = strings.ReplaceAll(body, ">", "&gt;")
		body = escapedTagRE.ReplaceAllString(body, "<$1>")
		return parts[1] + body + parts[3]
	})
}
