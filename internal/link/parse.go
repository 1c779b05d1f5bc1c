package link

import (
	"net/url"
	"strings"
)

// Parse is url.Parse, retried once with every '%' that does not start a
// valid escape rewritten to "%25". Links copied out of browsers routinely
// carry such signs in tag names.
func Parse(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err == nil {
		return u, nil
	}

	fixed := escapeStrayPercent(raw)
	if fixed == raw {
		return nil, err
	}
	return url.Parse(fixed)
}

func escapeStrayPercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && (i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
