package message

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type substitution struct {
	at    int
	token string
	text  string
}

// Render substitutes the first occurrence of {0} with fieldName and of each
// {n} with the string form of args[n-1]. An empty template renders empty.
func Render(tmpl, fieldName string, args ...any) string {
	if tmpl == "" {
		return ""
	}

	subs := make([]substitution, 0, len(args)+1)
	subs = locate(subs, tmpl, "{0}", fieldName)
	for i, arg := range args {
		subs = locate(subs, tmpl, "{"+strconv.Itoa(i+1)+"}", fmt.Sprint(arg))
	}
	if len(subs) == 0 {
		return tmpl
	}

	// Apply right to left so earlier offsets stay valid; inserted text is
	// never scanned again.
	slices.SortFunc(subs, func(a, b substitution) int { return cmp.Compare(a.at, b.at) })
	out := tmpl
	for i := len(subs) - 1; i >= 0; i-- {
		s := subs[i]
		out = out[:s.at] + s.text + out[s.at+len(s.token):]
	}
	return out
}

func locate(subs []substitution, tmpl, token, text string) []substitution {
	at := strings.Index(tmpl, token)
	if at < 0 {
		return subs
	}
	return append(subs, substitution{at: at, token: token, text: text})
}
