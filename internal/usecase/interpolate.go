package usecase

import (
	"regexp"
	"strings"
)

// {{ nome }} com espaços opcionais. Chaves não podem conter chaves, então
// "{{ {{name}} }}" casa só o token interno.
var placeholderRe = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// Interpolate substitui cada {{nome}} presente em params pelo valor correspondente.
// Placeholders sem valor ficam como estão. Passada única: o valor inserido não é
// reprocessado, então um valor contendo "{{x}}" sai literal.
func Interpolate(body string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(body, "{{") {
		return body
	}

	return placeholderRe.ReplaceAllStringFunc(body, func(token string) string {
		name := strings.Trim(token[2:len(token)-2], " \t\n\r\f\v")
		if v, ok := params[name]; ok {
			return v
		}
		return token
	})
}

// Placeholders lista os nomes distintos usados no corpo, na ordem em que aparecem.
func Placeholders(body string) []string {
	matches := placeholderRe.FindAllStringSubmatch(body, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.Trim(m[1], " \t\n\r\f\v")
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
