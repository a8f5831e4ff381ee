package synth

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
)

// variablePattern matches {{name}} interpolation references.
var variablePattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ExtractVariables walks an arbitrary document and collects every {{name}}
// reference found in string leaves. The result is deduplicated and sorted.
// Input must be acyclic (decoded JSON always is).
func ExtractVariables(doc any) []string {
	seen := make(map[string]struct{})
	walkStrings(doc, func(s string) {
		for _, m := range variablePattern.FindAllStringSubmatch(s, -1) {
			seen[m[1]] = struct{}{}
		}
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// walkStrings descends through slices and keyed structures, invoking fn for
// every string leaf.
func walkStrings(doc any, fn func(string)) {
	switch v := doc.(type) {
	case string:
		fn(v)
	case []any:
		for _, item := range v {
			walkStrings(item, fn)
		}
	case map[string]any:
		for _, val := range v {
			walkStrings(val, fn)
		}
	}
}

// CollectionVariables scans a typed collection for {{name}} references by
// rendering it to its wire form first, so every string field is visited.
func CollectionVariables(col *postman.Collection) []string {
	data, err := json.Marshal(col)
	if err != nil {
		return nil
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return ExtractVariables(doc)
}

// EnvironmentVariables scans a collection and builds environment rows for
// every referenced variable, with heuristic values and secret classification.
func EnvironmentVariables(col *postman.Collection) []postman.Variable {
	names := CollectionVariables(col)
	vars := make([]postman.Variable, 0, len(names))
	for _, name := range names {
		varType := postman.VariableDefault
		if IsSecret(name) {
			varType = postman.VariableSecret
		}
		vars = append(vars, postman.Variable{
			Key:         name,
			Value:       EnvironmentValueFor(name),
			Type:        varType,
			Description: EnvironmentDescriptionFor(name),
		})
	}
	return vars
}

// EnvironmentTemplate builds a ready-to-import environment document from a
// collection's variable references.
func EnvironmentTemplate(col *postman.Collection) *postman.Environment {
	return &postman.Environment{
		Name:   col.Info.Name + " Environment",
		Values: EnvironmentVariables(col),
	}
}

// EnvironmentValueFor returns a safe placeholder value for an environment
// variable name. Rules are evaluated in order, first match wins.
func EnvironmentValueFor(varName string) string {
	v := strings.ToLower(varName)

	if strings.Contains(v, "url") || strings.Contains(v, "host") {
		return "https://api.example.com"
	}
	if strings.Contains(v, "token") || strings.Contains(v, "key") {
		return "your_api_key_here"
	}
	if strings.Contains(v, "user") {
		return "demo_user"
	}
	if strings.Contains(v, "password") {
		return "demo_password"
	}
	if strings.Contains(v, "version") {
		return "v1"
	}
	if strings.Contains(v, "port") {
		return "443"
	}

	return "sample_value"
}

// IsSecret reports whether a variable name looks like a credential.
func IsSecret(varName string) bool {
	v := strings.ToLower(varName)
	return strings.Contains(v, "token") ||
		strings.Contains(v, "key") ||
		strings.Contains(v, "password") ||
		strings.Contains(v, "secret")
}

// EnvironmentDescriptionFor returns a description for an environment
// variable name.
func EnvironmentDescriptionFor(varName string) string {
	v := strings.ToLower(varName)

	if strings.Contains(v, "url") || strings.Contains(v, "host") {
		return "Base URL for the API"
	}
	if strings.Contains(v, "token") {
		return "Authentication token"
	}
	if strings.Contains(v, "key") {
		return "API key for authentication"
	}
	if strings.Contains(v, "version") {
		return "API version"
	}
	if strings.Contains(v, "user") {
		return "Username for authentication"
	}
	if strings.Contains(v, "password") {
		return "Password for authentication"
	}

	return "Environment variable: " + varName
}
