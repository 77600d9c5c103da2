package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary vidpack can make use of.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Default returns the external binaries vidpack knows about. xmllint is
// optional: validation downgrades to the built-in basic check without it.
func Default(xmllint string) []Requirement {
	if strings.TrimSpace(xmllint) == "" {
		xmllint = "xmllint"
	}
	return []Requirement{
		{
			Name:        "xmllint",
			Command:     xmllint,
			Description: "strict XML conformance checking of packaged artifacts",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Resolve locates a single binary on the execution path. The returned path is
// empty when the binary is unavailable, letting callers capture availability
// once at construction time instead of re-probing on every call.
func Resolve(command string) string {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return ""
	}
	path, err := exec.LookPath(trimmed)
	if err != nil {
		return ""
	}
	return path
}
