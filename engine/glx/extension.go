package glx

import "strings"

// ExtensionSupported reports whether name appears as a whole token in the
// space separated capability list.
// A token only matches when it starts the list or follows a space, and ends
// the list or is followed by a space, so "GLX_ARB_foo" never matches inside
// "GLX_ARB_foobar". Names that are empty or contain a space can never match.
//
// Parameters:
//   - extList: the capability string reported by the platform
//   - name: the capability to look for
//
// Returns:
//   - bool: true if the capability is advertised
func ExtensionSupported(extList, name string) bool {
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return false
	}

	start := 0
	for {
		idx := strings.Index(extList[start:], name)
		if idx < 0 {
			return false
		}
		where := start + idx
		terminator := where + len(name)

		if where == 0 || extList[where-1] == ' ' {
			if terminator == len(extList) || extList[terminator] == ' ' {
				return true
			}
		}
		start = terminator
	}
}

// Extensions is the capability string of one negotiation attempt.
// It is queried once per surface creation and never cached across surfaces.
type Extensions string

// Has reports whether the named capability is advertised.
func (e Extensions) Has(name string) bool { return ExtensionSupported(string(e), name) }

// Tokens returns the advertised capabilities in platform order.
func (e Extensions) Tokens() []string { return strings.Fields(string(e)) }
