package contract

import (
	"os"
	"path/filepath"
	"strings"
)

// PassthroughResolver returns raw identities unchanged. It is the default
// when no mailmap file is present.
type PassthroughResolver struct{}

var _ IdentityResolver = PassthroughResolver{} // Compile-time check

// Resolve implements the IdentityResolver interface.
func (PassthroughResolver) Resolve(name, email string) (string, string) {
	return name, email
}

// mailmapEntry is a single canonical identity mapping.
type mailmapEntry struct {
	properName  string // empty keeps the raw name
	properEmail string // empty keeps the raw email
}

// MailmapResolver canonicalizes identities through a parsed .mailmap file.
// Lookups fall back to the raw identity when no mapping matches.
type MailmapResolver struct {
	// Keyed by lowercased commit email, and by "name\x00email" for entries
	// that are scoped to a specific raw name.
	byEmail     map[string]mailmapEntry
	byNameEmail map[string]mailmapEntry
}

var _ IdentityResolver = &MailmapResolver{} // Compile-time check

// NewMailmapResolver loads .mailmap from the repository root. A missing or
// unreadable file yields a passthrough resolver, never an error.
func NewMailmapResolver(repoRoot string) IdentityResolver {
	data, err := os.ReadFile(filepath.Join(repoRoot, ".mailmap"))
	if err != nil {
		return PassthroughResolver{}
	}
	return ParseMailmap(string(data))
}

// ParseMailmap parses mailmap content. Supported line forms:
//
//	Proper Name <proper@mail>
//	Proper Name <proper@mail> <commit@mail>
//	Proper Name <proper@mail> Commit Name <commit@mail>
//	<proper@mail> <commit@mail>
func ParseMailmap(content string) *MailmapResolver {
	r := &MailmapResolver{
		byEmail:     make(map[string]mailmapEntry),
		byNameEmail: make(map[string]mailmapEntry),
	}

	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.Index(line, " #"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		names, emails := splitMailmapLine(line)
		if len(emails) == 0 {
			continue
		}

		entry := mailmapEntry{properEmail: emails[0]}
		if len(names) > 0 {
			entry.properName = names[0]
		}

		switch {
		case len(emails) == 1:
			// Proper Name <proper@mail>: match on the proper email itself.
			if entry.properName != "" {
				r.byEmail[strings.ToLower(emails[0])] = entry
			}
		case len(names) <= 1:
			// Maps every author with the commit email.
			r.byEmail[strings.ToLower(emails[1])] = entry
		default:
			// Scoped to a specific raw name plus commit email.
			key := strings.ToLower(names[1]) + "\x00" + strings.ToLower(emails[1])
			r.byNameEmail[key] = entry
		}
	}
	return r
}

// Resolve implements the IdentityResolver interface.
func (r *MailmapResolver) Resolve(name, email string) (string, string) {
	lowEmail := strings.ToLower(email)

	if entry, ok := r.byNameEmail[strings.ToLower(name)+"\x00"+lowEmail]; ok {
		return applyEntry(entry, name, email)
	}
	if entry, ok := r.byEmail[lowEmail]; ok {
		return applyEntry(entry, name, email)
	}
	return name, email
}

func applyEntry(entry mailmapEntry, name, email string) (string, string) {
	outName, outEmail := name, email
	if entry.properName != "" {
		outName = entry.properName
	}
	if entry.properEmail != "" {
		outEmail = entry.properEmail
	}
	return outName, outEmail
}

// splitMailmapLine extracts the ordered name and email tokens from a line.
// Emails are the <...> spans; names are the text runs before each email.
func splitMailmapLine(line string) ([]string, []string) {
	var names, emails []string
	rest := line
	for {
		open := strings.Index(rest, "<")
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open:], ">")
		if closing < 0 {
			break
		}
		if name := strings.TrimSpace(rest[:open]); name != "" {
			names = append(names, name)
		}
		emails = append(emails, rest[open+1:open+closing])
		rest = rest[open+closing+1:]
	}
	return names, emails
}
