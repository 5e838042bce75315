package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassthroughResolver(t *testing.T) {
	name, email := PassthroughResolver{}.Resolve("Ada", "ada@example.com")
	assert.Equal(t, "Ada", name)
	assert.Equal(t, "ada@example.com", email)
}

func TestParseMailmap(t *testing.T) {
	content := `# canonical identities
Ada Lovelace <ada@example.com> <ada@old-host.com>
<grace@example.com> <grace@laptop.local>
Alan Turing <alan@example.com> Al <al@example.com> # scoped to one alias
Linus B <linus@example.com>
`
	r := ParseMailmap(content)

	tests := []struct {
		name      string
		inName    string
		inEmail   string
		wantName  string
		wantEmail string
	}{
		{"email remap with proper name", "A. Lovelace", "ada@old-host.com", "Ada Lovelace", "ada@example.com"},
		{"email remap case-insensitive", "A. Lovelace", "ADA@OLD-HOST.COM", "Ada Lovelace", "ada@example.com"},
		{"email-only remap keeps raw name", "G. Hopper", "grace@laptop.local", "G. Hopper", "grace@example.com"},
		{"scoped entry matches name and email", "Al", "al@example.com", "Alan Turing", "alan@example.com"},
		{"scoped entry ignores other names", "Someone Else", "al@example.com", "Someone Else", "al@example.com"},
		{"proper-email entry fixes the name", "torvalds", "linus@example.com", "Linus B", "linus@example.com"},
		{"unknown identity passes through", "Bob", "bob@example.com", "Bob", "bob@example.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, email := r.Resolve(tc.inName, tc.inEmail)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantEmail, email)
		})
	}
}

func TestParseMailmapSkipsJunk(t *testing.T) {
	r := ParseMailmap("# just a comment\n\nno emails on this line\n")
	name, email := r.Resolve("Ada", "ada@example.com")
	assert.Equal(t, "Ada", name)
	assert.Equal(t, "ada@example.com", email)
}

func TestNewMailmapResolver(t *testing.T) {
	t.Run("missing file yields passthrough", func(t *testing.T) {
		r := NewMailmapResolver(t.TempDir())
		assert.IsType(t, PassthroughResolver{}, r)
	})

	t.Run("present file is parsed", func(t *testing.T) {
		dir := t.TempDir()
		content := "Ada Lovelace <ada@example.com> <ada@old-host.com>\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".mailmap"), []byte(content), 0o644))

		r := NewMailmapResolver(dir)
		name, email := r.Resolve("A. Lovelace", "ada@old-host.com")
		assert.Equal(t, "Ada Lovelace", name)
		assert.Equal(t, "ada@example.com", email)
	})
}
