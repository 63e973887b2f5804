package filex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "notes.pdf", want: "notes.pdf"},
		{name: "spaces", in: "my notes.pdf", want: "my_notes.pdf"},
		{name: "unix traversal", in: "../../etc/passwd.pdf", want: "passwd.pdf"},
		{name: "windows traversal", in: "..\\..\\boot.pdf", want: "boot.pdf"},
		{name: "absolute path", in: "/var/tmp/report.pdf", want: "report.pdf"},
		{name: "shell characters", in: "a;b|c&d.pdf", want: "a_b_c_d.pdf"},
		{name: "leading dots stripped", in: "...hidden.pdf", want: "hidden.pdf"},
		{name: "only dots", in: "..", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "unicode replaced", in: "ноты.pdf", want: "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestHasExtension(t *testing.T) {
	require.True(t, HasExtension("notes.pdf", ".pdf"))
	require.True(t, HasExtension("NOTES.PDF", ".pdf"))
	require.False(t, HasExtension("report.docx", ".pdf"))
	require.False(t, HasExtension("pdf", ".pdf"))
	require.False(t, HasExtension("", ".pdf"))
}
