package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("JWP_TEST_DB", "/srv/jwpuser/users.db")
	t.Setenv("JWP_TEST_LEVEL", "debug")
	t.Setenv("JWP_TEST_EMPTY", "")

	tests := []struct {
		name        string
		in          string
		want        string
		wantMissing []string
	}{
		{
			name: "set",
			in:   `path = "${JWP_TEST_DB}"`,
			want: `path = "/srv/jwpuser/users.db"`,
		},
		{
			name:        "unset",
			in:          `path = "${JWP_TEST_UNSET_12345}"`,
			want:        `path = "${JWP_TEST_UNSET_12345}"`,
			wantMissing: []string{"JWP_TEST_UNSET_12345"},
		},
		{
			name: "set but empty is not missing",
			in:   `path = "${JWP_TEST_EMPTY}"`,
			want: `path = ""`,
		},
		{
			name: "fallback used when empty",
			in:   `level = "${JWP_TEST_EMPTY:-info}"`,
			want: `level = "info"`,
		},
		{
			name: "fallback ignored when set",
			in:   `level = "${JWP_TEST_LEVEL:-info}"`,
			want: `level = "debug"`,
		},
		{
			name:        "required and empty",
			in:          `path = "${JWP_TEST_EMPTY:? set the database path }"`,
			want:        `path = "${JWP_TEST_EMPTY:? set the database path }"`,
			wantMissing: []string{"JWP_TEST_EMPTY: set the database path"},
		},
		{
			name: "several in one document",
			in:   "[log]\nlevel = \"${JWP_TEST_LEVEL}\"\n[database]\npath = \"${JWP_TEST_UNSET_12345:-./data/jwpuser.db}\"\n",
			want: "[log]\nlevel = \"debug\"\n[database]\npath = \"./data/jwpuser.db\"\n",
		},
		{
			name: "bare dollar left alone",
			in:   `comment = "costs $5"`,
			want: `comment = "costs $5"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}
