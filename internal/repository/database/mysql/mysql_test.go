package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMySQLDSN(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		database    string
		parameters  []string
		expected    string
		expectedErr string
	}{
		{
			name:     "should build dsn without parameters",
			username: "console",
			password: "secret",
			database: "tcp(localhost:3306)/paylinks",
			expected: "console:secret@tcp(localhost:3306)/paylinks",
		},
		{
			name:     "should append joined parameters",
			username: "console",
			password: "secret",
			database: "tcp(localhost:3306)/paylinks",
			parameters: []string{
				"charset=utf8mb4",
				"parseTime=True",
			},
			expected: "console:secret@tcp(localhost:3306)/paylinks?charset=utf8mb4&parseTime=True",
		},
		{
			name:        "should reject empty username",
			password:    "secret",
			database:    "tcp(localhost:3306)/paylinks",
			expectedErr: "username must not be empty",
		},
		{
			name:        "should reject empty database",
			username:    "console",
			password:    "secret",
			expectedErr: "database must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := buildMySQLDSN(tt.username, tt.password, tt.database, tt.parameters)
			if tt.expectedErr != "" {
				require.EqualError(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, dsn)
		})
	}
}
