package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cppla/quoramock/config"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "rust", want: "%rust%"},
		{in: "50%", want: "%50!%%"},
		{in: "snake_case", want: "%snake!_case%"},
		{in: "wow!", want: "%wow!!%"},
		{in: `C:\tmp`, want: `%C:\tmp%`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.in))
		})
	}
}

func TestContainsClause(t *testing.T) {
	assert.Equal(t, "title ILIKE ? ESCAPE '!'", containsClause(config.DriverPostgres, "title"))
	assert.Equal(t, "LOWER(title) LIKE LOWER(?) ESCAPE '!'", containsClause(config.DriverMySQL, "title"))
	assert.Equal(t, "LOWER(category) LIKE LOWER(?) ESCAPE '!'", containsClause(config.DriverSQLite, "category"))
}
