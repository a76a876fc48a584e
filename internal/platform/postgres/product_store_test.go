package postgres

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain term untouched", "pen", "pen"},
		{"percent escaped", "100%", `100\%`},
		{"underscore escaped", "blue_pen", `blue\_pen`},
		{"backslash escaped", `back\slash`, `back\\slash`},
		{"mixed metacharacters", `a%b_c\d`, `a\%b\_c\\d`},
		{"empty term", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, escapeLikePattern(tt.term))
		})
	}
}

func TestNullableText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sql.NullString{String: "note", Valid: true}, nullableText("note"))
	assert.Equal(t, sql.NullString{String: "", Valid: false}, nullableText(""))
}

func TestNewPostgresProductStore_NilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresProductStore(nil, nil)
	})
}
