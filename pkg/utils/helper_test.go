package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseUUIDList(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.Nil(t, ParseUUIDList(""))

	ids := ParseUUIDList(a.String() + "," + b.String())
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	// Invalid entries are skipped, valid ones survive.
	ids = ParseUUIDList(a.String() + ",not-a-uuid")
	assert.Equal(t, []uuid.UUID{a}, ids)

	ids = ParseUUIDList(" " + a.String() + " ")
	assert.Equal(t, []uuid.UUID{a}, ids)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, CheckPassword(hash, "secret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
