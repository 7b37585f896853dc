package comments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"freshstock/internal/core/id"
)

func TestComment_Validate(t *testing.T) {
	ctx := context.Background()

	valid := NewComment(id.New(), id.New(), "arrived fresh, good packaging")
	assert.NoError(t, valid.Validate(ctx))

	empty := NewComment(id.New(), id.New(), "")
	assert.Error(t, empty.Validate(ctx))

	tooLong := NewComment(id.New(), id.New(), strings.Repeat("x", maxTextLength+1))
	assert.Error(t, tooLong.Validate(ctx))

	atLimit := NewComment(id.New(), id.New(), strings.Repeat("x", maxTextLength))
	assert.NoError(t, atLimit.Validate(ctx))

	noProduct := NewComment(id.Nil(), id.New(), "text")
	assert.Error(t, noProduct.Validate(ctx))
}
