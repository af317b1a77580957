package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenErrorIs(t *testing.T) {
	err := WriteFailed("seed.sql", fs.ErrPermission)

	assert.True(t, stderrors.Is(err, ErrWriteFailed))
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.False(t, stderrors.Is(err, ErrInvalidRecord))
}

func TestGenErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"without cause", InvalidCatalog("plan %s has no sections", "BusinessPlan"), "plan BusinessPlan has no sections"},
		{"with cause", WriteFailed("out.sql", fs.ErrPermission), "failed to write out.sql: permission denied"},
		{"literal", MalformedLiteral("missing closing tag"), "malformed dollar-quoted literal: missing closing tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", InvalidRecord("x", stderrors.New("boom")))

	assert.Equal(t, CodeInvalidRecord, CodeOf(wrapped))
	assert.Equal(t, Code(""), CodeOf(stderrors.New("plain")))
}
