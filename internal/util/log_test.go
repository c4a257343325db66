package util_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bitpaper/paper-wallet/internal/util"
)

func TestLogFromContext(t *testing.T) {
	var out bytes.Buffer
	logger := zerolog.New(&out)

	ctx := util.ContextWithComponent(logger.WithContext(t.Context()), "test_component")
	util.LogFromContext(ctx).Info().Msg("hello")

	assert.Contains(t, out.String(), `"component":"test_component"`)
	assert.Contains(t, out.String(), `"message":"hello"`)

	//nolint:staticcheck // SA1012
	assert.NotNil(t, util.LogFromContext(nil))
	assert.NotNil(t, util.LogFromContext(context.Background()))
}
