package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EMISSING, "document missing a title")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "document missing a title", UserMessage(err))
}

func TestWrappedErrorChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	base := errors.New("unexpected byte")
	err := WrapError(base, ESYNTAX, "heading level exceeds 6")
	outer := fmt.Errorf("compiling doc.cmf: %w", err)
	assert.True(t, errors.Is(outer, base))
	assert.Equal(t, ESYNTAX, Code(outer))
	assert.Equal(t, "heading level exceeds 6", UserMessage(outer))
	assert.Contains(t, err.Error(), "[126]")
}

func TestWrapNilError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	err := WrapError(nil, EINVALID, "invalid")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "[123] invalid", err.Error())
}

func TestDescribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	assert.Equal(t, "", Describe(nil))
	assert.Equal(t, "[122] file not found: x: not found", Describe(Error(EMISSING, "file not found: x")))
	assert.Equal(t, "[125] plain", Describe(errors.New("plain")))
	wrapped := fmt.Errorf("doc.cmf[3] err: %w", Error(ESYNTAX, "heading level 7 > 6"))
	assert.Equal(t, "[126] "+wrapped.Error(), Describe(wrapped))
}
