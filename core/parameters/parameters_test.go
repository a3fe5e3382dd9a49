package parameters

import (
	"testing"

	"github.com/npillmayer/cmfc/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParametersRedefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	params := NewDocumentParameters()
	assert.False(t, params.IsSet(P_TITLE))
	params.Set(P_TITLE, "First")
	params.Set(P_TITLE, "Second")
	assert.Equal(t, "Second", params.S(P_TITLE))
	assert.Equal(t, "", params.S(P_AUTHOR))
	assert.Equal(t, "P_REVISED", P_REVISED.String())
}

func TestParametersRawText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	params := NewDocumentParameters()
	assert.False(t, params.RawText())
	params.SetRawText(true)
	assert.True(t, params.RawText())
	params.SetRawText(false)
	assert.False(t, params.RawText())
}

func TestParametersValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	params := NewDocumentParameters()
	err := params.Validate()
	assert.Equal(t, core.EMISSING, core.Code(err), "title is mandatory")
	//
	params.Set(P_TITLE, "Doc")
	assert.NoError(t, params.Validate())
	//
	params.Set(P_REVISED, "2021-05-01")
	err = params.Validate()
	assert.Equal(t, core.EINVALID, core.Code(err), "revision requires creation date")
	//
	params.Set(P_CREATED, "2021-04-01")
	assert.NoError(t, params.Validate())
}

func TestParametersKeyRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmf.core")
	defer teardown()
	//
	params := NewDocumentParameters()
	assert.Panics(t, func() { params.Set(P_STOPPER, "x") })
	assert.Panics(t, func() { params.Get(none) })
}
