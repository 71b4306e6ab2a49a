package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOverflowPolicy(t *testing.T) {
	assert.True(t, ValidOverflowPolicy(OverflowClamp))
	assert.True(t, ValidOverflowPolicy(OverflowReject))
	assert.True(t, ValidOverflowPolicy(OverflowAllow))
	assert.False(t, ValidOverflowPolicy(""))
	assert.False(t, ValidOverflowPolicy("discard"))
}

func TestValidDeficitPolicy(t *testing.T) {
	assert.True(t, ValidDeficitPolicy(DeficitClamp))
	assert.True(t, ValidDeficitPolicy(DeficitReject))
	assert.True(t, ValidDeficitPolicy(DeficitAllowNegative))
	assert.False(t, ValidDeficitPolicy(""))
	assert.False(t, ValidDeficitPolicy("allow"))
}

func TestStatusOK(t *testing.T) {
	assert.True(t, StatusSuccess.OK())
	assert.False(t, StatusInsufficient.OK())
	assert.False(t, StatusOverflow.OK())
	assert.False(t, StatusNotDefined.OK())
}
