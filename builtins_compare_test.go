package charm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Compare_eq(t *testing.T) {
	rt := New()
	rt.Stack().Push(Number(1))
	rt.Stack().Push(Number(1))
	rt.dispatch("eq", ctx(rt))
	assert.Equal(t, int64(1), rt.Stack().Pop().Int)

	rt.Stack().Push(Number(1))
	rt.Stack().Push(String("1"))
	rt.dispatch("eq", ctx(rt))
	assert.Equal(t, int64(0), rt.Stack().Pop().Int)
}
