package sourcecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run("no errors yields nil", func(t *testing.T) {
		assert.NoError(t, Aggregate(nil))
	})

	t.Run("one error is returned bare", func(t *testing.T) {
		e := Error{Kind: "invalid_utf8", Message: "bad bytes"}
		err := Aggregate([]Error{e})
		require.Error(t, err)
		assert.Equal(t, e, err)
		assert.Equal(t, "bad bytes", err.Error())
	})

	t.Run("more than one error aggregates", func(t *testing.T) {
		errs := []Error{
			{Kind: "a", Message: "first"},
			{Kind: "b", Message: "second"},
		}
		err := Aggregate(errs)
		require.Error(t, err)
		agg, ok := err.(ErrorAggregation)
		require.True(t, ok)
		assert.Equal(t, errs, agg.Errors)
		assert.Contains(t, agg.Error(), "2")
	})
}
