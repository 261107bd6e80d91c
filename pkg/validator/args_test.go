package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestArgsInt(t *testing.T) {
	t.Parallel()

	args := validator.Args{3, int64(4), uint8(5), 6.0, json.Number("7"), " 8 ", 2.5, "x", true}

	for i, want := range []int{3, 4, 5, 6, 7, 8} {
		got, err := args.Int(i)
		require.NoError(t, err, i)
		assert.Equal(t, want, got)
	}

	for _, i := range []int{6, 7, 8} {
		_, err := args.Int(i)
		assert.ErrorIs(t, err, validator.ErrInvalidArgument, i)
	}

	_, err := args.Int(len(args))
	assert.ErrorIs(t, err, validator.ErrMissingArgument)
}

func TestArgsText(t *testing.T) {
	t.Parallel()

	args := validator.StringArgs([]string{"a", "b"})
	require.Equal(t, 2, args.Len())

	s, err := args.Text(1)
	require.NoError(t, err)
	assert.Equal(t, "b", s)

	_, err = args.Text(2)
	assert.ErrorIs(t, err, validator.ErrMissingArgument)

	assert.Equal(t, []string{"1", "x", "true"}, validator.Args{1, "x", true}.Strings())
	assert.Nil(t, validator.StringArgs(nil))
}

func TestSig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Named{Name: "lengthRange", Args: validator.Args{"2", "10"}}, validator.Sig("lengthRange(2,10)"))
	assert.Equal(t, validator.Named{Name: "required"}, validator.Sig("required"))
	assert.Equal(t, validator.Named{Name: "required", Args: validator.Args{""}}, validator.Sig(" required() "))
	assert.Equal(t, validator.Named{Name: "required"}, validator.Sig(" required "))
}
