package frac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckedMatchesUnchecked(t *testing.T) {
	ops := map[string]struct {
		checked   func(a, b Fraction[int]) (Fraction[int], error)
		unchecked func(a, b Fraction[int]) Fraction[int]
	}{
		"add": {checked: Fraction[int].CheckedAdd, unchecked: Fraction[int].Add},
		"sub": {checked: Fraction[int].CheckedSub, unchecked: Fraction[int].Sub},
		"mul": {checked: Fraction[int].CheckedMul, unchecked: Fraction[int].Mul},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, a := range ordered {
				for _, b := range ordered {
					got, err := op.checked(a, b)
					require.NoError(t, err)
					require.Equal(t, op.unchecked(a, b), got, "%s, %s", a, b)
				}
			}
		})
	}
}

func TestCheckedDivMatchesDiv(t *testing.T) {
	for _, a := range ordered {
		for _, b := range ordered {
			exp, expErr := a.Div(b)
			got, err := a.CheckedDiv(b)
			if expErr != nil {
				require.ErrorIs(t, err, ErrDivisionByZero)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, exp, got, "%s / %s", a, b)
		}
	}
}

func TestCheckedInt8(t *testing.T) {
	specs := map[string]struct {
		op     func(a, b Fraction[int8]) (Fraction[int8], error)
		a, b   Fraction[int8]
		exp    Fraction[int8]
		expErr error
	}{
		"add fits":             {op: Fraction[int8].CheckedAdd, a: New[int8](1, 2), b: New[int8](1, 3), exp: New[int8](5, 6)},
		"add over lcm":         {op: Fraction[int8].CheckedAdd, a: New[int8](1, 100), b: New[int8](1, 100), exp: New[int8](1, 50)},
		"add overflows":        {op: Fraction[int8].CheckedAdd, a: FromInt[int8](127), b: One[int8](), expErr: ErrOverflow},
		"sub underflows":       {op: Fraction[int8].CheckedSub, a: FromInt[int8](-128), b: One[int8](), expErr: ErrOverflow},
		"sub to min":           {op: Fraction[int8].CheckedSub, a: FromInt[int8](-127), b: One[int8](), exp: FromInt[int8](-128)},
		"mul cancels":          {op: Fraction[int8].CheckedMul, a: New[int8](100, 3), b: New[int8](3, 100), exp: One[int8]()},
		"mul overflows":        {op: Fraction[int8].CheckedMul, a: FromInt[int8](100), b: FromInt[int8](2), expErr: ErrOverflow},
		"mul min by minus one": {op: Fraction[int8].CheckedMul, a: FromInt[int8](-128), b: FromInt[int8](-1), expErr: ErrOverflow},
		"mul min by one":       {op: Fraction[int8].CheckedMul, a: FromInt[int8](-128), b: One[int8](), exp: FromInt[int8](-128)},
		"mul min by half":      {op: Fraction[int8].CheckedMul, a: FromInt[int8](-128), b: New[int8](1, 2), exp: FromInt[int8](-64)},
		"div min by one":       {op: Fraction[int8].CheckedDiv, a: FromInt[int8](-128), b: One[int8](), exp: FromInt[int8](-128)},
		"mul by zero":          {op: Fraction[int8].CheckedMul, a: FromInt[int8](-128), b: Zero[int8](), exp: Zero[int8]()},
		"div fits":             {op: Fraction[int8].CheckedDiv, a: New[int8](1, 2), b: New[int8](1, 4), exp: FromInt[int8](2)},
		"div by zero":          {op: Fraction[int8].CheckedDiv, a: New[int8](1, 2), b: Zero[int8](), expErr: ErrDivisionByZero},
		"div by min":           {op: Fraction[int8].CheckedDiv, a: One[int8](), b: FromInt[int8](-128), expErr: ErrOverflow},
		"div by negative":      {op: Fraction[int8].CheckedDiv, a: New[int8](1, 2), b: New[int8](-1, 4), exp: FromInt[int8](-2)},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got, err := spec.op(spec.a, spec.b)
			if spec.expErr != nil {
				require.ErrorIs(t, err, spec.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, spec.exp, got)
		})
	}
}

func TestCheckedUnsigned(t *testing.T) {
	got, err := New[uint8](3, 4).CheckedSub(New[uint8](1, 4))
	require.NoError(t, err)
	require.Equal(t, New[uint8](1, 2), got)

	_, err = New[uint8](1, 4).CheckedSub(New[uint8](3, 4))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromInt[uint8](200).CheckedAdd(FromInt[uint8](100))
	require.ErrorIs(t, err, ErrOverflow)

	got, err = New[uint8](2, 3).CheckedDiv(New[uint8](4, 9))
	require.NoError(t, err)
	require.Equal(t, New[uint8](3, 2), got)
}

func TestCheckedHelpers(t *testing.T) {
	_, ok := checkedAdd[int8](127, 1)
	require.False(t, ok)
	_, ok = checkedAdd[int8](-128, -1)
	require.False(t, ok)
	s, ok := checkedAdd[int8](100, -50)
	require.True(t, ok)
	require.Equal(t, int8(50), s)

	_, ok = checkedSub[int8](-128, 1)
	require.False(t, ok)
	_, ok = checkedSub[int8](0, -128)
	require.False(t, ok)

	p, ok := checkedMul[int8](-64, 2)
	require.True(t, ok)
	require.Equal(t, int8(-128), p)
	_, ok = checkedMul[int8](64, 2)
	require.False(t, ok)
	_, ok = checkedMul[int8](-1, -128)
	require.False(t, ok)

	_, ok = checkedNeg[int8](-128)
	require.False(t, ok)
	_, ok = checkedNeg[uint8](1)
	require.False(t, ok)
	n, ok := checkedNeg[uint8](0)
	require.True(t, ok)
	require.Equal(t, uint8(0), n)
}
