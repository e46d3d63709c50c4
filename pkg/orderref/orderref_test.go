package orderref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := Ref{CompanyName: "Acme", ProductName: "Widget", Price: 25}
	packed, err := Encode(in)
	require.NoError(t, err)
	require.Equal(t, "Acme|Widget|25", packed)

	out, err := Decode(packed)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodeDecode_FractionalPrice(t *testing.T) {
	packed, err := Encode(Ref{CompanyName: "Acme", ProductName: "Widget", Price: 19.99})
	require.NoError(t, err)

	out, err := Decode(packed)
	require.NoError(t, err)
	require.Equal(t, 19.99, out.Price)
}

func TestEncode_Rejects(t *testing.T) {
	cases := []Ref{
		{CompanyName: "", ProductName: "Widget", Price: 25},
		{CompanyName: "Acme", ProductName: "", Price: 25},
		{CompanyName: "Acme", ProductName: "Widget", Price: 0},
		{CompanyName: "Acme", ProductName: "Widget", Price: -1},
		{CompanyName: "Ac|me", ProductName: "Widget", Price: 25},
		{CompanyName: "Acme", ProductName: "Wid|get", Price: 25},
	}
	for _, c := range cases {
		_, err := Encode(c)
		require.ErrorIs(t, err, ErrMalformed)
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := []string{
		"",
		"Acme",
		"Acme|Widget",
		"Acme|Widget|25|extra",
		"Acme|Widget|free",
		"Acme|Widget|0",
		"Acme|Widget|-5",
		"|Widget|25",
		"Acme||25",
	}
	for _, c := range cases {
		_, err := Decode(c)
		require.True(t, errors.Is(err, ErrMalformed), "input %q", c)
	}
}
