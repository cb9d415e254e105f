package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReservationCode(t *testing.T) {
	code := GenerateReservationCode("HB")
	assert.True(t, strings.HasPrefix(code, "HB-"))
	assert.Len(t, code, 11)
	assert.Equal(t, strings.ToUpper(code), code)

	other := GenerateReservationCode("HB")
	assert.NotEqual(t, code, other)
}

func TestPaymentReferenceRoundtrip(t *testing.T) {
	ref := NewPaymentReference(REF_PREFIX_RESERVATION, 42)
	prefix, id, err := ParsePaymentReference(ref)
	assert.Nil(t, err)
	assert.Equal(t, REF_PREFIX_RESERVATION, prefix)
	assert.Equal(t, uint(42), id)

	ref = NewPaymentReference(REF_PREFIX_CONVERSION, 7)
	prefix, id, err = ParsePaymentReference(ref)
	assert.Nil(t, err)
	assert.Equal(t, REF_PREFIX_CONVERSION, prefix)
	assert.Equal(t, uint(7), id)
}

func TestParsePaymentReferenceRejectsGarbage(t *testing.T) {
	for _, ref := range []string{
		"",
		"RSV",
		"RSV_12",
		"XXX_12_abcdef1234",
		"RSV_0_abcdef1234",
		"RSV_notanumber_abcdef1234",
	} {
		_, _, err := ParsePaymentReference(ref)
		assert.NotNil(t, err, "expected error for %q", ref)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 3000.0, Round2(3000.0000001))
	assert.Equal(t, 0.1, Round2(0.1))
}
