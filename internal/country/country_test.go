package country

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"veriban/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{"uppercase", "DE", "DE", false},
		{"lowercase", "fr", "FR", false},
		{"surrounding whitespace", " GB ", "GB", false},
		{"kosovo", "XK", "XK", false},
		{"unknown pair", "ZZ", "", true},
		{"single letter", "D", "", true},
		{"three letters", "DEU", "", true},
		{"digits", "12", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrUnknownCountry)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	assert.True(t, Code("NL").IsValid())
	assert.True(t, Code("US").IsValid())
	assert.False(t, Code("nl").IsValid())
	assert.False(t, Code("ZZ").IsValid())
	assert.False(t, Code("").IsValid())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "AT", Code("AT").String())
}
