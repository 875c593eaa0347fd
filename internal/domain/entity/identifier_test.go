package entity

import (
	"strings"
	"testing"

	domainerrors "cardapio/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "simple slug", raw: "pizzaria_bella"},
		{name: "digits allowed", raw: "tenant_42"},
		{name: "minimum length", raw: "abc"},
		{name: "maximum length", raw: strings.Repeat("a", 63)},
		{name: "too short", raw: "ab", wantErr: true},
		{name: "too long", raw: strings.Repeat("a", 64), wantErr: true},
		{name: "uppercase rejected", raw: "Pizzaria", wantErr: true},
		{name: "hyphen rejected", raw: "pizzaria-bella", wantErr: true},
		{name: "dot rejected", raw: "public.restaurantes", wantErr: true},
		{name: "space rejected", raw: "pizzaria bella", wantErr: true},
		{name: "quote rejected", raw: `tenant"x`, wantErr: true},
		{name: "semicolon rejected", raw: "x;drop schema public cascade", wantErr: true},
		{name: "accented letter rejected", raw: "pizzaría", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := ParseIdentifier(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.raw, id.String())
		})
	}
}
