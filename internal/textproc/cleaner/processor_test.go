package cleaner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "River Basin", "river basin"},
		{"strips punctuation", "flood-risk (2024): high!", "flood risk high"},
		{"drops digits", "pH 7.2 in well 3", "ph in well"},
		{"collapses whitespace", "a   b\t\tc", "a b c"},
		{"empty result", "1234 !!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestProcessor_Process(t *testing.T) {
	proc := New()

	bags := []domain.Bag{
		{DocumentID: "d", Position: 0, Text: "Nitrate Levels: HIGH"},
		{DocumentID: "d", Position: 1, Text: "42"},
	}

	out, err := proc.Process(context.Background(), nil, bags)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "nitrate levels high", out[0].Text)
}
