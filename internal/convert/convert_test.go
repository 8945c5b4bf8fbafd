package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty string is identity", in: "", want: ""},
		{name: "exception passes through verbatim", in: "乾隆", want: "乾隆"},
		{name: "traditional characters map to simplified", in: "牀前明月光", want: "床前明月光"},
		{name: "already simplified text is unchanged", in: "床前明月光", want: "床前明月光"},
		{name: "mixed prose converts", in: "疑是地上霜", want: "疑是地上霜"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestTextPtr(t *testing.T) {
	assert.Nil(t, TextPtr(nil))

	in := "舉頭望明月"
	got := TextPtr(&in)
	if assert.NotNil(t, got) {
		assert.Equal(t, Text(in), *got)
		assert.Equal(t, "舉頭望明月", in, "input must not be mutated")
	}
}

func TestStanzasJoinsElementwise(t *testing.T) {
	stanzas := []string{"牀前明月光", "疑是地上霜", "乾隆"}

	want := make([]string, len(stanzas))
	for i, s := range stanzas {
		want[i] = Text(s)
	}

	assert.Equal(t, strings.Join(want, "\n"), Stanzas(stanzas))
}

func TestStanzasEdgeShapes(t *testing.T) {
	assert.Equal(t, "", Stanzas(nil))
	assert.Equal(t, "", Stanzas([]string{""}))
	assert.Equal(t, Text("春眠不覺曉"), Stanzas([]string{"春眠不覺曉"}))
}
