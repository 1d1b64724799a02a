package llm

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeUserMessage(t *testing.T) {
	gif := Image{MIMEType: "image/gif", Data: []byte("GIF89a")}

	tests := []struct {
		name       string
		msg        Message
		wantBlocks int
	}{
		{name: "text", msg: User("hello"), wantBlocks: 1},
		{name: "image then text", msg: UserWithImages("tag this", gif), wantBlocks: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param := claudeUserMessage(tt.msg)
			require.Len(t, param.Content, tt.wantBlocks)

			last := param.Content[len(param.Content)-1]
			require.NotNil(t, last.OfText)
			assert.Equal(t, tt.msg.Content, last.OfText.Text)
		})
	}

	param := claudeUserMessage(UserWithImages("tag this", gif))
	img := param.Content[0].OfImage
	require.NotNil(t, img)
	require.NotNil(t, img.Source.OfBase64)
	assert.Equal(t, base64.StdEncoding.EncodeToString(gif.Data), img.Source.OfBase64.Data)
	assert.EqualValues(t, "image/gif", img.Source.OfBase64.MediaType)
}
