package imagegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

func TestConvertResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "Here is your diagram."},
				{InlineData: &genai.Blob{Data: []byte("jpeg-bytes"), MIMEType: "image/jpeg"}},
				nil,
				{InlineData: &genai.Blob{Data: []byte("untyped")}},
			}}},
			nil,
			{Content: nil},
		},
	}

	got := convertResponse(resp)
	assert.Equal(t, []string{"Here is your diagram."}, got.Texts)
	assert.Equal(t, []Image{
		{Data: []byte("jpeg-bytes"), MIMEType: "image/jpeg"},
		{Data: []byte("untyped"), MIMEType: "image/png"},
	}, got.Images)
}

func TestConvertResponseEmpty(t *testing.T) {
	assert.Equal(t, &Response{}, convertResponse(nil))
	assert.Equal(t, &Response{}, convertResponse(&genai.GenerateContentResponse{}))
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "")
	assert.True(t, errors.Is(err, errors.ErrCodeMissingCredential))
}
