package imagegen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

type fakeGenerator struct {
	resp  *Response
	err   error
	calls []Request
}

func (f *fakeGenerator) Generate(_ context.Context, req Request) (*Response, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

func TestRunSavesFirstImage(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	first := testPNG(t)
	gen := &fakeGenerator{resp: &Response{
		Texts:  []string{"Rendered with soft shadows."},
		Images: []Image{{Data: first, MIMEType: "image/png"}, {Data: []byte("second"), MIMEType: "image/png"}},
	}}
	target := filepath.Join(t.TempDir(), "out", "cover.png")

	path, err := Run(context.Background(), gen, Job{
		Prompt:   "A calm abstract cover",
		Filename: target,
		Style:    StyleCover,
	}, logger)
	require.NoError(t, err)
	assert.Equal(t, target, path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, written)

	require.Len(t, gen.calls, 1)
	req := gen.calls[0]
	assert.Equal(t, DefaultModel, req.Model)
	assert.Equal(t, DefaultResolution, req.Resolution)
	assert.Equal(t, DefaultAspectRatio, req.AspectRatio)
	assert.Equal(t, BuildPrompt("A calm abstract cover", StyleCover), req.Prompt)
	assert.Nil(t, req.Reference)

	assert.Contains(t, logs.String(), "Rendered with soft shadows.")
	assert.Contains(t, logs.String(), "request=")
}

func TestRunTimestampName(t *testing.T) {
	dir := t.TempDir()
	gen := &fakeGenerator{resp: &Response{Images: []Image{{Data: []byte("webp"), MIMEType: "image/webp"}}}}

	path, err := Run(context.Background(), gen, Job{
		Prompt:   "x",
		Filename: dir,
		Now:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}, log.New(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20250102_030405.webp"), path)
}

func TestRunWithReference(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.png")
	require.NoError(t, os.WriteFile(ref, testPNG(t), 0o644))

	gen := &fakeGenerator{resp: &Response{Images: []Image{{Data: testPNG(t), MIMEType: "image/png"}}}}
	_, err := Run(context.Background(), gen, Job{
		Prompt:     "edit this",
		Filename:   filepath.Join(dir, "out.png"),
		InputImage: ref,
	}, log.New(&bytes.Buffer{}))
	require.NoError(t, err)

	require.Len(t, gen.calls, 1)
	require.NotNil(t, gen.calls[0].Reference)
	assert.Equal(t, "image/png", gen.calls[0].Reference.MIMEType)
}

func TestRunMissingReferenceSkipsGeneration(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := Run(context.Background(), gen, Job{
		Prompt:     "edit this",
		Filename:   "out.png",
		InputImage: filepath.Join(t.TempDir(), "missing.png"),
	}, log.New(&bytes.Buffer{}))

	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
	assert.Empty(t, gen.calls)
}

func TestRunNoImage(t *testing.T) {
	dir := t.TempDir()
	gen := &fakeGenerator{resp: &Response{Texts: []string{"I can't draw that."}}}

	_, err := Run(context.Background(), gen, Job{Prompt: "x", Filename: filepath.Join(dir, "x.png")}, log.New(&bytes.Buffer{}))
	assert.True(t, errors.Is(err, errors.ErrCodeNoImage))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunGeneratorError(t *testing.T) {
	want := errors.New(errors.ErrCodeNetwork, "connection reset")
	gen := &fakeGenerator{err: want}

	_, err := Run(context.Background(), gen, Job{Prompt: "x", Filename: "x.png"}, nil)
	assert.ErrorIs(t, err, want)
}

func TestRunEmptyPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := Run(context.Background(), gen, Job{Prompt: "  ", Filename: "x.png"}, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	assert.Empty(t, gen.calls)
}
