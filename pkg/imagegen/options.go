package imagegen

import (
	"github.com/smartsdlc/blogimages/pkg/errors"
)

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// DefaultModel is the Gemini image model.
const DefaultModel = "gemini-3-pro-image-preview"

// Resolution is the requested output size class.
type Resolution string

const (
	Resolution1K Resolution = "1K"
	Resolution2K Resolution = "2K"
	Resolution4K Resolution = "4K"
)

// DefaultResolution and DefaultAspectRatio match the blog's cover format.
const (
	DefaultResolution  = Resolution2K
	DefaultAspectRatio = "16:9"
)

// ParseResolution converts a flag value into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch r := Resolution(s); r {
	case Resolution1K, Resolution2K, Resolution4K:
		return r, nil
	}
	return "", errors.New(errors.ErrCodeInvalidResolution, "invalid resolution: %q (choose from 1K, 2K, 4K)", s)
}

// ResolveAPIKey picks the explicit key if set, otherwise the value from the
// environment. It fails when neither is available.
func ResolveAPIKey(explicit, fromEnv string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if fromEnv != "" {
		return fromEnv, nil
	}
	return "", errors.New(errors.ErrCodeMissingCredential,
		"no API key provided: pass --api-key or set %s", APIKeyEnv)
}
