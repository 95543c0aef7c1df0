package imagegen

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // webp decoder for image.Decode

	"github.com/smartsdlc/blogimages/pkg/errors"
)

// timestampLayout names images saved without an explicit filename.
const timestampLayout = "20060102_150405"

var mimeToExt = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// ExtensionFor returns the file extension for a MIME type, ".png" if unknown.
func ExtensionFor(mime string) string {
	if ext, ok := mimeToExt[mime]; ok {
		return ext
	}
	return ".png"
}

// LoadReference reads an input image and returns it as PNG.
// Any format the imaging package can decode is accepted; EXIF orientation
// is applied.
func LoadReference(path string) (*Image, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input image not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "stat %s", path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode input image %s", path)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "encode input image %s", path)
	}
	return &Image{Data: buf.Bytes(), MIMEType: "image/png"}, nil
}

// OutputPath decides where img is written.
//
// A filename naming a file is used as is. An empty filename, or one that
// ends in a path separator or names an existing directory, gets a timestamp
// name in that directory with the extension of the image's MIME type.
func OutputPath(filename string, img Image, now time.Time) string {
	dir, named := filename, false
	switch {
	case filename == "":
		dir = "."
	case strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, string(filepath.Separator)):
	default:
		if fi, err := os.Stat(filename); err != nil || !fi.IsDir() {
			named = true
		}
	}
	if named {
		return filename
	}
	return filepath.Join(dir, now.Format(timestampLayout)+ExtensionFor(img.MIMEType))
}

// Save writes img to path, creating parent directories. When the path's
// extension names a different format than the image's MIME type, the image
// is re-encoded to match it. The absolute path is returned.
func Save(img Image, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "resolve %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "create directory %s", filepath.Dir(abs))
	}

	data, err := encodeFor(img, abs)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "write %s", abs)
	}
	return abs, nil
}

// encodeFor returns img's bytes in the format implied by path.
func encodeFor(img Image, path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" || sameFormat(ext, ExtensionFor(img.MIMEType)) {
		return img.Data, nil
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "cannot save %s image as %s", img.MIMEType, ext)
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode generated %s image", img.MIMEType)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, decoded, format); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "encode %s", ext)
	}
	return buf.Bytes(), nil
}

func sameFormat(a, b string) bool {
	norm := func(ext string) string {
		if ext == ".jpeg" {
			return ".jpg"
		}
		return ext
	}
	return norm(a) == norm(b)
}
