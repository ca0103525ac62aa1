// Package logo turns an uploaded image file into the forms the console needs:
// a local data URL preview and the base64 payload the backend stores.
package logo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrEmpty    = errors.New("file is empty")
	ErrTooLarge = errors.New("file is too large")
)

// MaxSize bounds accepted logo files.
const MaxSize = 5 << 20

type Image struct {
	Filename  string
	MIME      string
	Extension string
	Data      []byte
}

// Prepare sniffs data and accepts it only when the content is an image.
// The filename is informational; the declared extension is never trusted.
func Prepare(filename string, data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}
	if len(data) > MaxSize {
		return Image{}, fmt.Errorf("%s: %w", filename, ErrTooLarge)
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return Image{}, fmt.Errorf("%s is %s: %w", filename, mtype.String(), ErrNotImage)
	}
	return Image{
		Filename:  filename,
		MIME:      mtype.String(),
		Extension: strings.TrimPrefix(mtype.Extension(), "."),
		Data:      data,
	}, nil
}

// Base64 is the payload sent to the upload endpoint.
func (i Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// DataURL is the local preview reference shown until the upload succeeds.
func (i Image) DataURL() string {
	return "data:" + i.MIME + ";base64," + i.Base64()
}
