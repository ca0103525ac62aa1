package logo

import (
	"fmt"
	"io"
	"mime/multipart"
)

// ReadFile reads an uploaded multipart file and prepares it as an Image.
func ReadFile(fh *multipart.FileHeader) (Image, error) {
	data, err := ReadRaw(fh)
	if err != nil {
		return Image{}, err
	}
	return Prepare(fh.Filename, data)
}

// ReadRaw reads an uploaded file without sniffing it, bounded by MaxSize.
func ReadRaw(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > MaxSize {
		return nil, fmt.Errorf("%s: %w", fh.Filename, ErrTooLarge)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%s: %w", fh.Filename, ErrTooLarge)
	}
	return data, nil
}
